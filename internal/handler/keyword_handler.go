package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps-chaser-go/internal/service"
	"ccps-chaser-go/pkg/log"
)

// KeywordHandler 结构体定义了关键词列表的处理器。
type KeywordHandler struct {
	keywordService service.KeywordService
}

// NewKeywordHandler 创建一个新的 KeywordHandler 实例。
func NewKeywordHandler(keywordService service.KeywordService) *KeywordHandler {
	return &KeywordHandler{keywordService: keywordService}
}

// ListKeywords 返回全部关键词名（字母序），供前端渲染过滤器。
func (h *KeywordHandler) ListKeywords(c *gin.Context) {
	names, err := h.keywordService.ListKeywordNames(c.Request.Context())
	if err != nil {
		log.Errorf("[KeywordHandler] 获取关键词列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keywords": names})
}
