// Package handler 包含了所有 HTTP 请求的处理函数。
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/internal/service"
	"ccps-chaser-go/pkg/log"
)

// SearchHandler 结构体定义了列表检索相关的处理器。
type SearchHandler struct {
	searchService service.SearchService
	searchCfg     config.SearchConfig
}

// NewSearchHandler 创建一个新的 SearchHandler 实例。
func NewSearchHandler(searchService service.SearchService, searchCfg config.SearchConfig) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		searchCfg:     searchCfg,
	}
}

// ListArticles 是处理归档检索请求的 Gin 处理函数。
// q: 全文检索串（可空）；kw: 关键词名，可重复出现或逗号拼接（OR 语义）；
// page 默认 1；limit 默认 20，钳到 [1, max_limit]。
func (h *SearchHandler) ListArticles(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	keywordNames := service.SplitKeywordParam(c.QueryArray("kw"))

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page 必须是整数"})
		return
	}
	if page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.searchCfg.DefaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit 必须是整数"})
		return
	}
	if limit < 1 {
		limit = 1
	}
	if limit > h.searchCfg.MaxLimit {
		limit = h.searchCfg.MaxLimit
	}

	result, err := h.searchService.SearchArticles(c.Request.Context(), query, keywordNames, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Errorf("[SearchHandler] 检索失败, q: '%s', error: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
