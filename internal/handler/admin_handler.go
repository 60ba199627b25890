package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps-chaser-go/internal/service"
	"ccps-chaser-go/pkg/log"
)

// AdminHandler 结构体定义了运维相关的处理器。
type AdminHandler struct {
	reindexService service.ReindexService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例。
func NewAdminHandler(reindexService service.ReindexService) *AdminHandler {
	return &AdminHandler{reindexService: reindexService}
}

// Reindex 触发全量重建索引：把全部文章 ID 投递到 Kafka 队列，
// 由后台消费者异步写入 Elasticsearch。返回 202 和已投递的文章数。
func (h *AdminHandler) Reindex(c *gin.Context) {
	count, err := h.reindexService.EnqueueAll(c.Request.Context())
	if err != nil {
		log.Errorf("[AdminHandler] 触发重建索引失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"queued": count})
}
