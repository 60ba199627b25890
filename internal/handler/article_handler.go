package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ccps-chaser-go/internal/service"
	"ccps-chaser-go/pkg/log"
)

// ArticleHandler 结构体定义了文章详情和 PDF 代理的处理器。
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler 创建一个新的 ArticleHandler 实例。
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GetArticle 是处理文章详情请求的 Gin 处理函数。
// 可选参数 q 用于摘要定位，并把详情和前后翻页限定在该检索范围内。
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文章 ID"})
		return
	}
	query := c.Query("q")

	detail, nav, err := h.articleService.GetArticle(c.Request.Context(), id, query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "文章不存在"})
			return
		}
		log.Errorf("[ArticleHandler] 获取文章详情失败, id: %d, error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": detail, "nav": nav})
}

// ProxyPDF 把对象存储中的 PDF 透传给客户端，支持字节区间请求。
// 响应不带阻止页内嵌入的头（X-Frame-Options 等），便于前端内嵌预览。
func (h *ArticleHandler) ProxyPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的文章 ID"})
		return
	}

	stream, err := h.articleService.OpenPDF(c.Request.Context(), id, c.GetHeader("Range"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "PDF 不存在"})
			return
		}
		log.Errorf("[ArticleHandler] 打开 PDF 失败, id: %d, error: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer stream.Body.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Accept-Ranges", "bytes")
	c.Header("Content-Disposition", "inline")

	status := http.StatusOK
	contentLength := stream.Size
	if stream.Ranged {
		status = http.StatusPartialContent
		contentLength = stream.End - stream.Start + 1
		c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", stream.Start, stream.End, stream.Size))
	}
	c.Header("Content-Length", strconv.FormatInt(contentLength, 10))
	c.Status(status)

	if _, err := io.Copy(c.Writer, stream.Body); err != nil {
		// 响应头已发出，只能记录
		log.Warnf("[ArticleHandler] PDF 传输中断, id: %d, error: %v", id, err)
	}
}
