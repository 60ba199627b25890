// Package middleware 存放 Gin 框架的中间件。
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ccps-chaser-go/pkg/log"
)

// RequestLogger 是一个 Gin 中间件，用于记录请求日志。
// 不捕获请求/响应体：检索响应可能携带整篇正文，PDF 代理是二进制流。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)

		log.Infow("HTTP Request Log",
			"statusCode", c.Writer.Status(),
			"latency", latency.String(),
			"clientIP", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"responseSize", c.Writer.Size(),
		)
	}
}
