package middleware

import (
	"time"

	"github.com/articlesvc/articles/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured access-log entry per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		}
		if status >= 500 {
			logger.Warnw("request", kv...)
			return
		}
		logger.Infow("request", kv...)
	}
}
