package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin/services/logger"
)

// RequestLogger logs one line per request through the shared logger.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("%s %s %d %s %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
		)
	}
}
