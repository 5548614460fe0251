package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request and recovers panics into a 500.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic while handling request",
					zap.String("path", c.Request.URL.Path),
					zap.Any("panic", recovered),
				)
				c.AbortWithStatus(500)
				return
			}

			log.Info("request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.Duration("took", time.Since(start)),
			)
		}()
		c.Next()
	}
}
