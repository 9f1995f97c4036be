package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggerKey is the gin context key holding the request-scoped logger.
const LoggerKey = "logger"

// RequestLogger stores a request-scoped zap logger in the context and logs
// each request once it completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(LoggerKey, logger.With(zap.String("path", c.Request.URL.Path)))

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if email := c.GetString(EmailKey); email != "" {
			fields = append(fields, zap.String("email", email))
		}
		logger.Info("request", fields...)
	}
}
