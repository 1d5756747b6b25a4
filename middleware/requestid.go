package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/simplethings/baubuero-api/logger"
	"go.uber.org/zap"
)

// RequestID tags every request with a unique ID, exposes it in the
// X-Request-ID response header and attaches a request-scoped logger to the
// context. The request is logged once on completion.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()

		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		log := logger.Get().With(zap.String("request_id", requestID))
		c.Set("logger", log)

		start := time.Now()
		c.Next()

		log.Info("Request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
