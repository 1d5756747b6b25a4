package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/metrics"
)

// Metrics records a Prometheus counter and duration histogram for every
// request, labelled by route pattern, method and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestCounter.WithLabelValues(endpoint, method, status).Inc()
		metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
	}
}
