package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isday/compound-calculator/internal/metrics"
)

// Metrics middleware records request counts and latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
