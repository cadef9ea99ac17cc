package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isday/compound-calculator/internal/calculation"
)

// Logger middleware writes one access line per request
func Logger(logger calculation.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		line := "%s %s -> %d (%s)"
		args := []any{c.Request.Method, path, status, time.Since(start)}
		switch {
		case status >= 500:
			logger.Errorf(line, args...)
		case status >= 400:
			logger.Warnf(line, args...)
		default:
			logger.Infof(line, args...)
		}
	}
}
