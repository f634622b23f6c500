package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "http")

// Logger writes one line per request. 5xx responses log at error level, 4xx at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      routeOf(c),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		status := c.Writer.Status()
		format := "%s %s -> %d (%s)"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, GetRequestID(c)}
		switch {
		case status >= 500:
			entry.Errorf(format, args...)
		case status >= 400:
			entry.Warnf(format, args...)
		default:
			entry.Infof(format, args...)
		}
	}
}

// routeOf returns the matched route template so metrics and logs don't fan out per HS code
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
