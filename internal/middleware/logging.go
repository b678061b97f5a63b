// Package middleware holds gin middleware shared by the HTTP surface.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every HTTP request with its method, route, status, and
// duration. Server errors log at warn so a persist failure stands out from
// ordinary kiosk traffic.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start).Milliseconds()
		if status >= 500 {
			slog.Warn("HTTP error",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"duration_ms", duration,
			)
		} else {
			slog.Info("HTTP ok",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"duration_ms", duration,
			)
		}
	}
}
