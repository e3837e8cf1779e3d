package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"log/slog"
)

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		// Уровень логирования зависит от статуса ответа
		var logLevel slog.Level
		switch {
		case status >= 500:
			logLevel = slog.LevelError
		case status >= 400:
			logLevel = slog.LevelWarn
		default:
			logLevel = slog.LevelInfo
		}

		log.LogAttrs(context.Background(), logLevel, "request completed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("response_size", c.Writer.Size()),
			slog.String("remote_addr", req.RemoteAddr),
		)
	}
}
