package middlewares

import (
	"log/slog"
	"time"

	"github.com/paradise-realestate/relay/internal"
)

// AccessLog logs one line per request after it completed.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status, size := 0, int64(0)
			if rw, ok := c.Response().(*internal.ResponseWriter); ok {
				status, size = rw.Status(), rw.Size()
			}

			level := slog.LevelInfo
			if err != nil || status >= 500 {
				level = slog.LevelError
			} else if status >= 400 {
				level = slog.LevelWarn
			}

			r := c.Request()
			c.Logger().Log(c.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", size),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return err
		}
	}
}
