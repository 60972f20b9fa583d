package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/paradise-realestate/relay/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout puts a deadline on the request context. Handlers observe it
// through the context they pass to I/O; when the deadline fires before a
// response was written, the returned error becomes a *TimeoutError.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", slog.String("timeout", timeout.String()))
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
