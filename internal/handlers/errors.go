package handlers

import (
	"log/slog"
	"net/http"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/middlewares"
	"github.com/paradise-realestate/relay/pkg/contact"
)

// Messages for failures raised outside the enquiry endpoint.
const (
	MessageInternal = "Internal server error"
	MessageTimeout  = "Request timed out"
)

// ErrorHandler renders every error in the contact.Result failure shape.
// Panics and unknown errors become a generic 500 with the cause logged.
func ErrorHandler(c internal.Context, err error) error {
	if pe, ok := middlewares.AsPanicError(err); ok {
		c.LogError("request panicked", slog.Any("panic", pe.Value))
		return c.JSON(http.StatusInternalServerError, contact.Failed(MessageInternal))
	}
	if _, ok := middlewares.AsTimeoutError(err); ok {
		return c.JSON(http.StatusGatewayTimeout, contact.Failed(MessageTimeout))
	}
	if he, ok := internal.AsHTTPError(err); ok {
		if he.Err != nil {
			c.LogWarn("request failed", slog.Int("status", he.Code), slog.String("error", he.Err.Error()))
		}
		return c.JSON(he.Code, contact.Failed(he.Message))
	}

	c.LogError("unhandled error", slog.String("error", err.Error()))
	return c.JSON(http.StatusInternalServerError, contact.Failed(MessageInternal))
}

// NotFound answers unknown routes.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound("")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c internal.Context) error {
	return internal.ErrMethodNotAllowed("")
}
