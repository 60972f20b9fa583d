package relay

import (
	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/pkg/logger"
)

// Type aliases - public API
type (
	// App owns the router, global middleware and the server lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc.
	Middleware = internal.Middleware

	// ErrorHandler renders errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// HTTPError carries a status code and a caller-facing message.
	HTTPError = internal.HTTPError

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ContextExtractor adds a request-scoped attribute to log records.
	ContextExtractor = logger.ContextExtractor

	// ResponseWriter records status and size of a response.
	ResponseWriter = internal.ResponseWriter
)

// New creates an application with the given options.
//
//	app := relay.New(
//	    relay.WithLogger("relay", middlewares.RequestIDExtractor()),
//	    relay.WithErrorHandler(handlers.ErrorHandler),
//	    relay.WithHandlers(
//	        handlers.NewContactHandler(r, cfg.MaxBodyBytes),
//	        handlers.NewHealthHandler(nil),
//	    ),
//	)
//
//	err := app.Run(cfg.Addr(), relay.ShutdownTimeout(cfg.ShutdownTimeout))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// ContextValue returns the value stored under key, or the zero value of T.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// HTTP errors for handlers.
var (
	NewHTTPError          = internal.NewHTTPError
	ErrBadRequest         = internal.ErrBadRequest
	ErrNotFound           = internal.ErrNotFound
	ErrRequestTooLarge    = internal.ErrRequestTooLarge
	ErrInternal           = internal.ErrInternal
	ErrServiceUnavailable = internal.ErrServiceUnavailable
	AsHTTPError           = internal.AsHTTPError
)
