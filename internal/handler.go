package internal

// Handler declares routes on a router.
//
//	type HealthHandler struct{ now func() time.Time }
//
//	func (h *HealthHandler) Routes(r relay.Router) {
//	    r.GET("/api/health", h.status)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may inspect the request, short-circuit
// with its own response, or decorate the returned error.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error
