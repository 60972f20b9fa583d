// Package internal holds the HTTP application core re-exported by the root
// relay package: App, Router, Context, middleware plumbing and the server
// runtime with graceful shutdown.
//
// # Handlers
//
// Handlers implement [Handler] and declare routes on a [Router]:
//
//	type ContactHandler struct {
//	    relay *contact.Relay
//	}
//
//	func (h *ContactHandler) Routes(r internal.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
// A [HandlerFunc] returns an error instead of writing failures itself. The
// error reaches the [ErrorHandler] configured with WithErrorHandler unless
// the response was already written. [HTTPError] carries the status code and
// the public message; its cause is kept for logs only.
//
// # Context
//
// [Context] embeds context.Context, so it can be passed straight to code
// doing I/O:
//
//	func (h *ContactHandler) submit(c internal.Context) error {
//	    var s contact.Submission
//	    if err := c.DecodeJSON(&s); err != nil {
//	        return internal.ErrBadRequest("Invalid request body", internal.WithError(err))
//	    }
//	    code, res := contact.Outcome(h.relay.Submit(c, s))
//	    return c.JSON(code, res)
//	}
//
// Values stored with Set are visible to later middleware and the handler.
//
// # htmx
//
// For requests carrying HX-Request the [ResponseWriter] sends error and
// redirect statuses as 200, so htmx still swaps the returned fragment.
//
// # Running
//
// App.Run listens, serves and shuts down on SIGINT, SIGTERM or when the
// base context passed with WithContext is cancelled. Shutdown hooks run
// after the server drained, under the shutdown timeout.
package internal
