// Package relay is the HTTP core of the Paradise RealEstate mail relay.
//
// The service accepts enquiries from the website form on POST /api/contact,
// sends an operator notification and an auto-reply through the configured
// mail provider, and reports liveness on GET /api/health. The form itself
// is served at /enquiry as an htmx fragment driven by pkg/enquiry.
//
// # Application
//
// An App is built once from options and is immutable afterwards:
//
//	app := relay.New(
//	    relay.WithLogger("relay", middlewares.RequestIDExtractor()),
//	    relay.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.AccessLog(),
//	        middlewares.Recover(),
//	        middlewares.CORS(),
//	    ),
//	    relay.WithErrorHandler(handlers.ErrorHandler),
//	    relay.WithHandlers(
//	        handlers.NewContactHandler(r, cfg.MaxBodyBytes),
//	        handlers.NewHealthHandler(nil),
//	    ),
//	    relay.WithHealthChecks(
//	        relay.WithReadinessCheck("smtp", sender.Ping),
//	    ),
//	)
//
// # Handlers
//
// Handlers implement [Handler] and declare their routes:
//
//	func (h *ContactHandler) Routes(r relay.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
// A handler returns an error to hand it to the [ErrorHandler]. Return an
// [HTTPError] to pick the status and the message shown to the caller.
//
// # Running
//
// Run blocks until SIGINT or SIGTERM, then drains in-flight requests and
// runs shutdown hooks:
//
//	err := app.Run(cfg.Addr(),
//	    relay.ShutdownTimeout(cfg.ShutdownTimeout),
//	    relay.ShutdownHook(shutdownTracing),
//	)
package relay
