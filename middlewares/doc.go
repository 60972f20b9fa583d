// Package middlewares provides the HTTP middleware the relay service runs
// in front of its handlers.
//
// RequestID tags each request with an ID taken from X-Request-ID or
// X-Correlation-ID, or a fresh UUID. RequestIDExtractor puts it on every log
// record written through the request context:
//
//	app := relay.New(
//	    relay.WithLogger("relay", middlewares.RequestIDExtractor()),
//	    relay.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.AccessLog(),
//	        middlewares.Recover(),
//	        middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowedOrigins...)),
//	    ),
//	)
//
// Recover converts panics to *PanicError and Timeout converts an expired
// request deadline to *TimeoutError. Both reach the app's error handler:
//
//	relay.WithErrorHandler(func(c relay.Context, err error) error {
//	    if _, ok := middlewares.AsTimeoutError(err); ok {
//	        return c.JSON(http.StatusGatewayTimeout, contact.Failed("timeout"))
//	    }
//	    return c.JSON(http.StatusInternalServerError, contact.Failed(contact.MessageDispatchFailed))
//	})
//
// Timeout only sets a deadline; handlers must pass the request context to
// blocking calls for it to take effect.
package middlewares
