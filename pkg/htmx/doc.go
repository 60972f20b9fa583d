// Package htmx holds the small part of the htmx protocol the server uses:
// request detection and the response headers applied when a fragment is
// rendered.
//
//	if htmx.IsHTMX(r) {
//		cfg := htmx.NewConfig(htmx.WithTrigger("enquiry-sent"))
//		cfg.ApplyHeaders(w)
//	}
package htmx
