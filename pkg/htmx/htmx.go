package htmx

import "net/http"

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// Target returns the id of the element htmx is going to swap, if any.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}
