package contact

import (
	"errors"
	"net/http"
)

// Fixed messages of the enquiry endpoint.
const (
	MessageSent            = "Email sent successfully"
	MessageMissingRequired = "First name and email are required"
	MessageDispatchFailed  = "Failed to send email. Please try again later."
	MessageInvalidBody     = "Invalid request body"
)

// Result is the response body of the enquiry endpoint.
// Success true means both emails were accepted by the mail relay.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Sent is the success result.
func Sent() Result {
	return Result{Success: true, Message: MessageSent}
}

// Failed is a failure result carrying msg.
func Failed(msg string) Result {
	return Result{Success: false, Error: msg}
}

// Outcome maps the error returned by Relay.Submit to an HTTP status and
// response body. Validation errors are 400; every other failure collapses
// into the generic 500 dispatch failure.
func Outcome(err error) (int, Result) {
	switch {
	case err == nil:
		return http.StatusOK, Sent()
	case errors.Is(err, ErrMissingRequired):
		return http.StatusBadRequest, Failed(MessageMissingRequired)
	default:
		return http.StatusInternalServerError, Failed(MessageDispatchFailed)
	}
}
