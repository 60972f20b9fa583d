package enquiry

import "errors"

var (
	ErrUnknownField      = errors.New("enquiry: field is not part of the form")
	ErrRequiredFields    = errors.New("enquiry: first name and email are required")
	ErrInvalidEmail      = errors.New("enquiry: email address is not valid")
	ErrBusy              = errors.New("enquiry: submission in progress")
	ErrInvalidTransition = errors.New("enquiry: action not allowed in current state")
	ErrClosed            = errors.New("enquiry: controller closed")
	ErrSubmitFailed      = errors.New("enquiry: submission failed")
	ErrRejected          = errors.New("enquiry: submission rejected by server")
	ErrUnexpectedStatus  = errors.New("enquiry: unexpected response status")
	ErrMalformedResponse = errors.New("enquiry: malformed response body")
)
