package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/pkg/enquiry"
	"github.com/paradise-realestate/relay/pkg/htmx"
)

// EventEnquirySent is the htmx event fired after a successful submit.
const EventEnquirySent = "enquiry:sent"

// EnquiryHandler serves the server-rendered enquiry form. Every request
// gets its own Controller, submitting in-process through submitter.
type EnquiryHandler struct {
	submitter enquiry.Submitter
	timeout   time.Duration
}

// NewEnquiryHandler creates an EnquiryHandler. timeout <= 0 selects
// enquiry.DefaultTimeout.
func NewEnquiryHandler(submitter enquiry.Submitter, timeout time.Duration) *EnquiryHandler {
	if timeout <= 0 {
		timeout = enquiry.DefaultTimeout
	}
	return &EnquiryHandler{submitter: submitter, timeout: timeout}
}

// Routes implements internal.Handler.
func (h *EnquiryHandler) Routes(r internal.Router) {
	r.GET(enquiry.Path, h.form)
	r.POST(enquiry.Path, h.submit)
}

func (h *EnquiryHandler) controller(c internal.Context) *enquiry.Controller {
	return enquiry.New(h.submitter,
		enquiry.WithVariant(enquiry.ParseVariant(c.Query("variant"))),
		enquiry.WithTimeout(h.timeout),
		enquiry.WithLogger(c.Logger()),
	)
}

func (h *EnquiryHandler) form(c internal.Context) error {
	ctrl := h.controller(c)
	defer ctrl.Close()
	return c.Render(http.StatusOK, ctrl.View())
}

func (h *EnquiryHandler) submit(c internal.Context) error {
	ctrl := h.controller(c)
	defer ctrl.Close()

	for _, spec := range ctrl.Snapshot().Variant.Fields() {
		if err := ctrl.Set(spec.Field, c.Form(string(spec.Field))); err != nil {
			return internal.ErrBadRequest("", internal.WithError(err))
		}
	}

	state, err := ctrl.Submit(c.Context())
	switch {
	case errors.Is(err, enquiry.ErrRequiredFields), errors.Is(err, enquiry.ErrInvalidEmail):
		return c.Render(http.StatusUnprocessableEntity, ctrl.View())
	case state == enquiry.StateSuccess:
		return c.Render(http.StatusOK, ctrl.View(), htmx.WithTrigger(EventEnquirySent))
	default:
		// Failures render the error state of the form with values kept.
		return c.Render(http.StatusOK, ctrl.View())
	}
}
