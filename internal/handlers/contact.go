// Package handlers holds the HTTP handlers of the relay service.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/pkg/contact"
	"github.com/paradise-realestate/relay/pkg/enquiry"
)

// ContactPath is the enquiry endpoint.
const ContactPath = "/api/contact"

// DefaultMaxBodyBytes caps the JSON body of ContactPath.
const DefaultMaxBodyBytes = 100 << 10

// Dispatcher relays one submission as email. *contact.Relay implements it.
type Dispatcher interface {
	Submit(ctx context.Context, s contact.Submission) error
}

// ContactHandler serves ContactPath.
type ContactHandler struct {
	relay   Dispatcher
	maxBody int64
}

// NewContactHandler creates a ContactHandler. maxBody <= 0 selects
// DefaultMaxBodyBytes.
func NewContactHandler(relay Dispatcher, maxBody int64) *ContactHandler {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &ContactHandler{relay: relay, maxBody: maxBody}
}

// Routes implements internal.Handler.
func (h *ContactHandler) Routes(r internal.Router) {
	r.POST(ContactPath, h.submit)
}

// submit decodes the payload and answers with the contact.Result shape.
// Malformed or oversized bodies never reach the relay.
func (h *ContactHandler) submit(c internal.Context) error {
	c.LimitBody(h.maxBody)

	var s contact.Submission
	if err := c.DecodeJSON(&s); err != nil {
		c.LogWarn("contact payload rejected", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, contact.Failed(contact.MessageInvalidBody))
	}

	code, res := contact.Outcome(h.relay.Submit(c.Context(), s))
	return c.JSON(code, res)
}

// RelaySubmitter adapts a Dispatcher to the enquiry form, mapping its
// outcome to the same Result the JSON endpoint returns.
func RelaySubmitter(d Dispatcher) enquiry.SubmitterFunc {
	return func(ctx context.Context, s contact.Submission) (contact.Result, error) {
		_, res := contact.Outcome(d.Submit(ctx, s))
		return res, nil
	}
}
