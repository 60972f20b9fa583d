package enquiry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/paradise-realestate/relay/pkg/contact"
	"github.com/paradise-realestate/relay/pkg/logger"
)

// DefaultTimeout bounds a single submit round-trip.
const DefaultTimeout = 15 * time.Second

// Submitter delivers a submission and reports the relay's verdict.
// A returned error is a transport failure; a Result with Success false is
// a rejection.
type Submitter interface {
	Submit(ctx context.Context, s contact.Submission) (contact.Result, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s contact.Submission) (contact.Result, error)

func (f SubmitterFunc) Submit(ctx context.Context, s contact.Submission) (contact.Result, error) {
	return f(ctx, s)
}

var validate = validator.New()

// gate mirrors the native required-field check of the browser form.
type gate struct {
	FirstName string `validate:"required"`
	Email     string `validate:"required,email"`
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Variant Variant
	State   State
	Values  Values
}

// Controller is the enquiry form state machine. All methods are safe for
// concurrent use; Submit blocks for the duration of the round-trip.
type Controller struct {
	mu        sync.Mutex
	submitter Submitter
	logger    *slog.Logger
	variant   Variant
	timeout   time.Duration
	state     State
	values    Values
	cancel    context.CancelFunc
	closed    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithVariant selects the field layout.
func WithVariant(v Variant) Option {
	return func(c *Controller) {
		c.variant = ParseVariant(string(v))
	}
}

// WithTimeout sets the per-submit timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller in StateEditing with every field empty.
func New(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		submitter: submitter,
		logger:    logger.NewNope(),
		variant:   VariantFull,
		timeout:   DefaultTimeout,
		state:     StateEditing,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.values = c.emptyValues()
	return c
}

func (c *Controller) emptyValues() Values {
	v := make(Values)
	for _, spec := range c.variant.Fields() {
		v[spec.Field] = ""
	}
	return v
}

// Set updates one field. It is accepted while editing and after a failed
// submit; the error state is kept until the next submit.
func (c *Controller) Set(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.closed:
		return ErrClosed
	case c.state == StateSubmitting:
		return ErrBusy
	case c.state == StateSuccess:
		return ErrInvalidTransition
	case !c.variant.Has(field):
		return ErrUnknownField
	}
	c.values[field] = value
	return nil
}

// Submit sends the current values and waits for the outcome.
//
// The required-field gate runs first; when it fails no request is made and
// the state is unchanged. Otherwise the controller enters StateSubmitting
// and ends in StateSuccess with cleared fields, or StateError with fields
// preserved. If the controller is closed while the request is in flight,
// the result is discarded and ErrClosed is returned.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()
	switch {
	case c.closed:
		state := c.state
		c.mu.Unlock()
		return state, ErrClosed
	case c.state == StateSubmitting:
		c.mu.Unlock()
		return StateSubmitting, ErrBusy
	case c.state == StateSuccess:
		c.mu.Unlock()
		return StateSuccess, ErrInvalidTransition
	}

	if err := checkGate(c.values); err != nil {
		state := c.state
		c.mu.Unlock()
		return state, err
	}

	payload := c.values.Submission()
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	c.cancel = cancel
	c.state = StateSubmitting
	c.mu.Unlock()

	res, err := c.submitter.Submit(reqCtx, payload)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.DebugContext(ctx, "enquiry result discarded after close")
		return c.state, ErrClosed
	}
	c.cancel = nil

	if err == nil && !res.Success {
		err = fmt.Errorf("%w: %s", ErrRejected, res.Error)
	}
	if err != nil {
		c.state = StateError
		c.logger.WarnContext(ctx, "enquiry submit failed",
			slog.String("variant", string(c.variant)),
			slog.String("error", err.Error()),
		)
		return c.state, errors.Join(ErrSubmitFailed, err)
	}

	c.state = StateSuccess
	c.values = c.emptyValues()
	return c.state, nil
}

func checkGate(v Values) error {
	g := gate{
		FirstName: strings.TrimSpace(v[FieldFirstName]),
		Email:     strings.TrimSpace(v[FieldEmail]),
	}
	if g.FirstName == "" || g.Email == "" {
		return ErrRequiredFields
	}
	if err := validate.Struct(g); err != nil {
		return errors.Join(ErrInvalidEmail, err)
	}
	return nil
}

// Reset is the "send another message" action: it returns a successful
// controller to an empty editable form.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.state != StateSuccess {
		return ErrInvalidTransition
	}
	c.state = StateEditing
	c.values = c.emptyValues()
	return nil
}

// Close cancels an in-flight submit. Any later completion is ignored and
// every further call returns ErrClosed. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns a copy of the current state and values.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Variant: c.variant,
		State:   c.state,
		Values:  maps.Clone(c.values),
	}
}
