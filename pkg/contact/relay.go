package contact

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/paradise-realestate/relay/pkg/logger"
	"github.com/paradise-realestate/relay/pkg/mailer"
	"github.com/paradise-realestate/relay/pkg/sanitizer"
	"github.com/paradise-realestate/relay/pkg/telemetry"
)

//go:embed templates
var templates embed.FS

const (
	notificationTemplate = "notification.md"
	autoReplyTemplate    = "autoreply.md"
)

var tracer = telemetry.Tracer("github.com/paradise-realestate/relay/pkg/contact")

var (
	ErrNoOperator         = errors.New("contact: operator mailbox is not configured")
	ErrNotificationFailed = errors.New("contact: operator notification failed")
	ErrAutoReplyFailed    = errors.New("contact: auto-reply failed")
)

// Relay turns a Submission into two emails: a notification to the operator
// mailbox and an auto-reply to the submitter. It holds no per-request state
// and is safe for concurrent use.
type Relay struct {
	mailer   *mailer.Mailer
	logger   *slog.Logger
	now      func() time.Time
	operator string
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the relay logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock overrides the time source used for the copyright year.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRelay creates a Relay that dispatches through sender and notifies
// the operator mailbox.
func NewRelay(sender mailer.Sender, operator string, opts ...Option) (*Relay, error) {
	if operator == "" {
		return nil, ErrNoOperator
	}

	root, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, err
	}
	renderer := mailer.NewRendererWithConfig(root, mailer.RendererConfig{
		HTMLFilter: sanitizer.EmailHTML,
	})

	r := &Relay{
		mailer: mailer.New(sender, renderer, mailer.Config{
			DefaultLayout:   "base.html",
			FallbackSubject: "New Inquiry - Paradise RealEstate",
		}),
		logger:   logger.NewNope(),
		now:      time.Now,
		operator: operator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// messageData is what the email templates see.
type messageData struct {
	FirstName string
	LastName  string
	FullName  string
	Email     string
	Phone     string
	Project   string
	Message   string
	Year      int
}

func (r *Relay) data(s Submission) messageData {
	return messageData{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		FullName:  s.FullName(),
		Email:     s.Email,
		Phone:     s.Phone,
		Project:   s.Project,
		Message:   s.Message,
		Year:      r.now().Year(),
	}
}

func (r *Relay) notificationParams(s Submission, data messageData) mailer.SendParams {
	return mailer.SendParams{
		To:       r.operator,
		ReplyTo:  s.Email,
		Template: notificationTemplate,
		Data:     data,
	}
}

func (r *Relay) autoReplyParams(s Submission, data messageData) mailer.SendParams {
	return mailer.SendParams{
		To:       s.Email,
		Template: autoReplyTemplate,
		Data:     data,
	}
}

// Submit validates s and sends the operator notification, then the
// auto-reply. The second send only starts after the first was accepted.
//
// There is no partial success: if the notification went out and the
// auto-reply fails, Submit still fails with ErrAutoReplyFailed and a retry
// notifies the operator again.
func (r *Relay) Submit(ctx context.Context, s Submission) error {
	ctx, span := tracer.Start(ctx, "contact.Submit")
	defer span.End()

	if err := s.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		r.logger.WarnContext(ctx, "contact submission rejected", slog.String("reason", err.Error()))
		return err
	}
	s = s.normalized()
	data := r.data(s)
	log := r.logger.With(slog.String("submitter", s.Email))
	span.SetAttributes(attribute.String("contact.project", s.Project))

	if err := r.send(ctx, "notification", r.notificationParams(s, data)); err != nil {
		span.SetStatus(codes.Error, "notification failed")
		log.ErrorContext(ctx, "operator notification failed", slog.String("error", err.Error()))
		return errors.Join(ErrNotificationFailed, err)
	}

	if err := r.send(ctx, "auto-reply", r.autoReplyParams(s, data)); err != nil {
		span.SetStatus(codes.Error, "auto-reply failed")
		log.ErrorContext(ctx, "auto-reply failed after operator was notified", slog.String("error", err.Error()))
		return errors.Join(ErrAutoReplyFailed, err)
	}

	log.InfoContext(ctx, "contact submission relayed", slog.String("project", s.Project))
	return nil
}

func (r *Relay) send(ctx context.Context, kind string, params mailer.SendParams) error {
	ctx, span := tracer.Start(ctx, "contact.send "+kind)
	defer span.End()

	if err := r.mailer.Send(ctx, params); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Compose renders both emails for s without sending them.
func (r *Relay) Compose(s Submission) (notification, autoReply *mailer.Email, err error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	s = s.normalized()
	data := r.data(s)

	if notification, err = r.mailer.Compose(r.notificationParams(s, data)); err != nil {
		return nil, nil, err
	}
	if autoReply, err = r.mailer.Compose(r.autoReplyParams(s, data)); err != nil {
		return nil, nil, err
	}
	return notification, autoReply, nil
}
