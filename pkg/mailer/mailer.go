package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer composes templated emails and hands them to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams describes one templated email.
type SendParams struct {
	To       string
	Template string // Template filename, e.g. "notification.md"
	Data     any

	Subject string // Overrides the template's Subject metadata
	Layout  string // Overrides Config.DefaultLayout
	From    string
	ReplyTo string
	CC      []string
	BCC     []string
	Headers map[string]string
}

// Compose renders params into an Email without sending it.
// Subject resolution: params.Subject, then template "Subject" metadata,
// then Config.FallbackSubject. The subject is itself a text template.
func (m *Mailer) Compose(params SendParams) (*Email, error) {
	if params.To == "" {
		return nil, ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject, _ = result.Metadata["Subject"].(string)
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}
	subject, err = executeSubject(subject, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Email{
		Headers: params.Headers,
		Subject: subject,
		HTML:    result.HTML,
		Text:    result.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		To:      []string{params.To},
		CC:      params.CC,
		BCC:     params.BCC,
	}, nil
}

// Send composes and sends a templated email.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	email, err := m.Compose(params)
	if err != nil {
		return err
	}
	return m.SendRaw(ctx, email)
}

// SendRaw sends a pre-built email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	switch {
	case len(email.To) == 0:
		return ErrNoRecipient
	case email.Subject == "":
		return ErrNoSubject
	case email.HTML == "":
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func executeSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
