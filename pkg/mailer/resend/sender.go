// Package resend delivers mail through the Resend HTTP API.
package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v3"

	"github.com/paradise-realestate/relay/pkg/mailer"
)

// Sender implements mailer.Sender on top of the Resend API.
type Sender struct {
	client *resend.Client
	from   string
}

// Option configures a Sender.
type Option func(*resend.Client)

// WithBaseURL points the client at a different API root, e.g. a local fake.
func WithBaseURL(u *url.URL) Option {
	return func(c *resend.Client) {
		if u != nil {
			c.BaseURL = u
		}
	}
}

// New creates a Resend sender. A nil httpClient uses http.DefaultClient.
func New(cfg Config, httpClient *http.Client, opts ...Option) *Sender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	for _, opt := range opts {
		opt(client)
	}

	from := cfg.SenderEmail
	if cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SenderName, cfg.SenderEmail)
	}
	return &Sender{client: client, from: from}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.from
	}

	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
