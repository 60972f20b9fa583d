// Package smtp delivers mail through an SMTP relay using gomail.
package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/paradise-realestate/relay/pkg/mailer"
)

// ErrNoSender is returned when neither a sender address nor a username is configured.
var ErrNoSender = errors.New("smtp: sender address is not configured")

// dialer is the part of *gomail.Dialer the Sender uses.
type dialer interface {
	Dial() (gomail.SendCloser, error)
	DialAndSend(m ...*gomail.Message) error
}

// Sender implements mailer.Sender over SMTP.
// The dialer is built once and shared; every Send opens its own connection.
type Sender struct {
	dialer   dialer
	fromAddr string
	fromName string
}

// New creates an SMTP sender from cfg.
func New(cfg Config) *Sender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.Secure
	d.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
	return newSender(d, cfg)
}

func newSender(d dialer, cfg Config) *Sender {
	return &Sender{
		dialer:   d,
		fromAddr: cfg.From(),
		fromName: cfg.SenderName,
	}
}

// Send implements mailer.Sender. gomail has no context support, so a
// cancelled ctx returns early while the dispatch already in flight finishes
// on its own.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: %w", ctx.Err())
	}
}

// Ping dials and authenticates against the relay without sending anything.
func (s *Sender) Ping(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		conn, err := s.dialer.Dial()
		if err != nil {
			done <- err
			return
		}
		done <- conn.Close()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: %w", ctx.Err())
	}
}

func (s *Sender) message(email *mailer.Email) (*gomail.Message, error) {
	m := gomail.NewMessage()

	switch {
	case email.From != "":
		m.SetHeader("From", email.From)
	case s.fromAddr != "":
		m.SetAddressHeader("From", s.fromAddr, s.fromName)
	default:
		return nil, ErrNoSender
	}

	m.SetHeader("To", email.To...)
	if len(email.CC) > 0 {
		m.SetHeader("Cc", email.CC...)
	}
	if len(email.BCC) > 0 {
		m.SetHeader("Bcc", email.BCC...)
	}
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	for k, v := range email.Headers {
		m.SetHeader(k, v)
	}

	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	} else {
		m.SetBody("text/html", email.HTML)
	}
	return m, nil
}
