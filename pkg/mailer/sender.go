package mailer

import "context"

// Sender hands a composed Email to a delivery provider.
// A nil error means the provider accepted the message for dispatch,
// not that it reached the recipient's inbox.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a plain function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
