package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`<html><body>{{.Content}}</body></html>`)},
		"layouts/alt.html":  &fstest.MapFile{Data: []byte(`<div class="alt">{{.Content}}</div>`)},
		"inquiry.md": &fstest.MapFile{
			Data: []byte("---\nSubject: \"New Inquiry from {{.Name}}\"\n---\nFrom **{{escape .Name}}**\n"),
		},
		"plain.md":    &fstest.MapFile{Data: []byte("No subject here")},
		"bad-subj.md": &fstest.MapFile{Data: []byte("---\nSubject: \"{{.Missing\"\n---\nbody")},
	}
}

func newTestMailer(sender Sender) *Mailer {
	return New(sender, NewRenderer(testFS()), Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "New message",
	})
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "ops@example.com" &&
			email.Subject == "New Inquiry from Asha" &&
			email.ReplyTo == "asha@example.com" &&
			email.HTML != "" &&
			email.Text != ""
	})).Return(nil)

	err := newTestMailer(sender).Send(context.Background(), SendParams{
		To:       "ops@example.com",
		Template: "inquiry.md",
		ReplyTo:  "asha@example.com",
		Data:     map[string]string{"Name": "Asha"},
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	err := newTestMailer(sender).Send(context.Background(), SendParams{Template: "inquiry.md"})

	require.ErrorIs(t, err, ErrNoRecipient)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_Send_RenderFailure(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	err := newTestMailer(sender).Send(context.Background(), SendParams{
		To:       "ops@example.com",
		Template: "missing.md",
	})

	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrTemplateNotFound)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	relayErr := errors.New("535 authentication failed")
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(relayErr)

	err := newTestMailer(sender).Send(context.Background(), SendParams{
		To:       "ops@example.com",
		Template: "inquiry.md",
		Data:     map[string]string{"Name": "Asha"},
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, relayErr)
}

func TestMailer_Compose_SubjectResolution(t *testing.T) {
	t.Parallel()

	m := newTestMailer(&MockSender{})
	data := map[string]string{"Name": "Asha"}

	tests := []struct {
		name   string
		params SendParams
		want   string
	}{
		{
			name:   "from metadata",
			params: SendParams{To: "a@example.com", Template: "inquiry.md", Data: data},
			want:   "New Inquiry from Asha",
		},
		{
			name:   "override",
			params: SendParams{To: "a@example.com", Template: "inquiry.md", Subject: "Re: {{.Name}}", Data: data},
			want:   "Re: Asha",
		},
		{
			name:   "fallback",
			params: SendParams{To: "a@example.com", Template: "plain.md"},
			want:   "New message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email, err := m.Compose(tt.params)
			require.NoError(t, err)
			require.Equal(t, tt.want, email.Subject)
		})
	}
}

func TestMailer_Compose_SubjectTemplateError(t *testing.T) {
	t.Parallel()

	_, err := newTestMailer(&MockSender{}).Compose(SendParams{To: "a@example.com", Template: "bad-subj.md"})
	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestMailer_Compose_LayoutAndOptionalFields(t *testing.T) {
	t.Parallel()

	email, err := newTestMailer(&MockSender{}).Compose(SendParams{
		To:       "a@example.com",
		Template: "plain.md",
		Layout:   "alt.html",
		From:     "Paradise RealEstate <info@example.com>",
		CC:       []string{"cc@example.com"},
		BCC:      []string{"bcc@example.com"},
		Headers:  map[string]string{"X-Form": "contact"},
	})
	require.NoError(t, err)

	require.Contains(t, email.HTML, `<div class="alt">`)
	require.Equal(t, "Paradise RealEstate <info@example.com>", email.From)
	require.Equal(t, []string{"a@example.com", "cc@example.com", "bcc@example.com"}, email.Recipients())
	require.Equal(t, "contact", email.Headers["X-Form"])
}

func TestMailer_SendRaw_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email *Email
		want  error
	}{
		{name: "no recipient", email: &Email{Subject: "s", HTML: "<p>x</p>"}, want: ErrNoRecipient},
		{name: "no subject", email: &Email{To: []string{"a@example.com"}, HTML: "<p>x</p>"}, want: ErrNoSubject},
		{name: "no content", email: &Email{To: []string{"a@example.com"}, Subject: "s"}, want: ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			err := newTestMailer(sender).SendRaw(context.Background(), tt.email)
			require.ErrorIs(t, err, tt.want)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got *Email
	s := SenderFunc(func(_ context.Context, email *Email) error {
		got = email
		return nil
	})

	email := &Email{To: []string{"a@example.com"}, Subject: "s", HTML: "<p>x</p>"}
	require.NoError(t, newTestMailer(s).SendRaw(context.Background(), email))
	require.Same(t, email, got)
}
