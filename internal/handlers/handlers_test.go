package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/internal/handlers"
	"github.com/paradise-realestate/relay/pkg/contact"
	"github.com/paradise-realestate/relay/pkg/mailer"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Submit(ctx context.Context, s contact.Submission) error {
	return m.Called(ctx, s).Error(0)
}

// recordingSender keeps every email handed to it. failOn maps a 1-based
// call number to the error that call returns.
type recordingSender struct {
	mu     sync.Mutex
	sent   []*mailer.Email
	failOn map[int]error
}

func (s *recordingSender) Send(_ context.Context, email *mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return s.failOn[len(s.sent)]
}

func (s *recordingSender) emails() []*mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*mailer.Email(nil), s.sent...)
}

func newRelay(t *testing.T, sender mailer.Sender) *contact.Relay {
	t.Helper()
	r, err := contact.NewRelay(sender, "info@preuae.com",
		contact.WithClock(func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)
	return r
}

func newApp(h ...internal.Handler) *internal.App {
	return internal.New(
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithHandlers(h...),
	)
}

func serve(app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) contact.Result {
	t.Helper()
	var res contact.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}
