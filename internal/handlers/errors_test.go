package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/internal/handlers"
	"github.com/paradise-realestate/relay/middlewares"
	"github.com/paradise-realestate/relay/pkg/contact"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "http error", err: internal.ErrBadRequest("bad input"), wantCode: http.StatusBadRequest, wantMsg: "bad input"},
		{name: "http error with cause", err: internal.ErrServiceUnavailable("", internal.WithError(errors.New("down"))), wantCode: http.StatusServiceUnavailable, wantMsg: "Service Unavailable"},
		{name: "panic", err: &middlewares.PanicError{Value: "boom"}, wantCode: http.StatusInternalServerError, wantMsg: handlers.MessageInternal},
		{name: "timeout", err: &middlewares.TimeoutError{Duration: time.Second}, wantCode: http.StatusGatewayTimeout, wantMsg: handlers.MessageTimeout},
		{name: "unknown error hides cause", err: errors.New("db password wrong"), wantCode: http.StatusInternalServerError, wantMsg: handlers.MessageInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := newApp(routes(func(r internal.Router) {
				r.GET("/", func(c internal.Context) error { return tt.err })
			}))
			rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, contact.Result{Error: tt.wantMsg}, decodeResult(t, rec))
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := serve(newApp(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, contact.Result{Error: "Not Found"}, decodeResult(t, rec))
}

func TestRecoveredPanicUsesGenericBody(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST(handlers.ContactPath, func(c internal.Context) error { panic("nil map") })
		})),
	)

	rec := serve(app, postJSON(handlers.ContactPath, "{}"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, contact.Result{Error: handlers.MessageInternal}, decodeResult(t, rec))
}
