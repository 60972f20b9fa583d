package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/middlewares"
)

func requestIDApp(opts ...middlewares.RequestIDOption) *internal.App {
	return internal.New(
		internal.WithMiddleware(middlewares.RequestID(opts...)),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return c.String(http.StatusOK, middlewares.GetRequestID(c))
			})
		})),
	)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a uuid", func(t *testing.T) {
		t.Parallel()

		rec := serve(requestIDApp(), httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	tests := []struct {
		name   string
		opts   []middlewares.RequestIDOption
		header string
		value  string
		want   string
	}{
		{name: "reuses X-Request-ID", header: "X-Request-ID", value: "req-1", want: "req-1"},
		{name: "reuses X-Correlation-ID", header: "X-Correlation-ID", value: "corr-1", want: "corr-1"},
		{
			name:   "custom header",
			opts:   []middlewares.RequestIDOption{middlewares.WithRequestIDHeaders("X-Trace")},
			header: "X-Trace",
			value:  "trace-1",
			want:   "trace-1",
		},
		{
			name:   "oversized upstream id is replaced",
			opts:   []middlewares.RequestIDOption{middlewares.WithRequestIDGenerator(func() string { return "fresh" })},
			header: "X-Request-ID",
			value:  strings.Repeat("a", 200),
			want:   "fresh",
		},
		{
			name:   "ignored header falls back to generator",
			opts:   []middlewares.RequestIDOption{middlewares.WithRequestIDGenerator(func() string { return "gen" })},
			header: "X-Other",
			value:  "nope",
			want:   "gen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, tt.value)
			rec := serve(requestIDApp(tt.opts...), req)

			assert.Equal(t, tt.want, rec.Header().Get("X-Request-ID"))
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	logs := &logBuffer{}
	app := internal.New(
		internal.WithCustomLogger(logs.logger(middlewares.RequestIDExtractor())),
		internal.WithMiddleware(middlewares.RequestID()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				c.LogInfo("handled")
				return c.NoContent(http.StatusOK)
			})
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	serve(app, req)

	assert.Equal(t, "req-42", logs.find(t, "handled")["request_id"])
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			return c.String(http.StatusOK, "["+middlewares.GetRequestID(c)+"]")
		})
	})))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "[]", rec.Body.String())
}
