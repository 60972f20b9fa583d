package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paradise-realestate/relay/internal"
	"github.com/paradise-realestate/relay/middlewares"
)

func TestAccessLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		wantCode  float64
		wantLevel string
	}{
		{name: "success", method: http.MethodGet, path: "/ok", wantCode: 200, wantLevel: "INFO"},
		{name: "client error", method: http.MethodPost, path: "/bad", wantCode: 400, wantLevel: "WARN"},
		{name: "handler error", method: http.MethodGet, path: "/fail", wantCode: 500, wantLevel: "ERROR"},
		{name: "not found", method: http.MethodGet, path: "/missing", wantCode: 404, wantLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logs := &logBuffer{}
			app := internal.New(
				internal.WithCustomLogger(logs.logger(middlewares.RequestIDExtractor())),
				internal.WithMiddleware(middlewares.RequestID(), middlewares.AccessLog()),
				internal.WithHandlers(routes(func(r internal.Router) {
					r.GET("/ok", func(c internal.Context) error {
						return c.String(http.StatusOK, "ok")
					})
					r.POST("/bad", func(c internal.Context) error {
						return c.String(http.StatusBadRequest, "bad")
					})
					r.GET("/fail", func(c internal.Context) error {
						return errors.New("boom")
					})
				})),
			)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("X-Request-ID", "req-7")
			serve(app, req)

			rec := logs.find(t, "http request")
			assert.Equal(t, tt.wantLevel, rec["level"])
			assert.Equal(t, tt.method, rec["method"])
			assert.Equal(t, tt.path, rec["path"])
			assert.Equal(t, tt.wantCode, rec["status"])
			assert.Equal(t, "req-7", rec["request_id"])
			assert.Contains(t, rec, "duration_ms")
			assert.Contains(t, rec, "bytes")
		})
	}
}
