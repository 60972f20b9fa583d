package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		htmx           bool
		code           int
		wantUnderlying int
	}{
		{name: "plain 404", code: http.StatusNotFound, wantUnderlying: http.StatusNotFound},
		{name: "plain 500", code: http.StatusInternalServerError, wantUnderlying: http.StatusInternalServerError},
		{name: "htmx 200", htmx: true, code: http.StatusOK, wantUnderlying: http.StatusOK},
		{name: "htmx 204 kept", htmx: true, code: http.StatusNoContent, wantUnderlying: http.StatusNoContent},
		{name: "htmx 400 becomes 200", htmx: true, code: http.StatusBadRequest, wantUnderlying: http.StatusOK},
		{name: "htmx 500 becomes 200", htmx: true, code: http.StatusInternalServerError, wantUnderlying: http.StatusOK},
		{name: "htmx 302 becomes 200", htmx: true, code: http.StatusFound, wantUnderlying: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := NewResponseWriter(rec, tt.htmx)
			rw.WriteHeader(tt.code)

			assert.Equal(t, tt.code, rw.Status())
			assert.Equal(t, tt.wantUnderlying, rec.Code)
			assert.True(t, rw.Written())
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusCreated, rw.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)
	require.False(t, rw.Written())

	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = rw.Write([]byte(" world"))
	require.NoError(t, err)

	assert.True(t, rw.Written())
	assert.Equal(t, int64(11), rw.Size())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec, false)
	assert.Same(t, rec, rw.Unwrap())

	rw.Flush()
	assert.True(t, rec.Flushed)

	_, _, err := rw.Hijack()
	assert.ErrorIs(t, err, http.ErrNotSupported)
}
