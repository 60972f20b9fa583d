package enquiry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradise-realestate/relay/pkg/contact"
	"github.com/paradise-realestate/relay/pkg/enquiry"
)

func TestClient_Submit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    contact.Result
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"success":true,"message":"Email sent successfully"}`,
			want:   contact.Sent(),
		},
		{
			name:   "rejection is not a transport error",
			status: http.StatusOK,
			body:   `{"success":false,"error":"nope"}`,
			want:   contact.Failed("nope"),
		},
		{
			name:    "validation failure",
			status:  http.StatusBadRequest,
			body:    `{"success":false,"error":"First name and email are required"}`,
			want:    contact.Failed(contact.MessageMissingRequired),
			wantErr: enquiry.ErrUnexpectedStatus,
		},
		{
			name:    "gateway html",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: enquiry.ErrUnexpectedStatus,
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"success":`,
			wantErr: enquiry.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got contact.Submission
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, enquiry.ContactPath, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := enquiry.NewClient(srv.URL+"/", enquiry.WithHTTPClient(srv.Client()))
			res, err := client.Submit(context.Background(), contact.Submission{FirstName: "Asha", Email: "asha@example.com"})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, res)
			assert.Equal(t, "Asha", got.FirstName)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := enquiry.NewClient(url).Submit(context.Background(), contact.Submission{FirstName: "Asha", Email: "a@b.co"})
	require.Error(t, err)
}

func TestController_WithClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(contact.Failed(contact.MessageDispatchFailed))
	}))
	defer srv.Close()

	c := enquiry.New(enquiry.NewClient(srv.URL))
	require.NoError(t, c.Set(enquiry.FieldFirstName, "Asha"))
	require.NoError(t, c.Set(enquiry.FieldEmail, "asha@example.com"))

	state, err := c.Submit(context.Background())
	require.ErrorIs(t, err, enquiry.ErrSubmitFailed)
	require.ErrorIs(t, err, enquiry.ErrUnexpectedStatus)
	assert.Equal(t, enquiry.StateError, state)
	assert.Equal(t, "asha@example.com", c.Snapshot().Values[enquiry.FieldEmail])
}
