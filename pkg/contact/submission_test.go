package contact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sub     Submission
		wantErr bool
	}{
		{name: "valid", sub: Submission{FirstName: "Asha", Email: "asha@example.com"}},
		{name: "missing both", sub: Submission{}, wantErr: true},
		{name: "missing first name", sub: Submission{Email: "asha@example.com"}, wantErr: true},
		{name: "missing email", sub: Submission{FirstName: "Asha"}, wantErr: true},
		{name: "whitespace first name", sub: Submission{FirstName: "   ", Email: "asha@example.com"}, wantErr: true},
		{name: "email shape not checked", sub: Submission{FirstName: "Asha", Email: "not-an-email"}},
		{name: "unknown project passes", sub: Submission{FirstName: "Asha", Email: "a@b.c", Project: "Moon Base"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.sub.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingRequired)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSubmission_FullName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Asha Rao", Submission{FirstName: "Asha", LastName: "Rao"}.FullName())
	require.Equal(t, "Asha", Submission{FirstName: "Asha"}.FullName())
}

func TestSubmission_Normalized(t *testing.T) {
	t.Parallel()

	s := Submission{
		FirstName: "  Asha\r\nBcc: x@evil.test ",
		Email:     " asha@example.com ",
		Message:   "  line one\nline two  ",
	}.normalized()

	require.Equal(t, "Asha Bcc: x@evil.test", s.FirstName)
	require.Equal(t, "asha@example.com", s.Email)
	require.Equal(t, "line one\nline two", s.Message)
}

func TestIsProject(t *testing.T) {
	t.Parallel()

	for _, p := range Projects {
		require.True(t, IsProject(p))
	}
	require.False(t, IsProject("luxe horizon"))
	require.False(t, IsProject(""))
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	code, res := Outcome(nil)
	require.Equal(t, 200, code)
	require.Equal(t, Result{Success: true, Message: "Email sent successfully"}, res)

	code, res = Outcome(ErrMissingRequired)
	require.Equal(t, 400, code)
	require.Equal(t, Result{Success: false, Error: "First name and email are required"}, res)

	code, res = Outcome(ErrAutoReplyFailed)
	require.Equal(t, 500, code)
	require.Equal(t, Result{Success: false, Error: "Failed to send email. Please try again later."}, res)
}
