package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantMeta map[string]any
		wantBody string
		wantErr  error
	}{
		{
			name:     "frontmatter and body",
			content:  "---\nSubject: \"New Inquiry from {{.FullName}}\"\nHeading: Inquiry\n---\n# Hello\n\nBody.\n",
			wantMeta: map[string]any{"Subject": "New Inquiry from {{.FullName}}", "Heading": "Inquiry"},
			wantBody: "# Hello\n\nBody.\n",
		},
		{
			name:     "no frontmatter",
			content:  "Just a body.",
			wantMeta: map[string]any{},
			wantBody: "Just a body.",
		},
		{
			name:     "empty frontmatter",
			content:  "---\n---\nBody.",
			wantMeta: map[string]any{},
			wantBody: "Body.",
		},
		{
			name:     "windows line endings",
			content:  "---\r\nSubject: Hi\r\n---\r\nLine one\r\nLine two",
			wantMeta: map[string]any{"Subject": "Hi"},
			wantBody: "Line one\nLine two",
		},
		{
			name:     "body keeps later fences",
			content:  "---\nSubject: Hi\n---\nabove\n\n---\n\nbelow",
			wantMeta: map[string]any{"Subject": "Hi"},
			wantBody: "above\n\n---\n\nbelow",
		},
		{
			name:    "missing closing fence",
			content: "---\nSubject: Hi\nbody",
			wantErr: ErrInvalidFrontmatter,
		},
		{
			name:    "nothing after opening fence",
			content: "---\n",
			wantErr: ErrInvalidFrontmatter,
		},
		{
			name:    "invalid yaml",
			content: "---\nSubject: [unclosed\n---\nbody",
			wantErr: ErrInvalidFrontmatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMeta, tmpl.Metadata)
			require.Equal(t, tt.wantBody, tmpl.Body)
		})
	}
}

func TestTemplate_String(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\nHeading: Thanks\nPriority: 3\n---\nbody"))
	require.NoError(t, err)
	require.Equal(t, "Thanks", tmpl.String("Heading"))
	require.Empty(t, tmpl.String("Priority"))
	require.Empty(t, tmpl.String("Missing"))
}
