package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterFence = []byte("---")

// Template is a message template split into its YAML frontmatter and body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// ParseTemplate splits a template into frontmatter metadata and body.
// Content without a leading fence is treated as body only.
func ParseTemplate(content []byte) (*Template, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, frontmatterFence) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(content[len(frontmatterFence):], "\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: empty template after opening fence", ErrInvalidFrontmatter)
	}

	head, body, found := bytes.Cut(rest, frontmatterFence)
	if !found {
		return nil, fmt.Errorf("%w: closing fence not found", ErrInvalidFrontmatter)
	}
	body = bytes.TrimPrefix(body, []byte("\n"))

	meta := map[string]any{}
	if len(bytes.TrimSpace(head)) > 0 {
		if err := yaml.Unmarshal(head, &meta); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: meta, Body: string(body)}, nil
}

// String returns a metadata value as a string, or "" when missing.
func (t *Template) String(key string) string {
	if v, ok := t.Metadata[key].(string); ok {
		return v
	}
	return ""
}
