package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns markdown templates with YAML frontmatter into an HTML body
// wrapped in a layout, plus a plain text alternative.
//
// Inside markdown templates the "escape" func escapes untrusted values for
// markdown. A sibling "<name>.txt" template, when present, supplies the plain
// text part; there "escape" is the identity. Without a sibling the executed
// markdown is used as the text part.
type Renderer struct {
	fs         fs.FS
	md         goldmark.Markdown
	htmlFilter func(string) string

	templates map[string]*cachedTemplate
	layouts   map[string]*template.Template

	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type cachedTemplate struct {
	metadata map[string]any
	markdown *texttemplate.Template
	text     *texttemplate.Template
}

// RendererConfig configures a Renderer.
type RendererConfig struct {
	// HTMLFilter post-processes the HTML converted from markdown before it
	// is placed into the layout. Typically an HTML sanitizer.
	HTMLFilter  func(string) string
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with a custom config.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}
	if cfg.HTMLFilter == nil {
		cfg.HTMLFilter = func(s string) string { return s }
	}

	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(goldmark.WithExtensions(extension.Table)),
		htmlFilter:  cfg.HTMLFilter,
		templates:   make(map[string]*cachedTemplate),
		layouts:     make(map[string]*template.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult is the output of a single render.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render executes templateName with data and wraps the HTML in layout.
// The layout receives .Content (the body HTML), .Metadata and .Data.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	tmpl, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var source bytes.Buffer
	if err := tmpl.markdown.Execute(&source, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	text := source.String()
	if tmpl.text != nil {
		var buf bytes.Buffer
		if err := tmpl.text.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: execute text part of %s: %v", ErrRenderFailed, templateName, err)
		}
		text = buf.String()
	}

	var body bytes.Buffer
	if err := r.md.Convert(source.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = layoutTmpl.Execute(&out, map[string]any{
		"Content":  template.HTML(r.htmlFilter(body.String())), //nolint:gosec // filtered markdown output
		"Metadata": tmpl.metadata,
		"Data":     data,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		Metadata: tmpl.metadata,
		HTML:     out.String(),
		Text:     text,
	}, nil
}

func (r *Renderer) template(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}
	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	md, err := texttemplate.New(name).
		Funcs(texttemplate.FuncMap{"escape": EscapeMarkdown}).
		Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}
	cached = &cachedTemplate{metadata: parsed.Metadata, markdown: md}

	textName := strings.TrimSuffix(name, path.Ext(name)) + ".txt"
	if textSource, err := fs.ReadFile(r.fs, path.Join(r.templateDir, textName)); err == nil {
		cached.text, err = texttemplate.New(textName).
			Funcs(texttemplate.FuncMap{"escape": func(s string) string { return s }}).
			Parse(string(textSource))
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, textName, err)
		}
	}

	r.templates[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layouts[name] = tmpl
	return tmpl, nil
}
