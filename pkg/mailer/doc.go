// Package mailer composes templated emails and hands them to a pluggable
// delivery provider.
//
// # Components
//
//   - Sender: the interface delivery providers implement (see the smtp and
//     resend subpackages)
//   - Renderer: turns markdown templates with YAML frontmatter into a layout
//     wrapped HTML body and a plain text alternative
//   - Mailer: combines both; Compose builds an Email, Send composes and sends
//
// # Usage
//
//	sender := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     465,
//		Secure:   true,
//		Username: "info@example.com",
//		Password: os.Getenv("MAIL_PASS"),
//	})
//
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{
//		DefaultLayout:   "base.html",
//		FallbackSubject: "New message",
//	})
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "ops@example.com",
//		Template: "notification.md",
//		ReplyTo:  "visitor@example.com",
//		Data:     data,
//	})
//
// # Templates
//
// Templates are markdown with optional YAML frontmatter. The Subject key is
// used as the email subject and is itself a text/template:
//
//	---
//	Subject: "New Inquiry from {{.FullName}}"
//	Heading: New Property Inquiry
//	---
//	| Field | Value |
//	|---|---|
//	| **Name** | {{escape .FullName}} |
//
// Values that come from untrusted input must go through the escape func so
// they render literally. GFM tables are enabled.
//
// A sibling template with the same base name and a .txt extension supplies
// the plain text part. Without one, the executed markdown is used.
//
// Layouts are html/template files under the layout directory and receive
// .Content, .Metadata and .Data. Parsed templates and layouts are cached;
// rendering is safe for concurrent use.
//
// # Errors
//
// Failures wrap sentinel errors (ErrRenderFailed, ErrSendFailed, ...) and
// can be inspected with errors.Is.
package mailer
