package enquiry

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Path is where the server-rendered form is mounted.
const Path = "/enquiry"

// Copy shown by the rendered form.
const (
	TextSubmit       = "Submit Enquiry"
	TextSubmitting   = "Sending..."
	TextError        = "Something went wrong. Please try again or contact us directly."
	TextSuccessTitle = "Thank You!"
	TextSuccessBody  = "We've received your inquiry and will get back to you within 24-48 hours."
	TextSendAnother  = "Send another message"
	textNoProject    = "Select a Project"
	elementID        = "enquiry-form"
)

// View renders the current state of the controller as an htmx fragment.
func (c *Controller) View() templ.Component {
	return Render(c.Snapshot())
}

// Render renders s as an htmx fragment that replaces itself on submit.
func Render(s Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		action := Path + "?" + url.Values{"variant": {string(s.Variant)}}.Encode()

		fmt.Fprintf(&b, `<div id="%s" class="enquiry enquiry--%s">`, elementID, esc(string(s.Variant)))
		if s.State == StateSuccess {
			writeSuccess(&b, action)
		} else {
			writeForm(&b, s, action)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSuccess(b *strings.Builder, action string) {
	b.WriteString(`<div class="enquiry__success" role="status">`)
	fmt.Fprintf(b, `<h3>%s</h3><p>%s</p>`, esc(TextSuccessTitle), esc(TextSuccessBody))
	fmt.Fprintf(b, `<button type="button" hx-get="%s" hx-target="#%s" hx-swap="outerHTML">%s</button>`,
		esc(action), elementID, esc(TextSendAnother))
	b.WriteString(`</div>`)
}

func writeForm(b *strings.Builder, s Snapshot, action string) {
	fmt.Fprintf(b, `<form method="post" action="%s" hx-post="%s" hx-target="#%s" hx-swap="outerHTML" hx-disabled-elt="find button[type='submit']">`,
		esc(action), esc(action), elementID)

	for _, spec := range s.Variant.Fields() {
		writeField(b, spec, s.Values[spec.Field])
	}

	if s.State == StateError {
		fmt.Fprintf(b, `<p class="enquiry__error" role="alert">%s</p>`, esc(TextError))
	}

	label, disabled := TextSubmit, ""
	if s.State == StateSubmitting {
		label, disabled = TextSubmitting, " disabled"
	}
	fmt.Fprintf(b, `<button type="submit"%s>%s</button>`, disabled, esc(label))
	b.WriteString(`</form>`)
}

func writeField(b *strings.Builder, spec FieldSpec, value string) {
	id := "enquiry-" + string(spec.Field)
	label, required := spec.Label, ""
	if spec.Required {
		label, required = label+" *", " required"
	}

	b.WriteString(`<div class="enquiry__field">`)
	fmt.Fprintf(b, `<label for="%s">%s</label>`, id, esc(label))

	switch spec.Type {
	case InputSelect:
		fmt.Fprintf(b, `<select id="%s" name="%s">`, id, spec.Field)
		for _, opt := range ProjectOptions() {
			text, selected := opt, ""
			if opt == "" {
				text = textNoProject
			}
			if opt == value {
				selected = " selected"
			}
			fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, esc(opt), selected, esc(text))
		}
		b.WriteString(`</select>`)
	case InputTextarea:
		fmt.Fprintf(b, `<textarea id="%s" name="%s" rows="3" placeholder="%s"%s>%s</textarea>`,
			id, spec.Field, esc(spec.Placeholder), required, esc(value))
	default:
		fmt.Fprintf(b, `<input type="%s" id="%s" name="%s" value="%s" placeholder="%s"%s>`,
			spec.Type, id, spec.Field, esc(value), esc(spec.Placeholder), required)
	}
	b.WriteString(`</div>`)
}

func esc(s string) string {
	return templ.EscapeString(s)
}
