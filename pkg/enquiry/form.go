package enquiry

import "github.com/paradise-realestate/relay/pkg/contact"

// Field names an input of the enquiry form. Values match the JSON keys of
// contact.Submission.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldProject   Field = "project"
	FieldMessage   Field = "message"
)

// InputType selects how a field is rendered.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputTel      InputType = "tel"
	InputSelect   InputType = "select"
	InputTextarea InputType = "textarea"
)

// FieldSpec describes one rendered input.
type FieldSpec struct {
	Field       Field
	Label       string
	Type        InputType
	Placeholder string
	Required    bool
}

// Variant is a named field layout of the same form.
type Variant string

const (
	VariantFull      Variant = "full"
	VariantCondensed Variant = "condensed"
)

var variants = map[Variant][]FieldSpec{
	VariantFull: {
		{Field: FieldFirstName, Label: "First Name", Type: InputText, Placeholder: "John", Required: true},
		{Field: FieldLastName, Label: "Last Name", Type: InputText, Placeholder: "Doe"},
		{Field: FieldEmail, Label: "Email Address", Type: InputEmail, Placeholder: "Info@preuae.com", Required: true},
		{Field: FieldPhone, Label: "Phone Number", Type: InputTel, Placeholder: "+971 12 345 6789"},
		{Field: FieldProject, Label: "Project of Interest", Type: InputSelect},
		{Field: FieldMessage, Label: "Message", Type: InputTextarea, Placeholder: "Tell us more about your requirements..."},
	},
	VariantCondensed: {
		{Field: FieldFirstName, Label: "Full Name", Type: InputText, Placeholder: "John Doe", Required: true},
		{Field: FieldPhone, Label: "Phone", Type: InputTel, Placeholder: "+971 50 371 7590"},
		{Field: FieldEmail, Label: "Email", Type: InputEmail, Placeholder: "Info@preuae.com", Required: true},
		{Field: FieldProject, Label: "Project of Interest", Type: InputSelect},
		{Field: FieldMessage, Label: "Message", Type: InputTextarea, Placeholder: "Tell us more about your requirements..."},
	},
}

// ParseVariant maps a query value to a Variant. Unknown or empty values
// fall back to VariantFull.
func ParseVariant(s string) Variant {
	if _, ok := variants[Variant(s)]; ok {
		return Variant(s)
	}
	return VariantFull
}

// Fields returns the field layout of v in render order.
func (v Variant) Fields() []FieldSpec {
	return append([]FieldSpec(nil), variants[ParseVariant(string(v))]...)
}

// Has reports whether f is part of the layout.
func (v Variant) Has(f Field) bool {
	for _, spec := range variants[ParseVariant(string(v))] {
		if spec.Field == f {
			return true
		}
	}
	return false
}

// ProjectOptions lists the select options, empty placeholder first.
func ProjectOptions() []string {
	return append([]string{""}, contact.Projects...)
}

// Values maps fields to their current input.
type Values map[Field]string

// Submission converts the values into the wire payload.
func (v Values) Submission() contact.Submission {
	return contact.Submission{
		FirstName: v[FieldFirstName],
		LastName:  v[FieldLastName],
		Email:     v[FieldEmail],
		Phone:     v[FieldPhone],
		Project:   v[FieldProject],
		Message:   v[FieldMessage],
	}
}
