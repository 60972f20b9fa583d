package contact

import (
	"errors"
	"slices"
	"strings"
)

// ErrMissingRequired is returned when the first name or the email is empty.
var ErrMissingRequired = errors.New("contact: first name and email are required")

// Projects is the closed set of developments a visitor can ask about.
var Projects = []string{
	"Luxe Horizon",
	"The Riveria",
	"Emerald Bay",
	"Skyline Towers",
}

// IsProject reports whether name is one of Projects.
func IsProject(name string) bool {
	return slices.Contains(Projects, name)
}

// Submission is the enquiry payload posted by the website form.
// Project is passed through as received; membership in Projects is not
// enforced server-side.
type Submission struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Project   string `json:"project,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Validate rejects submissions without a first name or email. Whitespace
// only values count as empty. The email shape is not checked here.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.FirstName) == "" || strings.TrimSpace(s.Email) == "" {
		return ErrMissingRequired
	}
	return nil
}

// FullName joins first and last name.
func (s Submission) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// normalized trims every field and folds line breaks out of the single line
// fields, which end up in headers and table cells.
func (s Submission) normalized() Submission {
	return Submission{
		FirstName: singleLine(s.FirstName),
		LastName:  singleLine(s.LastName),
		Email:     singleLine(s.Email),
		Phone:     singleLine(s.Phone),
		Project:   singleLine(s.Project),
		Message:   strings.TrimSpace(s.Message),
	}
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
