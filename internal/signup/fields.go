package signup

import (
	"fmt"
	"strings"
)

// Field identifies one of the four form inputs
type Field int

const (
	FieldFullName Field = iota
	FieldEmail
	FieldPassword
	FieldConfirmPassword
)

// AllFields lists the fields in display order
var AllFields = []Field{
	FieldFullName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
}

// String returns the wire name of the field (as used in JSON/YAML output)
func (f Field) String() string {
	switch f {
	case FieldFullName:
		return "fullName"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	case FieldConfirmPassword:
		return "confirmPassword"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Label returns the human-readable input label
func (f Field) Label() string {
	switch f {
	case FieldFullName:
		return "Full Name"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	default:
		return f.String()
	}
}

// Placeholder returns the hint shown in an empty input
func (f Field) Placeholder() string {
	switch f {
	case FieldFullName:
		return "Enter your name"
	case FieldEmail:
		return "Enter your email"
	case FieldPassword:
		return "Enter password"
	case FieldConfirmPassword:
		return "Re-enter password"
	default:
		return ""
	}
}

// IsSecret reports whether the field is masked unless visibility is toggled on
func (f Field) IsSecret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// ParseField maps a wire name ("fullName", "email", ...) to a Field.
// Matching is case-insensitive.
func ParseField(name string) (Field, error) {
	for _, f := range AllFields {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// FormFields holds the four editable values of the form.
// It is a value type: With returns a new copy and leaves the receiver intact.
type FormFields struct {
	FullName        string `json:"fullName" yaml:"fullName"`
	Email           string `json:"email" yaml:"email"`
	Password        string `json:"password" yaml:"password"`
	ConfirmPassword string `json:"confirmPassword" yaml:"confirmPassword"`
}

// Get returns the value of a field
func (f FormFields) Get(field Field) string {
	switch field {
	case FieldFullName:
		return f.FullName
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	default:
		return ""
	}
}

// With returns a copy of f with one field replaced
func (f FormFields) With(field Field, value string) FormFields {
	switch field {
	case FieldFullName:
		f.FullName = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	}
	return f
}

// IsZero reports whether every field is empty
func (f FormFields) IsZero() bool {
	return f == FormFields{}
}

// FieldErrors holds at most one message per field. An empty string means the
// field currently passes validation.
type FieldErrors struct {
	FullName        string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Email           string `json:"email,omitempty" yaml:"email,omitempty"`
	Password        string `json:"password,omitempty" yaml:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty" yaml:"confirmPassword,omitempty"`
}

// Get returns the message for a field, or "" if the field has no error
func (e FieldErrors) Get(field Field) string {
	switch field {
	case FieldFullName:
		return e.FullName
	case FieldEmail:
		return e.Email
	case FieldPassword:
		return e.Password
	case FieldConfirmPassword:
		return e.ConfirmPassword
	default:
		return ""
	}
}

// Has reports whether the field currently has an error
func (e FieldErrors) Has(field Field) bool {
	return e.Get(field) != ""
}

// Without returns a copy of e with the error for one field cleared
func (e FieldErrors) Without(field Field) FieldErrors {
	return e.with(field, "")
}

func (e FieldErrors) with(field Field, message string) FieldErrors {
	switch field {
	case FieldFullName:
		e.FullName = message
	case FieldEmail:
		e.Email = message
	case FieldPassword:
		e.Password = message
	case FieldConfirmPassword:
		e.ConfirmPassword = message
	}
	return e
}

// Len returns the number of fields with an error
func (e FieldErrors) Len() int {
	n := 0
	for _, f := range AllFields {
		if e.Has(f) {
			n++
		}
	}
	return n
}

// Empty reports whether no field has an error
func (e FieldErrors) Empty() bool {
	return e == FieldErrors{}
}

// Errors returns the errors as FieldValidationErrors in display order
func (e FieldErrors) Errors() []*FieldValidationError {
	var errs []*FieldValidationError
	for _, f := range AllFields {
		if msg := e.Get(f); msg != "" {
			errs = append(errs, &FieldValidationError{Field: f, Message: msg})
		}
	}
	return errs
}

// Err returns nil when e is empty, otherwise a ValidationErrors value
func (e FieldErrors) Err() error {
	if e.Empty() {
		return nil
	}
	return ValidationErrors(e.Errors())
}

// Fields returns the names of the failing fields in display order
func (e FieldErrors) Fields() []Field {
	var fields []Field
	for _, f := range AllFields {
		if e.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
