package signup

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password the Enhanced variant accepts
const MinPasswordLength = 8

// Messages shown under failing inputs
const (
	MsgFullNameRequired = "Full name required"
	MsgEmailRequired    = "Email required"
	MsgEmailInvalid     = "Invalid email format"
	MsgPasswordRequired = "Password required"
	MsgPasswordTooShort = "Password must be at least 8 characters"
	MsgPasswordMismatch = "Passwords do not match"
)

// emailPattern accepts local@domain.tld: a single "@", at least one "."
// after it, and no whitespace anywhere. RE2's \s is ASCII-only, so Unicode
// separators (\p{Z}) and NEL are excluded explicitly, matching unicode.IsSpace.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{85}@]+@[^\s\p{Z}\x{85}@]+\.[^\s\p{Z}\x{85}@]+$`)

// ValidateFullName rejects names that are empty after trimming whitespace
func ValidateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError(FieldFullName, MsgFullNameRequired)
	}
	return nil
}

// ValidateEmail rejects empty (after trimming) addresses. With checkFormat
// set, the untrimmed value must also look like local@domain.tld.
func ValidateEmail(email string, checkFormat bool) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError(FieldEmail, MsgEmailRequired)
	}
	if checkFormat && !emailPattern.MatchString(email) {
		return NewValidationError(FieldEmail, MsgEmailInvalid)
	}
	return nil
}

// ValidatePassword rejects an empty password (whitespace is significant).
// With checkLength set, passwords shorter than MinPasswordLength characters
// are rejected too.
func ValidatePassword(password string, checkLength bool) error {
	if password == "" {
		return NewValidationError(FieldPassword, MsgPasswordRequired)
	}
	if checkLength && utf8.RuneCountInString(password) < MinPasswordLength {
		return NewValidationError(FieldPassword, MsgPasswordTooShort)
	}
	return nil
}

// ValidateConfirmPassword rejects a confirmation that differs from password.
// It runs regardless of whether password itself is valid.
func ValidateConfirmPassword(password, confirm string) error {
	if password != confirm {
		return NewValidationError(FieldConfirmPassword, MsgPasswordMismatch)
	}
	return nil
}

// Validate runs every field rule for the variant and returns the resulting
// error set. It is pure: the same input always yields the same FieldErrors.
func Validate(fields FormFields, variant Variant) FieldErrors {
	checks := []error{
		ValidateFullName(fields.FullName),
		ValidateEmail(fields.Email, variant.checksFormat()),
		ValidatePassword(fields.Password, variant.checksFormat()),
		ValidateConfirmPassword(fields.Password, fields.ConfirmPassword),
	}

	var errs FieldErrors
	for _, err := range checks {
		if fieldErr, ok := err.(*FieldValidationError); ok {
			errs = errs.with(fieldErr.Field, fieldErr.Message)
		}
	}
	return errs
}
