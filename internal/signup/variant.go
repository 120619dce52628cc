package signup

import (
	"fmt"
	"strings"
)

// Variant selects the validation and submission behaviour of a Form
type Variant int

const (
	// VariantClassic checks presence and password match only. A clean
	// submit succeeds immediately and keeps the entered values.
	VariantClassic Variant = iota + 1
	// VariantEnhanced adds email format and password length checks, clears
	// errors on edit, and submits through a delayed Submitting state.
	VariantEnhanced
)

// String returns the configuration name of the variant
func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantEnhanced:
		return "enhanced"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "classic"/"enhanced" (case-insensitive) to a Variant
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic":
		return VariantClassic, nil
	case "enhanced":
		return VariantEnhanced, nil
	default:
		return 0, fmt.Errorf("unknown form variant %q (want classic or enhanced)", s)
	}
}

// checksFormat reports whether the variant runs email/password format checks
func (v Variant) checksFormat() bool {
	return v == VariantEnhanced
}

// clearsOnEdit reports whether editing a field drops its current error
func (v Variant) clearsOnEdit() bool {
	return v == VariantEnhanced
}

// delaysSubmission reports whether a clean submit passes through Submitting
func (v Variant) delaysSubmission() bool {
	return v == VariantEnhanced
}

// successNotice is the message shown once a submission completes
func (v Variant) successNotice() string {
	if v == VariantEnhanced {
		return "Account created successfully! 🎉"
	}
	return "Signup Success 🎉"
}
