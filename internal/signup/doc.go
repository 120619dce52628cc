// Package signup implements the signup form: its field state, validation and
// simulated submission.
//
// The package has no terminal or network dependencies. It is driven by the
// TUI in package tui and by the headless validate/submit commands.
//
// # Variants
//
// Two behaviours are supported, selected by Variant:
//   - Classic: presence checks plus password confirmation. A clean submit is
//     reported at once and the fields are kept.
//   - Enhanced: adds an email format check and an 8 character password
//     minimum, clears a field's error when that field is edited, and passes
//     through a Submitting state for a fixed delay before resetting the form.
//
// # Usage Example
//
//	form := signup.NewForm(signup.VariantEnhanced, signup.DefaultSubmitDelay)
//	form.Change(signup.FieldFullName, "Jane Doe")
//	form.Change(signup.FieldEmail, "jane@example.com")
//	form.Change(signup.FieldPassword, "longenough1")
//	form.Change(signup.FieldConfirmPassword, "longenough1")
//
//	result := form.Submit()
//	switch result.Outcome {
//	case signup.OutcomeRejected:
//	    // render result.Errors inline
//	case signup.OutcomePending:
//	    // schedule form.CompleteSubmission() after result.Delay
//	}
//
// # Validation Rules
//
//   - fullName: required (whitespace only counts as empty)
//   - email: required; Enhanced also requires local@domain.tld
//   - password: required (not trimmed); Enhanced also requires 8+ characters
//   - confirmPassword: must equal password byte for byte, always checked
//
// # Thread Safety
//
// A Form is owned by a single event loop and is not safe for concurrent use.
// Validate and the per-field validators are pure and safe anywhere.
package signup
