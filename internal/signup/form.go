package signup

import (
	"time"

	"github.com/muurk/signup/internal/logging"
)

// DefaultSubmitDelay is how long the simulated submission stays in flight
const DefaultSubmitDelay = 1500 * time.Millisecond

// State is the submission state of a Form
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Outcome describes what a call to Submit did
type Outcome int

const (
	// OutcomeRejected: validation failed, the form stays Idle
	OutcomeRejected Outcome = iota
	// OutcomeSucceeded: validation passed and success is reported now (Classic)
	OutcomeSucceeded
	// OutcomePending: validation passed and the form is Submitting (Enhanced)
	OutcomePending
	// OutcomeIgnored: a submission is already in flight
	OutcomeIgnored
)

// String returns a human-readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomePending:
		return "pending"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// SubmitResult is returned by Submit
type SubmitResult struct {
	Outcome Outcome
	Errors  FieldErrors   // Errors found by validation (Rejected only)
	Notice  string        // Success message to show (Succeeded only)
	Delay   time.Duration // Time until CompleteSubmission is due (Pending only)
}

// Form holds the state of one signup form: its field values, the current
// error set, the submission state and the shared password visibility flag.
type Form struct {
	variant      Variant
	submitDelay  time.Duration
	fields       FormFields
	errors       FieldErrors
	state        State
	showPassword bool
}

// NewForm creates an empty, idle form. A non-positive delay falls back to
// DefaultSubmitDelay.
func NewForm(variant Variant, submitDelay time.Duration) *Form {
	if submitDelay <= 0 {
		submitDelay = DefaultSubmitDelay
	}
	return &Form{
		variant:     variant,
		submitDelay: submitDelay,
	}
}

// Variant returns the form's variant
func (f *Form) Variant() Variant { return f.variant }

// SubmitDelay returns the simulated submission delay
func (f *Form) SubmitDelay() time.Duration { return f.submitDelay }

// Fields returns the current field values
func (f *Form) Fields() FormFields { return f.fields }

// Errors returns the current error set
func (f *Form) Errors() FieldErrors { return f.errors }

// State returns the submission state
func (f *Form) State() State { return f.state }

// Submitting reports whether a submission is in flight
func (f *Form) Submitting() bool { return f.state == StateSubmitting }

// PasswordVisible reports whether password inputs are shown in plain text
func (f *Form) PasswordVisible() bool { return f.showPassword }

// Change replaces the value of one field. On the Enhanced variant it also
// clears that field's error without re-validating; the error can only come
// back on the next Submit.
func (f *Form) Change(field Field, value string) {
	f.fields = f.fields.With(field, value)

	if f.variant.clearsOnEdit() && f.errors.Has(field) {
		f.errors = f.errors.Without(field)
		logging.LogFieldChange(field.String(), len(value), true)
		return
	}
	logging.LogFieldChange(field.String(), len(value), false)
}

// TogglePasswordVisibility flips the flag shared by both password inputs
func (f *Form) TogglePasswordVisibility() {
	f.showPassword = !f.showPassword
}

// Reset empties every field and clears all errors. Visibility is kept.
func (f *Form) Reset() {
	f.fields = FormFields{}
	f.errors = FieldErrors{}
}

// Submit validates the form and advances the submission state machine.
//
// From Idle, validation errors keep the form Idle and are returned. A clean
// Classic form succeeds immediately. A clean Enhanced form moves to
// Submitting; the caller must invoke CompleteSubmission once Delay has
// elapsed. While Submitting, Submit does nothing.
func (f *Form) Submit() SubmitResult {
	if f.state == StateSubmitting {
		logging.LogSubmission(f.variant.String(), OutcomeIgnored.String())
		return SubmitResult{Outcome: OutcomeIgnored}
	}

	f.errors = Validate(f.fields, f.variant)
	logging.LogValidation(f.variant.String(), f.errors.Len())

	if !f.errors.Empty() {
		logging.LogSubmission(f.variant.String(), OutcomeRejected.String())
		return SubmitResult{Outcome: OutcomeRejected, Errors: f.errors}
	}

	if !f.variant.delaysSubmission() {
		logging.LogSubmission(f.variant.String(), OutcomeSucceeded.String())
		return SubmitResult{Outcome: OutcomeSucceeded, Notice: f.variant.successNotice()}
	}

	f.state = StateSubmitting
	logging.LogSubmission(f.variant.String(), OutcomePending.String())
	return SubmitResult{Outcome: OutcomePending, Delay: f.submitDelay}
}

// CompleteSubmission finishes an in-flight submission: the form returns to
// Idle with all fields and errors cleared, and the success notice is
// returned. It fails with ErrNotSubmitting if the form is Idle.
func (f *Form) CompleteSubmission() (string, error) {
	if f.state != StateSubmitting {
		return "", ErrNotSubmitting
	}
	f.state = StateIdle
	f.Reset()
	logging.LogSubmission(f.variant.String(), "completed")
	return f.variant.successNotice(), nil
}
