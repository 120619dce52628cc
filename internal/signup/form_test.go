package signup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func validFields() FormFields {
	return FormFields{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Password:        "longenough1",
		ConfirmPassword: "longenough1",
	}
}

func fillForm(f *Form, fields FormFields) {
	for _, field := range AllFields {
		f.Change(field, fields.Get(field))
	}
}

// fakeClock fires immediately and records requested delays
type fakeClock struct {
	requested []time.Duration
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.requested = append(c.requested, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

// blockedClock never fires
type blockedClock struct{}

func (blockedClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}

func TestNewForm(t *testing.T) {
	f := NewForm(VariantEnhanced, 0)

	if f.State() != StateIdle {
		t.Errorf("NewForm().State() = %v, want idle", f.State())
	}
	if !f.Fields().IsZero() {
		t.Errorf("NewForm().Fields() = %+v, want empty", f.Fields())
	}
	if !f.Errors().Empty() {
		t.Errorf("NewForm().Errors() = %+v, want empty", f.Errors())
	}
	if f.SubmitDelay() != DefaultSubmitDelay {
		t.Errorf("NewForm(0).SubmitDelay() = %v, want %v", f.SubmitDelay(), DefaultSubmitDelay)
	}
	if f.PasswordVisible() {
		t.Error("NewForm() password should start masked")
	}
}

func TestFormChangeReplacesOnlyOneField(t *testing.T) {
	f := NewForm(VariantClassic, time.Second)
	fillForm(f, validFields())

	f.Change(FieldEmail, "other@example.com")

	want := validFields()
	want.Email = "other@example.com"
	if diff := cmp.Diff(want, f.Fields()); diff != "" {
		t.Errorf("Fields() after Change mismatch (-want +got):\n%s", diff)
	}
}

func TestFormChangeReturnsNewSnapshot(t *testing.T) {
	f := NewForm(VariantClassic, time.Second)
	before := f.Fields()

	f.Change(FieldFullName, "Jane")

	if before.FullName != "" {
		t.Errorf("earlier snapshot was mutated: %+v", before)
	}
	if f.Fields().FullName != "Jane" {
		t.Errorf("Fields().FullName = %q, want Jane", f.Fields().FullName)
	}
}

// Scenario D: editing a field clears its error on the enhanced variant only
func TestFormChangeClearsError(t *testing.T) {
	tests := []struct {
		name          string
		variant       Variant
		wantFullName  string
		wantUntouched bool
	}{
		{"Enhanced clears edited field", VariantEnhanced, "", true},
		{"Classic keeps error until next submit", VariantClassic, MsgFullNameRequired, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm(tt.variant, time.Second)
			f.Submit()
			if !f.Errors().Has(FieldFullName) {
				t.Fatal("precondition: expected fullName error after empty submit")
			}

			// Whitespace is still invalid; the error clears anyway
			f.Change(FieldFullName, " ")

			if got := f.Errors().FullName; got != tt.wantFullName {
				t.Errorf("fullName error = %q, want %q", got, tt.wantFullName)
			}
			if tt.wantUntouched && f.Errors().Email != MsgEmailRequired {
				t.Errorf("email error = %q, other fields must be left alone", f.Errors().Email)
			}

			// Next submit re-validates and the error comes back
			f.Submit()
			if f.Errors().FullName != MsgFullNameRequired {
				t.Errorf("fullName error after resubmit = %q, want %q", f.Errors().FullName, MsgFullNameRequired)
			}
		})
	}
}

func TestFormTogglePasswordVisibility(t *testing.T) {
	f := NewForm(VariantEnhanced, time.Second)

	f.TogglePasswordVisibility()
	if !f.PasswordVisible() {
		t.Error("expected visible after first toggle")
	}
	f.TogglePasswordVisibility()
	if f.PasswordVisible() {
		t.Error("expected masked after second toggle")
	}
}

// Scenario A: empty form is rejected with no notice
func TestFormSubmitRejected(t *testing.T) {
	for _, variant := range []Variant{VariantClassic, VariantEnhanced} {
		t.Run(variant.String(), func(t *testing.T) {
			f := NewForm(variant, time.Second)

			result := f.Submit()

			if result.Outcome != OutcomeRejected {
				t.Errorf("Outcome = %v, want rejected", result.Outcome)
			}
			if result.Notice != "" {
				t.Errorf("Notice = %q, want none", result.Notice)
			}
			if f.State() != StateIdle {
				t.Errorf("State = %v, want idle", f.State())
			}
			want := []Field{FieldFullName, FieldEmail, FieldPassword}
			if diff := cmp.Diff(want, result.Errors.Fields()); diff != "" {
				t.Errorf("failing fields mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(result.Errors, f.Errors()); diff != "" {
				t.Errorf("form errors differ from result (-result +form):\n%s", diff)
			}
		})
	}
}

// Scenario C: short password blocks an enhanced submit
func TestFormSubmitShortPassword(t *testing.T) {
	f := NewForm(VariantEnhanced, time.Second)
	fields := validFields()
	fields.Password = "short"
	fields.ConfirmPassword = "short"
	fillForm(f, fields)

	result := f.Submit()

	if result.Outcome != OutcomeRejected {
		t.Fatalf("Outcome = %v, want rejected", result.Outcome)
	}
	if result.Errors.Password != MsgPasswordTooShort {
		t.Errorf("password error = %q, want %q", result.Errors.Password, MsgPasswordTooShort)
	}
	if result.Errors.Has(FieldConfirmPassword) {
		t.Errorf("matching confirmation should not be flagged: %q", result.Errors.ConfirmPassword)
	}
}

func TestFormSubmitClassicSucceedsImmediately(t *testing.T) {
	f := NewForm(VariantClassic, time.Second)
	fillForm(f, validFields())

	result := f.Submit()

	if result.Outcome != OutcomeSucceeded {
		t.Fatalf("Outcome = %v, want succeeded", result.Outcome)
	}
	if result.Notice != "Signup Success 🎉" {
		t.Errorf("Notice = %q", result.Notice)
	}
	if f.State() != StateIdle {
		t.Errorf("classic form must never enter Submitting, got %v", f.State())
	}
	if diff := cmp.Diff(validFields(), f.Fields()); diff != "" {
		t.Errorf("classic success must keep fields (-want +got):\n%s", diff)
	}
}

// Scenario B: enhanced submission goes through Submitting and resets
func TestFormSubmitEnhancedLifecycle(t *testing.T) {
	f := NewForm(VariantEnhanced, 2*time.Second)
	fillForm(f, validFields())

	result := f.Submit()
	if result.Outcome != OutcomePending {
		t.Fatalf("Outcome = %v, want pending", result.Outcome)
	}
	if result.Delay != 2*time.Second {
		t.Errorf("Delay = %v, want 2s", result.Delay)
	}
	if !f.Submitting() {
		t.Fatal("expected Submitting after valid enhanced submit")
	}

	// A second submit while in flight is ignored
	again := f.Submit()
	if again.Outcome != OutcomeIgnored {
		t.Errorf("second Submit outcome = %v, want ignored", again.Outcome)
	}

	// Keystrokes may interleave before completion
	f.Change(FieldFullName, "Jane Q. Doe")

	notice, err := f.CompleteSubmission()
	if err != nil {
		t.Fatalf("CompleteSubmission() error = %v", err)
	}
	if notice != "Account created successfully! 🎉" {
		t.Errorf("notice = %q", notice)
	}
	if f.State() != StateIdle {
		t.Errorf("State after completion = %v, want idle", f.State())
	}
	if !f.Fields().IsZero() {
		t.Errorf("Fields after completion = %+v, want empty", f.Fields())
	}
	if !f.Errors().Empty() {
		t.Errorf("Errors after completion = %+v, want empty", f.Errors())
	}
}

func TestFormCompleteSubmissionWhenIdle(t *testing.T) {
	f := NewForm(VariantEnhanced, time.Second)

	_, err := f.CompleteSubmission()
	if !errors.Is(err, ErrNotSubmitting) {
		t.Errorf("CompleteSubmission() error = %v, want ErrNotSubmitting", err)
	}
}

func TestFormSubmitAndWait(t *testing.T) {
	clock := &fakeClock{}
	f := NewForm(VariantEnhanced, 3*time.Second)
	fillForm(f, validFields())

	result, err := f.SubmitAndWait(context.Background(), clock)
	if err != nil {
		t.Fatalf("SubmitAndWait() error = %v", err)
	}
	if result.Outcome != OutcomeSucceeded {
		t.Errorf("Outcome = %v, want succeeded", result.Outcome)
	}
	if result.Notice == "" {
		t.Error("expected success notice")
	}
	if diff := cmp.Diff([]time.Duration{3 * time.Second}, clock.requested); diff != "" {
		t.Errorf("clock delays mismatch (-want +got):\n%s", diff)
	}
	if !f.Fields().IsZero() {
		t.Errorf("fields not reset: %+v", f.Fields())
	}
}

func TestFormSubmitAndWaitRejected(t *testing.T) {
	clock := &fakeClock{}
	f := NewForm(VariantEnhanced, time.Second)

	result, err := f.SubmitAndWait(context.Background(), clock)
	if err != nil {
		t.Fatalf("SubmitAndWait() error = %v", err)
	}
	if result.Outcome != OutcomeRejected {
		t.Errorf("Outcome = %v, want rejected", result.Outcome)
	}
	if len(clock.requested) != 0 {
		t.Errorf("clock should not be used for a rejected submit, got %v", clock.requested)
	}
}

func TestFormSubmitAndWaitCancelled(t *testing.T) {
	f := NewForm(VariantEnhanced, time.Second)
	fillForm(f, validFields())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.SubmitAndWait(ctx, blockedClock{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("SubmitAndWait() error = %v, want context.Canceled", err)
	}
	if !f.Submitting() {
		t.Error("abandoned wait should leave the form Submitting")
	}
}

// Property: submission proceeds iff validation finds no errors
func TestFormSubmitProceedsIffClean(t *testing.T) {
	inputs := []FormFields{
		{},
		validFields(),
		{FullName: "  ", Email: "a@b.co", Password: "longenough1", ConfirmPassword: "longenough1"},
		{FullName: "Jane", Email: "a@b.co", Password: "longenough1", ConfirmPassword: "longenough2"},
		{FullName: "Jane", Email: "nope", Password: "longenough1", ConfirmPassword: "longenough1"},
	}

	for _, variant := range []Variant{VariantClassic, VariantEnhanced} {
		for _, in := range inputs {
			f := NewForm(variant, time.Second)
			fillForm(f, in)

			result := f.Submit()
			clean := Validate(in, variant).Empty()
			proceeded := result.Outcome == OutcomeSucceeded || result.Outcome == OutcomePending

			if clean != proceeded {
				t.Errorf("%s %+v: clean=%v proceeded=%v", variant, in, clean, proceeded)
			}
		}
	}
}
