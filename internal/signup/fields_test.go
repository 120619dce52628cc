package signup

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{"fullName", FieldFullName, false},
		{"email", FieldEmail, false},
		{"password", FieldPassword, false},
		{"confirmPassword", FieldConfirmPassword, false},
		{"CONFIRMPASSWORD", FieldConfirmPassword, false},
		{"username", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseField(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseField(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    Variant
		wantErr bool
	}{
		{"classic", VariantClassic, false},
		{"Enhanced", VariantEnhanced, false},
		{" classic ", VariantClassic, false},
		{"1", 0, true},
		{"2", 0, true},
		{"fancy", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVariant(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFieldErrorsHelpers(t *testing.T) {
	errs := FieldErrors{
		FullName:        MsgFullNameRequired,
		ConfirmPassword: MsgPasswordMismatch,
	}

	if errs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", errs.Len())
	}
	if errs.Empty() {
		t.Error("Empty() = true, want false")
	}
	if !errs.Has(FieldConfirmPassword) || errs.Has(FieldEmail) {
		t.Errorf("Has() wrong for %+v", errs)
	}

	cleared := errs.Without(FieldFullName)
	if cleared.Has(FieldFullName) {
		t.Error("Without() did not clear fullName")
	}
	if !errs.Has(FieldFullName) {
		t.Error("Without() modified the receiver")
	}

	want := []Field{FieldFullName, FieldConfirmPassword}
	if diff := cmp.Diff(want, errs.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldErrorsErr(t *testing.T) {
	if err := (FieldErrors{}).Err(); err != nil {
		t.Errorf("empty FieldErrors.Err() = %v, want nil", err)
	}

	err := FieldErrors{Email: MsgEmailInvalid, Password: MsgPasswordTooShort}.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError(%v) = false", err)
	}

	var fieldErr *FieldValidationError
	if !errors.As(err, &fieldErr) {
		t.Fatal("errors.As should reach the first FieldValidationError")
	}
	if fieldErr.Field != FieldEmail {
		t.Errorf("first error field = %v, want email", fieldErr.Field)
	}

	want := "email: Invalid email format; password: Password must be at least 8 characters"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsValidationErrorFalseForOthers(t *testing.T) {
	if IsValidationError(errors.New("boom")) {
		t.Error("plain error reported as validation error")
	}
	if IsValidationError(nil) {
		t.Error("nil reported as validation error")
	}
}

func TestFieldErrorsJSONOmitsCleanFields(t *testing.T) {
	data, err := json.Marshal(FieldErrors{FullName: MsgFullNameRequired})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"fullName":"Full name required"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
