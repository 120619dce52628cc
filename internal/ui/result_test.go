package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestResultRenderKeepsDetailOrder(t *testing.T) {
	r := NewFailureResult("2 fields need attention",
		Param{Key: "Email", Value: "Invalid email format"},
		Param{Key: "Password", Value: "Password required"},
	).SetWidth(80)

	out := r.Render()

	for _, want := range []string{"FAILED", "2 fields need attention", "Invalid email format", "Password required"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Email") > strings.Index(out, "Password:") {
		t.Errorf("details rendered out of order:\n%s", out)
	}
}

func TestResultRenderSuccess(t *testing.T) {
	out := NewSuccessResult("Form is valid").AddDetail("Variant", "classic").Render()

	if !strings.Contains(out, SuccessMarker) || !strings.Contains(out, "SUCCESS") {
		t.Errorf("success box missing marker:\n%s", out)
	}
	if !strings.Contains(out, "classic") {
		t.Errorf("success box missing detail:\n%s", out)
	}
}

func TestResultRenderClampsWidth(t *testing.T) {
	narrow := NewSuccessResult("ok").SetWidth(10).Render()
	wide := NewSuccessResult("ok").SetWidth(MinTerminalWidth).Render()

	if narrow != wide {
		t.Error("widths below MinTerminalWidth should render like MinTerminalWidth")
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Validate Signup", "signup validate", Param{Key: "Variant", Value: "enhanced"}).
		SetWidth(80).
		Render()

	for _, want := range []string{"VALIDATE SIGNUP", "signup validate", "Variant:", "enhanced"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(NewSuccessResult("done"))

	if !strings.Contains(buf.String(), "done") {
		t.Errorf("printer output missing title: %q", buf.String())
	}
	if p.Width() < MinTerminalWidth {
		t.Errorf("Width() = %d, want >= %d", p.Width(), MinTerminalWidth)
	}
}
