// Package tui implements the interactive signup form.
//
// The form is a single Bubble Tea model wrapping a signup.Form. Four
// bubbles/textinput inputs mirror the form's fields, a toggle switches
// password visibility for both password inputs, and a submit control runs
// validation. Errors render inline under the failing input.
//
// # Submission
//
// The classic variant shows its success alert as soon as a valid form is
// submitted. The enhanced variant enters a submitting state, shows a
// spinner and schedules a tea.Tick for the configured delay. Keystrokes
// that arrive before the tick are still applied; the completion then clears
// every input and shows the alert.
//
// The alert is modal: until it is dismissed with enter, only ctrl+c is
// handled.
//
// # Usage Example
//
//	m := tui.NewModel(signup.VariantEnhanced, 1500*time.Millisecond)
//	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
package tui
