// Package ui provides run-once terminal output for the headless signup
// commands (validate, submit, config show).
//
// Unlike the interactive form in package tui, these components render a
// styled block and return. They never read input.
//
// # Components
//
//   - Header: command banner with title, command path and parameters
//   - Result: success or failure box with ordered key/value details
//   - Printer: writes components to an io.Writer at terminal width
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader(ui.NewHeader("Validate Signup", "signup validate",
//	    ui.Param{Key: "Variant", Value: "enhanced"}))
//	p.PrintResult(ui.NewFailureResult("2 fields need attention",
//	    ui.Param{Key: "Email", Value: "Invalid email format"},
//	    ui.Param{Key: "Password", Value: "Password must be at least 8 characters"}))
//
// # Logging Integration
//
// Logging is silent unless SIGNUP_LOG_LEVEL is set, so the curated output
// is displayed cleanly.
package ui
