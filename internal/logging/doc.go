// Package logging provides structured logging for the signup tool.
//
// This package wraps a package-level zap logger with convenience functions
// and a few form-specific helpers.
//
// # Log Levels
//
//   - Debug: Field edits and validation passes
//   - Info: Submission events (rejected, pending, succeeded, completed)
//   - Warn: Non-fatal issues such as an unreadable preferences file
//   - Error: Startup failures
//
// # Silent by Default
//
// Unless a level is given (SIGNUP_LOG_LEVEL or the log_level preference),
// the logger is a no-op so the curated terminal output stays clean.
//
// # Output
//
// The full-screen form owns the terminal, so when a log file is configured
// entries are written as JSON to a size-rotated file:
//
//	logging.InitializeWithOptions(logging.Options{
//	    Level: "debug",
//	    File:  "/home/jane/.config/signup/signup.log",
//	})
//	defer logging.Sync()
//
// Without a file, a human-readable console encoder writes to stderr.
//
// # Privacy
//
// Field helpers record field names and value lengths only. Passwords and
// other entered values are never logged.
package logging
