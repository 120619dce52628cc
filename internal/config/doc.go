// Package config provides user preference management for the signup tool.
//
// Preferences control which form variant runs, how long the simulated
// submission takes, and where logs go. They are layered, lowest precedence
// first:
//
//  1. Built-in defaults (DefaultPreferences)
//  2. The YAML preferences file
//  3. A .env file in the working directory, if present
//  4. SIGNUP_* environment variables (SIGNUP_SUBMIT_DELAY -> submit_delay)
//
// Command-line flags are applied on top by the cmd package.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/signup/config.yaml or $HOME/.config/signup/config.yaml
//   - macOS: $HOME/.config/signup/config.yaml
//   - Windows: %LOCALAPPDATA%\signup\config.yaml
//
// # File Format
//
//	variant: enhanced
//	submit_delay: 1.5s
//	log_level: debug
//	log_file: /home/jane/.config/signup/signup.log
//	alt_screen: true
//
// # Security
//
// Entered form values (names, emails, passwords) are never stored.
package config
