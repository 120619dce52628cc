// Signup is a terminal account signup form.
//
// Running without arguments opens the interactive form. The validate and
// submit commands run the same validation and submission rules headlessly,
// which is useful for scripting and for checking inputs quickly.
//
// Usage:
//
//	signup [command] [flags]
//
// See 'signup --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/signup/internal/config"
	"github.com/muurk/signup/internal/logging"
	"github.com/muurk/signup/internal/signup"
	"github.com/muurk/signup/internal/signup/tui"
	"github.com/muurk/signup/internal/version"
)

// errValidationFailed makes the process exit 1 without an extra error line;
// the command has already printed the field errors.
var errValidationFailed = errors.New("validation failed")

func main() {
	err := rootCmd.Execute()
	logging.Sync()

	if err != nil {
		if !errors.Is(err, errValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	configPath  string
	envFile     string
	variantFlag string
	delayFlag   time.Duration
	altScreen   bool
)

// prefs holds the effective preferences after PersistentPreRunE
var prefs *config.Preferences

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "Terminal account signup form",
	Long: `An interactive account signup form for the terminal.

Collects a full name, email and password with confirmation, validates them
and simulates account creation. Two behaviours are available:

  classic   required-field checks, instant success
  enhanced  adds email format and password length checks, clears an error
            as soon as its field is edited, and simulates a network delay

If no command is specified, the interactive form opens.`,
	Version:           version.Full(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadPreferences,
	RunE:              runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default: $XDG_CONFIG_HOME/signup/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with SIGNUP_* overrides (default: .env)")
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "Form variant (classic, enhanced)")
	rootCmd.PersistentFlags().DurationVar(&delayFlag, "delay", 0, "Simulated submission delay for the enhanced variant (e.g. 1.5s)")
	rootCmd.Flags().BoolVar(&altScreen, "alt-screen", true, "Use the terminal's alternate screen")

	rootCmd.AddCommand(versionCmd)
}

// loadPreferences resolves preferences and starts logging. Flags given on
// the command line override every other source.
func loadPreferences(cmd *cobra.Command, args []string) error {
	p, err := config.Load(config.LoadOptions{Path: configPath, EnvFile: envFile})
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		p.Variant = variantFlag
	}
	if flags.Changed("delay") {
		p.SubmitDelay = delayFlag
	}
	if flags.Changed("alt-screen") {
		p.AltScreen = altScreen
	}
	if err := p.Validate(); err != nil {
		return err
	}
	prefs = p

	opts := logging.Options{Level: p.LogLevel, File: p.LogFile}
	// The form owns the terminal, so its logs always go to a file
	if !cmd.HasParent() && opts.File == "" {
		path, err := config.DefaultLogPath()
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
		opts.File = path
	}
	if err := logging.InitializeWithOptions(opts); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Debug("Preferences resolved",
		zap.String("command", cmd.Name()),
		zap.String("variant", p.Variant),
		zap.Duration("submit_delay", p.SubmitDelay),
	)
	return nil
}

func runForm(cmd *cobra.Command, args []string) error {
	variant, err := prefs.FormVariant()
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if prefs.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logging.Info("Starting signup form", zap.String("variant", variant.String()))

	p := tea.NewProgram(tui.NewModel(variant, prefs.SubmitDelay), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("signup form error: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Skip preference loading so a broken config never hides the version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFormat == "detailed" {
			fmt.Fprintf(cmd.OutOrStdout(), "signup %s\n", version.Full())
			return nil
		}
		return writeReport(cmd.OutOrStdout(), versionFormat, version.Get())
	},
}

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "detailed", "Output format (detailed, json, yaml)")
}

// formVariant returns the effective variant for headless commands
func formVariant() (signup.Variant, error) {
	if prefs == nil {
		return signup.VariantEnhanced, nil
	}
	return prefs.FormVariant()
}
