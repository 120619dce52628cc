package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/signup/internal/config"
	"github.com/muurk/signup/internal/logging"
	"github.com/muurk/signup/internal/signup"
	"github.com/muurk/signup/internal/ui"
	"github.com/muurk/signup/internal/urls"
)

// Form field flags shared by validate and submit
var (
	fieldValues  signup.FormFields
	outputFormat string
	forceInit    bool
)

func init() {
	for _, c := range []*cobra.Command{validateCmd, submitCmd} {
		c.Flags().StringVar(&fieldValues.FullName, "full-name", "", "Full name")
		c.Flags().StringVar(&fieldValues.Email, "email", "", "Email address")
		c.Flags().StringVar(&fieldValues.Password, "password", "", "Password")
		c.Flags().StringVar(&fieldValues.ConfirmPassword, "confirm-password", "", "Password confirmation")
		c.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json, yaml)")
	}

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing preferences file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(configCmd)
}

// formReport is the machine-readable result of validate and submit
type formReport struct {
	Variant string             `json:"variant" yaml:"variant"`
	Valid   bool               `json:"valid" yaml:"valid"`
	Outcome string             `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Notice  string             `json:"notice,omitempty" yaml:"notice,omitempty"`
	Errors  signup.FieldErrors `json:"errors" yaml:"errors"`
}

// validateCmd checks field values without submitting
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate signup fields",
	Long: `Run the form's validation rules against the given field values and
report every failing field.

Exits with status 1 when any field fails.`,
	Example: `  # Check a complete signup with the enhanced rules
  signup validate --full-name "Jane Doe" --email jane@example.com \
    --password hunter2hunter2 --confirm-password hunter2hunter2

  # Classic rules only check for empty fields
  signup validate --variant classic --email not-an-email

  # JSON output for scripting
  signup validate --email jane@example.com --format json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}
	variant, err := formVariant()
	if err != nil {
		return err
	}

	errs := signup.Validate(fieldValues, variant)
	logging.LogValidation(variant.String(), errs.Len())

	report := formReport{
		Variant: variant.String(),
		Valid:   errs.Empty(),
		Errors:  errs,
	}

	out := cmd.OutOrStdout()
	if outputFormat == "detailed" {
		p := ui.NewPrinter(out)
		p.PrintHeader(ui.NewHeader("Validate Signup", "signup validate",
			ui.Param{Key: "Variant", Value: variant.String()},
		))
		p.PrintResult(validationResult(errs, "All fields are valid"))
		if !errs.Empty() {
			p.Println("Field rules: " + urls.AccountRules)
		}
	} else if err := writeReport(out, outputFormat, report); err != nil {
		return err
	}

	if !errs.Empty() {
		return errValidationFailed
	}
	return nil
}

// submitCmd runs a full headless submission
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the signup form headlessly",
	Long: `Validate the given field values and, when they pass, run the same
submission flow as the interactive form. The enhanced variant waits out the
simulated delay before reporting success.

Exits with status 1 when any field fails.`,
	Example: `  # Submit with a short delay
  signup submit --delay 200ms --full-name "Jane Doe" --email jane@example.com \
    --password hunter2hunter2 --confirm-password hunter2hunter2

  # YAML output
  signup submit --variant classic --full-name Jane --email j@x.io \
    --password a --confirm-password a --format yaml`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}
	variant, err := formVariant()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	form := signup.NewForm(variant, prefs.SubmitDelay)
	result, err := submitFields(ctx, form, fieldValues, signup.RealClock{})
	if err != nil {
		return fmt.Errorf("submission interrupted: %w", err)
	}

	report := formReport{
		Variant: variant.String(),
		Valid:   result.Errors.Empty(),
		Outcome: result.Outcome.String(),
		Notice:  result.Notice,
		Errors:  result.Errors,
	}

	out := cmd.OutOrStdout()
	if outputFormat == "detailed" {
		p := ui.NewPrinter(out)
		p.PrintHeader(ui.NewHeader("Submit Signup", "signup submit",
			ui.Param{Key: "Variant", Value: variant.String()},
			ui.Param{Key: "Delay", Value: form.SubmitDelay().String()},
		))
		p.PrintResult(validationResult(result.Errors, result.Notice))
	} else if err := writeReport(out, outputFormat, report); err != nil {
		return err
	}

	if result.Outcome == signup.OutcomeRejected {
		return errValidationFailed
	}
	return nil
}

// submitFields enters values the way a user would, one field at a time, and
// then submits and waits for any pending completion
func submitFields(ctx context.Context, form *signup.Form, values signup.FormFields, clock signup.Clock) (signup.SubmitResult, error) {
	for _, field := range signup.AllFields {
		form.Change(field, values.Get(field))
	}
	result, err := form.SubmitAndWait(ctx, clock)
	if err != nil {
		logging.Warn("Submission abandoned", zap.Error(err))
	}
	return result, err
}

func validationResult(errs signup.FieldErrors, successTitle string) *ui.Result {
	if errs.Empty() {
		return ui.NewSuccessResult(successTitle)
	}

	details := make([]ui.Param, 0, errs.Len())
	for _, fe := range errs.Errors() {
		details = append(details, ui.Param{Key: fe.Field.Label(), Value: fe.Message})
	}
	title := strconv.Itoa(errs.Len()) + " field(s) need attention"
	return ui.NewFailureResult(title, details...)
}

func checkFormat(format string) error {
	switch format {
	case "detailed", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use detailed, json or yaml)", format)
	}
}

func writeReport(w io.Writer, format string, report any) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// configCmd groups preference management
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage signup preferences",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default preferences file",
	Example: `  # Create ~/.config/signup/config.yaml
  signup config init

  # Replace an existing file
  signup config init --force`,
	Args: cobra.NoArgs,
	// A broken preferences file must not block writing a fresh one
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := preferencesPath()
		if err != nil {
			return err
		}
		if err := config.CreateDefaultConfig(path, forceInit); err != nil {
			return err
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintResult(
			ui.NewSuccessResult("Preferences file created", ui.Param{Key: "Path", Value: path}),
		)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences as YAML",
	Long: `Print the preferences after merging defaults, the preferences file,
the .env file, SIGNUP_* environment variables and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("failed to marshal preferences: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func preferencesPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}
