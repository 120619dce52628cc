package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/muurk/signup/internal/signup"
)

// Preferences holds the user-tunable behaviour of the signup tool.
// Form values are never stored here.
type Preferences struct {
	Variant     string        `koanf:"variant" validate:"required,oneof=classic enhanced"`
	SubmitDelay time.Duration `koanf:"submit_delay" validate:"gte=0s,lte=1m"`
	LogLevel    string        `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFile     string        `koanf:"log_file"`
	AltScreen   bool          `koanf:"alt_screen"`
}

// preferencesFile is the on-disk shape; the delay is kept as a duration
// string ("1.5s") rather than nanoseconds.
type preferencesFile struct {
	Variant     string `yaml:"variant"`
	SubmitDelay string `yaml:"submit_delay"`
	LogLevel    string `yaml:"log_level,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	AltScreen   bool   `yaml:"alt_screen"`
}

// DefaultPreferences returns the built-in defaults
func DefaultPreferences() *Preferences {
	return &Preferences{
		Variant:     signup.VariantEnhanced.String(),
		SubmitDelay: signup.DefaultSubmitDelay,
		AltScreen:   true,
	}
}

// MarshalYAML implements yaml.Marshaler
func (p Preferences) MarshalYAML() (interface{}, error) {
	return preferencesFile{
		Variant:     p.Variant,
		SubmitDelay: p.SubmitDelay.String(),
		LogLevel:    p.LogLevel,
		LogFile:     p.LogFile,
		AltScreen:   p.AltScreen,
	}, nil
}

// FormVariant parses the Variant preference
func (p *Preferences) FormVariant() (signup.Variant, error) {
	return signup.ParseVariant(p.Variant)
}

var validate = validator.New()

// Validate checks the preferences against their struct rules
func (p *Preferences) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	return nil
}
