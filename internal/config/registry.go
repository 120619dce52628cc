package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	goyaml "gopkg.in/yaml.v3"

	"github.com/muurk/signup/internal/logging"
)

const (
	appName     = "signup"
	configFile  = "config.yaml"
	logFileName = "signup.log"

	// EnvPrefix marks environment variables that override preferences,
	// e.g. SIGNUP_SUBMIT_DELAY=3s or SIGNUP_VARIANT=classic.
	EnvPrefix = "SIGNUP_"
)

// ErrConfigExists is returned by CreateDefaultConfig when a file is already present
var ErrConfigExists = errors.New("config file already exists")

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/signup or $HOME/.config/signup
//   - macOS: $HOME/.config/signup (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\signup
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// DefaultLogPath returns the log file location used by the interactive form
func DefaultLogPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFileName), nil
}

// LoadOptions selects the files Load reads. Empty fields use the defaults.
type LoadOptions struct {
	Path    string // YAML preferences file (default: GetConfigPath)
	EnvFile string // dotenv file (default: .env in the working directory)
}

// Load builds Preferences from, in increasing precedence: built-in defaults,
// the YAML preferences file (if present), a .env file (if present) and
// SIGNUP_* environment variables. The result is validated.
func Load(opts LoadOptions) (*Preferences, error) {
	path := opts.Path
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		logging.Debug("Preferences file loaded", zap.String("path", path))
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// Missing .env is not an error; existing variables are never overwritten
	if err := godotenv.Load(envFile); err == nil {
		logging.Debug("Environment file loaded", zap.String("path", envFile))
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	prefs := DefaultPreferences()
	if err := k.Unmarshal("", prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}

	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	return prefs, nil
}

// envKey maps SIGNUP_SUBMIT_DELAY to submit_delay
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Save writes the preferences to path.
// Performs an atomic write to prevent corruption on crash.
func Save(prefs *Preferences, path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := goyaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Signup Preferences
# Controls the form variant and the simulated submission delay.
# Entered form values are never written to disk.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes the default preferences to path. It refuses to
// replace an existing file unless force is set.
func CreateDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	return Save(DefaultPreferences(), path)
}
