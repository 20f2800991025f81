// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// OutputText prints human-readable reports.
	OutputText OutputFormat = "text"
	// OutputTOML prints the final ship snapshot as TOML.
	OutputTOML OutputFormat = "toml"
)

var (
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is the sentinel error wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config is the root configuration structure.
	Config struct {
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures the structured logger.
		Log LogConfig `json:"log" mapstructure:"log"`
		// Output configures report rendering.
		Output OutputConfig `json:"output" mapstructure:"output"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		Verbose     bool        `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures the structured logger.
	LogConfig struct {
		Level      string `json:"level" mapstructure:"level"`
		Timestamps bool   `json:"timestamps" mapstructure:"timestamps"`
	}

	// OutputConfig configures report rendering.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// ColorScheme selects the glamour/lipgloss palette.
	ColorScheme string

	// OutputFormat selects how voyage reports are printed.
	OutputFormat string

	// InvalidColorSchemeError is returned for an unknown ColorScheme.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidOutputFormatError is returned for an unknown OutputFormat.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// InvalidLogLevelError is returned for an unknown log level name.
	InvalidLogLevelError struct {
		Value string
	}

	// InvalidConfigError aggregates the field errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Output: OutputConfig{
			Format: OutputText,
		},
	}
}

// Validate returns an error if the ColorScheme is not recognized.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: c}
	}
}

// GlamourStyle returns the glamour style name for the scheme. Auto maps to
// "dark" when the terminal cannot be queried.
func (c ColorScheme) GlamourStyle() string {
	if c == ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// Validate returns an error if the OutputFormat is not recognized.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputText, OutputTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// Validate returns an *InvalidConfigError listing every invalid field, or nil.
// It catches values that bypass the CUE schema, such as environment overrides.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &InvalidLogLevelError{Value: c.Log.Level})
	}
	if err := c.Output.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (expected one of: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (expected one of: text, toml)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (expected one of: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
