// SPDX-License-Identifier: MPL-2.0

// Package logging builds the structured loggers used across cargoship.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPrefix is the prefix printed in front of every CLI log record.
const DefaultPrefix = "cargoship"

// ErrInvalidLevel is the sentinel error wrapped by InvalidLevelError.
var ErrInvalidLevel = errors.New("invalid log level")

type (
	// Options configures New.
	Options struct {
		// Level is the minimum level emitted ("debug", "info", "warn", "error").
		// Empty means "info".
		Level string
		// Verbose forces the debug level regardless of Level.
		Verbose bool
		// Prefix is printed in front of each record.
		Prefix string
		// Timestamps adds a timestamp to each record.
		Timestamps bool
	}

	// InvalidLevelError is returned when a level name is not recognized.
	InvalidLevelError struct {
		Value string
	}
)

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.Timestamps,
	}), nil
}

// ParseLevel maps a configured level name to a log level.
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return 0, &InvalidLevelError{Value: name}
	}
}

// InstallDefault makes logger the default for both charmbracelet/log and
// log/slog, so package-level slog calls share its output and level.
func InstallDefault(logger *log.Logger) {
	log.SetDefault(logger)
	slog.SetDefault(slog.New(logger))
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Error implements the error interface for InvalidLevelError.
func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (expected one of: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLevel for errors.Is() compatibility.
func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }
