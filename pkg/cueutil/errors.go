// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrSchema is the sentinel error wrapped by SchemaError.
	ErrSchema = errors.New("document does not match schema")
	// ErrFileTooLarge is returned when a document exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// SchemaError lists the problems CUE reported for a document, one per
// offending path.
type SchemaError struct {
	File   string
	Issues []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%s: %s", e.File, e.Issues[0])
	}
	return fmt.Sprintf("%s: validation failed:\n  %s", e.File, strings.Join(e.Issues, "\n  "))
}

// Unwrap returns ErrSchema for errors.Is() compatibility.
func (e *SchemaError) Unwrap() error { return ErrSchema }

// FormatError converts a CUE error into a *SchemaError whose issues are
// prefixed with JSON-like paths (e.g. "containers[0].mass").
func FormatError(err error, file string) error {
	if err == nil {
		return nil
	}

	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return &SchemaError{File: file, Issues: []string{err.Error()}}
	}

	issues := make([]string, 0, len(list))
	for _, e := range list {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()
		if path == "" {
			issues = append(issues, msg)
			continue
		}
		msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		issues = append(issues, path+": "+msg)
	}
	return &SchemaError{File: file, Issues: issues}
}

// formatPath renders CUE path selectors, turning numeric selectors into
// index notation.
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error wrapping ErrFileTooLarge when data exceeds maxSize.
func CheckFileSize(data []byte, maxSize int64, file string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: %d bytes exceeds the %d byte limit: %w", file, len(data), maxSize, ErrFileTooLarge)
	}
	return nil
}
