// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SerialPrefix is the owner code every generated serial number starts with.
const SerialPrefix = "KON"

// ErrInvalidSerialNumber is the sentinel error wrapped by InvalidSerialNumberError.
var ErrInvalidSerialNumber = errors.New("invalid serial number")

type (
	// SerialNumber uniquely identifies a container. A valid serial number must be
	// non-empty and not whitespace-only. Generated serials follow the
	// KON-<kind code>-<sequence> form (e.g. "KON-L-1"), but any non-blank value
	// is accepted.
	SerialNumber string

	// InvalidSerialNumberError is returned when a SerialNumber value is empty or
	// whitespace-only.
	InvalidSerialNumberError struct {
		Value SerialNumber
	}
)

// NewSerialNumber builds a serial number in the KON-<code>-<seq> form.
func NewSerialNumber(code byte, seq int) SerialNumber {
	return SerialNumber(SerialPrefix + "-" + string(code) + "-" + strconv.Itoa(seq))
}

// String returns the string representation of the SerialNumber.
func (s SerialNumber) String() string { return string(s) }

// Validate returns an error if the SerialNumber is empty or whitespace-only.
func (s SerialNumber) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return &InvalidSerialNumberError{Value: s}
	}
	return nil
}

// KindCode returns the kind segment of a KON-<code>-<seq> serial number.
// The second return value is false when the serial does not follow that form.
func (s SerialNumber) KindCode() (string, bool) {
	parts := strings.Split(string(s), "-")
	if len(parts) != 3 || parts[0] != SerialPrefix || parts[1] == "" {
		return "", false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return "", false
	}
	return parts[1], true
}

// Error implements the error interface for InvalidSerialNumberError.
func (e *InvalidSerialNumberError) Error() string {
	return fmt.Sprintf("invalid serial number %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidSerialNumber for errors.Is() compatibility.
func (e *InvalidSerialNumberError) Unwrap() error { return ErrInvalidSerialNumber }
