// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cargoship/cargoship/pkg/types"
)

// ErrInvalidSpec is the sentinel error wrapped by InvalidSpecError.
var ErrInvalidSpec = errors.New("invalid container spec")

type (
	// Spec holds the identity and physical attributes shared by every container
	// variant. It is copied into the container on construction, so later changes
	// to a Spec value never affect a built container.
	Spec struct {
		// Serial uniquely identifies the container.
		Serial types.SerialNumber
		// Mass is the gross mass used by ships for weight limits.
		Mass   types.Kilograms
		Height types.Centimeters
		// TareWeight is the mass of the empty container.
		TareWeight types.Kilograms
		Depth      types.Centimeters
		// MaxPayload is the ceiling for cargo mass.
		MaxPayload types.Kilograms
	}

	// InvalidSpecError aggregates the field errors of an invalid Spec.
	InvalidSpecError struct {
		Serial      types.SerialNumber
		FieldErrors []error
	}
)

// Validate returns an *InvalidSpecError listing every invalid field, or nil.
func (s Spec) Validate() error {
	var errs []error
	if err := s.Serial.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, m := range []types.Kilograms{s.Mass, s.TareWeight, s.MaxPayload} {
		if err := m.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, d := range []types.Centimeters{s.Height, s.Depth} {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &InvalidSpecError{Serial: s.Serial, FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidSpecError.
func (e *InvalidSpecError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid container spec %q: %s", e.Serial, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidSpec and the field errors for errors.Is() compatibility.
func (e *InvalidSpecError) Unwrap() []error {
	return append([]error{ErrInvalidSpec}, e.FieldErrors...)
}
