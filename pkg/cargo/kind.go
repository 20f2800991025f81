// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"
)

const (
	// KindLiquid is a liquid container, optionally carrying hazardous cargo.
	KindLiquid Kind = "liquid"
	// KindGas is a pressurized gas container.
	KindGas Kind = "gas"
	// KindRefrigerated is a temperature-controlled container.
	KindRefrigerated Kind = "refrigerated"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid container kind")

type (
	// Kind identifies a container variant.
	Kind string

	// InvalidKindError is returned when a Kind is not one of the known variants.
	InvalidKindError struct {
		Value Kind
	}
)

// Kinds returns every known container kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindLiquid, KindGas, KindRefrigerated}
}

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Validate returns an error if the Kind is not a known variant.
func (k Kind) Validate() error {
	switch k {
	case KindLiquid, KindGas, KindRefrigerated:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

// Code returns the single-letter code used in generated serial numbers.
func (k Kind) Code() byte {
	switch k {
	case KindLiquid:
		return 'L'
	case KindGas:
		return 'G'
	case KindRefrigerated:
		return 'C'
	default:
		return '?'
	}
}

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid container kind %q (expected one of: liquid, gas, refrigerated)", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }
