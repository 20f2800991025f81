// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidMass is the sentinel error wrapped by InvalidMassError.
	ErrInvalidMass = errors.New("invalid mass")
	// ErrInvalidDimension is the sentinel error wrapped by InvalidDimensionError.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidSpeed is the sentinel error wrapped by InvalidSpeedError.
	ErrInvalidSpeed = errors.New("invalid speed")
	// ErrInvalidPressure is the sentinel error wrapped by InvalidPressureError.
	ErrInvalidPressure = errors.New("invalid pressure")
	// ErrInvalidTemperature is the sentinel error wrapped by InvalidTemperatureError.
	ErrInvalidTemperature = errors.New("invalid temperature")
)

type (
	// Kilograms is a mass in kilograms. Valid values are finite and non-negative.
	Kilograms float64

	// Centimeters is a container dimension (height or depth).
	// Valid values are finite and non-negative.
	Centimeters float64

	// Knots is a ship speed. Valid values are finite and non-negative.
	Knots float64

	// Bar is a container pressure. Valid values are finite and non-negative.
	Bar float64

	// Celsius is a target temperature. Any finite value is valid.
	Celsius float64

	// InvalidMassError is returned when a Kilograms value is negative or not finite.
	InvalidMassError struct {
		Value Kilograms
	}

	// InvalidDimensionError is returned when a Centimeters value is negative or not finite.
	InvalidDimensionError struct {
		Value Centimeters
	}

	// InvalidSpeedError is returned when a Knots value is negative or not finite.
	InvalidSpeedError struct {
		Value Knots
	}

	// InvalidPressureError is returned when a Bar value is negative or not finite.
	InvalidPressureError struct {
		Value Bar
	}

	// InvalidTemperatureError is returned when a Celsius value is not finite.
	InvalidTemperatureError struct {
		Value Celsius
	}
)

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate returns an error if the mass is negative or not finite.
func (k Kilograms) Validate() error {
	if !nonNegative(float64(k)) {
		return &InvalidMassError{Value: k}
	}
	return nil
}

// String returns the mass without trailing zeros (e.g. "5000", "4.75").
func (k Kilograms) String() string { return formatFloat(float64(k)) }

// Validate returns an error if the dimension is negative or not finite.
func (c Centimeters) Validate() error {
	if !nonNegative(float64(c)) {
		return &InvalidDimensionError{Value: c}
	}
	return nil
}

// String returns the dimension without trailing zeros.
func (c Centimeters) String() string { return formatFloat(float64(c)) }

// Validate returns an error if the speed is negative or not finite.
func (k Knots) Validate() error {
	if !nonNegative(float64(k)) {
		return &InvalidSpeedError{Value: k}
	}
	return nil
}

// String returns the speed without trailing zeros.
func (k Knots) String() string { return formatFloat(float64(k)) }

// Validate returns an error if the pressure is negative or not finite.
func (b Bar) Validate() error {
	if !nonNegative(float64(b)) {
		return &InvalidPressureError{Value: b}
	}
	return nil
}

// String returns the pressure without trailing zeros.
func (b Bar) String() string { return formatFloat(float64(b)) }

// Validate returns an error if the temperature is NaN or infinite.
func (c Celsius) Validate() error {
	if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
		return &InvalidTemperatureError{Value: c}
	}
	return nil
}

// String returns the temperature without trailing zeros.
func (c Celsius) String() string { return formatFloat(float64(c)) }

// Error implements the error interface for InvalidMassError.
func (e *InvalidMassError) Error() string {
	return fmt.Sprintf("invalid mass %skg: must be a finite, non-negative value", e.Value)
}

// Unwrap returns ErrInvalidMass for errors.Is() compatibility.
func (e *InvalidMassError) Unwrap() error { return ErrInvalidMass }

// Error implements the error interface for InvalidDimensionError.
func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid dimension %scm: must be a finite, non-negative value", e.Value)
}

// Unwrap returns ErrInvalidDimension for errors.Is() compatibility.
func (e *InvalidDimensionError) Unwrap() error { return ErrInvalidDimension }

// Error implements the error interface for InvalidSpeedError.
func (e *InvalidSpeedError) Error() string {
	return fmt.Sprintf("invalid speed %s knots: must be a finite, non-negative value", e.Value)
}

// Unwrap returns ErrInvalidSpeed for errors.Is() compatibility.
func (e *InvalidSpeedError) Unwrap() error { return ErrInvalidSpeed }

// Error implements the error interface for InvalidPressureError.
func (e *InvalidPressureError) Error() string {
	return fmt.Sprintf("invalid pressure %s bar: must be a finite, non-negative value", e.Value)
}

// Unwrap returns ErrInvalidPressure for errors.Is() compatibility.
func (e *InvalidPressureError) Unwrap() error { return ErrInvalidPressure }

// Error implements the error interface for InvalidTemperatureError.
func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("invalid temperature %s°C: must be finite", e.Value)
}

// Unwrap returns ErrInvalidTemperature for errors.Is() compatibility.
func (e *InvalidTemperatureError) Unwrap() error { return ErrInvalidTemperature }
