// SPDX-License-Identifier: MPL-2.0

package ship

import "github.com/cargoship/cargoship/pkg/types"

const (
	// Loaded means the container was appended to the ship.
	Loaded Outcome = iota + 1
	// CapacityExceeded means the ship already carries its maximum number of containers.
	CapacityExceeded
	// WeightExceeded means loading the container would exceed the weight limit.
	WeightExceeded
	// Unloaded means the container was removed from the ship.
	Unloaded
	// Replaced means the container took the slot of another one.
	Replaced
	// NotFound means the referenced container is not aboard.
	NotFound
)

type (
	// Outcome classifies the result of a ship operation.
	Outcome int

	// Result is returned by every mutating ship operation.
	Result struct {
		Outcome Outcome
		// Serial names the container the operation was about.
		Serial types.SerialNumber
		// Message is the line written to the ship's reporter.
		Message string
	}
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case CapacityExceeded:
		return "capacity-exceeded"
	case WeightExceeded:
		return "weight-exceeded"
	case Unloaded:
		return "unloaded"
	case Replaced:
		return "replaced"
	case NotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// OK reports whether the operation changed the ship.
func (r Result) OK() bool {
	switch r.Outcome {
	case Loaded, Unloaded, Replaced:
		return true
	default:
		return false
	}
}
