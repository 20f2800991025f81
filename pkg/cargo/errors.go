// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"

	"github.com/cargoship/cargoship/pkg/types"
)

// ErrOverfill is the sentinel error wrapped by OverfillError.
var ErrOverfill = errors.New("container overfill")

// OverfillError is returned by LoadCargo when the requested cargo mass violates
// the container's max payload or, for hazardous liquids, the hazardous cargo
// sub-limit.
type OverfillError struct {
	Serial    types.SerialNumber
	Requested types.Kilograms
	// Limit is the ceiling that was exceeded: the max payload, or the
	// hazardous sub-limit when Hazardous is set.
	Limit     types.Kilograms
	Hazardous bool
}

// Error implements the error interface.
func (e *OverfillError) Error() string {
	if e.Hazardous {
		return fmt.Sprintf("hazardous cargo (%skg) cannot exceed %d%% of the capacity of container %s (limit %skg)",
			e.Requested, int(HazardousPayloadRatio*100), e.Serial, e.Limit)
	}
	return fmt.Sprintf("cargo mass (%skg) exceeds the maximum payload (%skg) of container %s",
		e.Requested, e.Limit, e.Serial)
}

// Unwrap returns ErrOverfill for errors.Is() compatibility.
func (e *OverfillError) Unwrap() error { return ErrOverfill }
