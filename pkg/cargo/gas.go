// SPDX-License-Identifier: MPL-2.0

package cargo

import "github.com/cargoship/cargoship/pkg/types"

// GasResidueRatio is the share of gas cargo left in a container after it is emptied.
const GasResidueRatio = 0.95

// GasContainer carries pressurized gas. Emptying it keeps a residue of the cargo.
type GasContainer struct {
	base
	pressure types.Bar
}

var (
	_ Container      = (*GasContainer)(nil)
	_ HazardNotifier = (*GasContainer)(nil)
)

// NewGasContainer validates spec and pressure and returns an empty gas container.
func NewGasContainer(spec Spec, pressure types.Bar, opts ...Option) (*GasContainer, error) {
	b, err := newBase(spec, opts)
	if err != nil {
		return nil, err
	}
	if err := pressure.Validate(); err != nil {
		return nil, err
	}
	return &GasContainer{base: b, pressure: pressure}, nil
}

// Kind returns KindGas.
func (c *GasContainer) Kind() Kind { return KindGas }

// Pressure returns the container pressure.
func (c *GasContainer) Pressure() types.Bar { return c.pressure }

// LoadCargo sets the cargo mass if it fits within the max payload.
func (c *GasContainer) LoadCargo(cargoMass types.Kilograms) error {
	if err := c.checkPayload(cargoMass); err != nil {
		return err
	}
	c.cargoMass = cargoMass
	return nil
}

// EmptyCargo scales the cargo mass by GasResidueRatio. Each call compounds,
// so the container is never fully drained.
func (c *GasContainer) EmptyCargo() { c.cargoMass *= GasResidueRatio }

// NotifyHazard reports a hazardous situation for the named container.
func (c *GasContainer) NotifyHazard(serial types.SerialNumber) { c.notifyHazard(serial) }
