// SPDX-License-Identifier: MPL-2.0

package cargo

import "github.com/cargoship/cargoship/pkg/types"

// HazardousPayloadRatio is the share of the max payload a hazardous liquid
// container may be filled to.
const HazardousPayloadRatio = 0.5

// LiquidContainer carries liquid cargo. Hazardous liquids may only be loaded up
// to HazardousPayloadRatio of the max payload.
type LiquidContainer struct {
	base
	hazardous bool
	pressure  types.Bar
}

var (
	_ Container      = (*LiquidContainer)(nil)
	_ HazardNotifier = (*LiquidContainer)(nil)
)

// NewLiquidContainer validates spec and pressure and returns an empty liquid container.
func NewLiquidContainer(spec Spec, hazardous bool, pressure types.Bar, opts ...Option) (*LiquidContainer, error) {
	b, err := newBase(spec, opts)
	if err != nil {
		return nil, err
	}
	if err := pressure.Validate(); err != nil {
		return nil, err
	}
	return &LiquidContainer{base: b, hazardous: hazardous, pressure: pressure}, nil
}

// Kind returns KindLiquid.
func (c *LiquidContainer) Kind() Kind { return KindLiquid }

// Hazardous reports whether the container is declared as carrying hazardous cargo.
func (c *LiquidContainer) Hazardous() bool { return c.hazardous }

// Pressure returns the container pressure.
func (c *LiquidContainer) Pressure() types.Bar { return c.pressure }

// HazardLimit returns the largest cargo mass LoadCargo accepts.
func (c *LiquidContainer) HazardLimit() types.Kilograms {
	if c.hazardous {
		return c.spec.MaxPayload * HazardousPayloadRatio
	}
	return c.spec.MaxPayload
}

// LoadCargo sets the cargo mass. The max payload is checked first, then the
// hazardous sub-limit.
func (c *LiquidContainer) LoadCargo(cargoMass types.Kilograms) error {
	if err := c.checkPayload(cargoMass); err != nil {
		return err
	}
	if limit := c.HazardLimit(); c.hazardous && cargoMass > limit {
		return &OverfillError{
			Serial:    c.spec.Serial,
			Requested: cargoMass,
			Limit:     limit,
			Hazardous: true,
		}
	}
	c.cargoMass = cargoMass
	return nil
}

// EmptyCargo drains the container completely.
func (c *LiquidContainer) EmptyCargo() { c.cargoMass = 0 }

// NotifyHazard reports a hazardous situation for the named container.
func (c *LiquidContainer) NotifyHazard(serial types.SerialNumber) { c.notifyHazard(serial) }
