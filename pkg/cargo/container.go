// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"github.com/cargoship/cargoship/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// Container is the contract every container variant satisfies.
	//
	// Implementations are pointers, and ships compare containers by identity,
	// so two containers with equal attributes are still distinct.
	Container interface {
		Serial() types.SerialNumber
		Kind() Kind
		// Mass is the declared gross mass. Loading cargo never changes it.
		Mass() types.Kilograms
		Height() types.Centimeters
		TareWeight() types.Kilograms
		Depth() types.Centimeters
		MaxPayload() types.Kilograms
		// CargoMass is the payload currently loaded.
		CargoMass() types.Kilograms
		// LoadCargo validates cargoMass against the variant's capacity rules and
		// replaces the current cargo mass. It returns *OverfillError when a rule
		// is violated, leaving the cargo mass unchanged.
		LoadCargo(cargoMass types.Kilograms) error
		// EmptyCargo resets or reduces the cargo mass per the variant's rule.
		EmptyCargo()

		sealed()
	}

	// HazardNotifier is the capability of reporting a hazardous situation.
	// Only liquid and gas containers have it. It is never triggered by
	// LoadCargo; callers invoke it explicitly.
	HazardNotifier interface {
		NotifyHazard(serial types.SerialNumber)
	}

	// Option configures a container at construction time.
	Option func(*options)

	options struct {
		logger *log.Logger
	}

	// base carries the attributes and cargo state shared by all variants.
	base struct {
		spec      Spec
		cargoMass types.Kilograms
		logger    *log.Logger
	}
)

// WithLogger sets the logger hazard notifications are written to.
// The default is the charmbracelet/log default logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// HasHazardNotifier reports whether c exposes the hazard notification capability.
func HasHazardNotifier(c Container) bool {
	_, ok := c.(HazardNotifier)
	return ok
}

func newBase(spec Spec, opts []Option) (base, error) {
	if err := spec.Validate(); err != nil {
		return base{}, err
	}

	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	return base{spec: spec, logger: o.logger}, nil
}

func (b *base) Serial() types.SerialNumber  { return b.spec.Serial }
func (b *base) Mass() types.Kilograms       { return b.spec.Mass }
func (b *base) Height() types.Centimeters   { return b.spec.Height }
func (b *base) TareWeight() types.Kilograms { return b.spec.TareWeight }
func (b *base) Depth() types.Centimeters    { return b.spec.Depth }
func (b *base) MaxPayload() types.Kilograms { return b.spec.MaxPayload }
func (b *base) CargoMass() types.Kilograms  { return b.cargoMass }
func (b *base) sealed()                     {}

// checkPayload validates cargoMass and applies the max payload rule shared by
// every variant.
func (b *base) checkPayload(cargoMass types.Kilograms) error {
	if err := cargoMass.Validate(); err != nil {
		return err
	}
	if cargoMass > b.spec.MaxPayload {
		return &OverfillError{
			Serial:    b.spec.Serial,
			Requested: cargoMass,
			Limit:     b.spec.MaxPayload,
		}
	}
	return nil
}

// notifyHazard emits the hazard alert for serial.
func (b *base) notifyHazard(serial types.SerialNumber) {
	b.logger.Warn("hazardous situation detected", "container", serial.String())
}
