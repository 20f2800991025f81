// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"github.com/cargoship/cargoship/pkg/types"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RefrigeratedContainer carries temperature-controlled cargo. It maps product
// names to the temperature they must be kept at.
type RefrigeratedContainer struct {
	base
	settings map[string]types.Celsius
}

var _ Container = (*RefrigeratedContainer)(nil)

// NewRefrigeratedContainer validates spec and the temperature settings and
// returns an empty refrigerated container. The settings map is copied.
func NewRefrigeratedContainer(spec Spec, settings map[string]types.Celsius, opts ...Option) (*RefrigeratedContainer, error) {
	b, err := newBase(spec, opts)
	if err != nil {
		return nil, err
	}
	for _, temp := range settings {
		if err := temp.Validate(); err != nil {
			return nil, err
		}
	}
	if settings == nil {
		settings = map[string]types.Celsius{}
	}
	return &RefrigeratedContainer{base: b, settings: maps.Clone(settings)}, nil
}

// Kind returns KindRefrigerated.
func (c *RefrigeratedContainer) Kind() Kind { return KindRefrigerated }

// TemperatureSettings returns a copy of the product to temperature mapping.
func (c *RefrigeratedContainer) TemperatureSettings() map[string]types.Celsius {
	return maps.Clone(c.settings)
}

// Temperature returns the target temperature for product.
func (c *RefrigeratedContainer) Temperature(product string) (types.Celsius, bool) {
	t, ok := c.settings[product]
	return t, ok
}

// Products returns the configured product names in sorted order.
func (c *RefrigeratedContainer) Products() []string {
	products := make([]string, 0, len(c.settings))
	for product := range c.settings {
		products = append(products, product)
	}
	slices.Sort(products)
	return products
}

// LoadCargo sets the cargo mass if it fits within the max payload.
func (c *RefrigeratedContainer) LoadCargo(cargoMass types.Kilograms) error {
	if err := c.checkPayload(cargoMass); err != nil {
		return err
	}
	c.cargoMass = cargoMass
	return nil
}

// EmptyCargo drains the container completely.
func (c *RefrigeratedContainer) EmptyCargo() { c.cargoMass = 0 }
