// SPDX-License-Identifier: MPL-2.0

package ship

import (
	"github.com/cargoship/cargoship/pkg/cargo"
	"github.com/cargoship/cargoship/pkg/types"
)

type (
	// Snapshot is a point-in-time copy of a ship's limits and manifest,
	// suitable for rendering or encoding.
	Snapshot struct {
		Name            string          `json:"name" toml:"name"`
		MaxSpeed        types.Knots     `json:"max_speed" toml:"max_speed"`
		MaxContainerNum int             `json:"max_containers" toml:"max_containers"`
		MaxWeight       types.Kilograms `json:"max_weight" toml:"max_weight"`
		TotalWeight     types.Kilograms `json:"total_weight" toml:"total_weight"`
		Containers      []Entry         `json:"containers" toml:"containers"`
	}

	// Entry describes one container aboard.
	Entry struct {
		Serial     types.SerialNumber `json:"serial" toml:"serial"`
		Kind       cargo.Kind         `json:"kind" toml:"kind"`
		Mass       types.Kilograms    `json:"mass" toml:"mass"`
		CargoMass  types.Kilograms    `json:"cargo_mass" toml:"cargo_mass"`
		MaxPayload types.Kilograms    `json:"max_payload" toml:"max_payload"`
		Hazardous  bool               `json:"hazardous,omitempty" toml:"hazardous,omitempty"`
	}
)

// Snapshot returns the current state of the ship.
func (s *ContainerShip) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Name:            s.name,
		MaxSpeed:        s.maxSpeed,
		MaxContainerNum: s.maxContainerNum,
		MaxWeight:       s.maxWeight,
		TotalWeight:     s.totalWeight(),
		Containers:      make([]Entry, 0, len(s.containers)),
	}
	for _, c := range s.containers {
		entry := Entry{
			Serial:     c.Serial(),
			Kind:       c.Kind(),
			Mass:       c.Mass(),
			CargoMass:  c.CargoMass(),
			MaxPayload: c.MaxPayload(),
		}
		if liquid, ok := c.(*cargo.LiquidContainer); ok {
			entry.Hazardous = liquid.Hazardous()
		}
		snap.Containers = append(snap.Containers, entry)
	}
	return snap
}

// Utilization returns the share of the weight limit in use, or 0 for a ship
// with no weight capacity.
func (s Snapshot) Utilization() float64 {
	if s.MaxWeight == 0 {
		return 0
	}
	return float64(s.TotalWeight) / float64(s.MaxWeight)
}
