// SPDX-License-Identifier: MPL-2.0

// Package cargo models the cargo containers a ship can carry.
//
// The set of container variants is closed: liquid, gas and refrigerated. Each
// variant satisfies the Container interface and applies its own capacity rules
// when cargo is loaded or emptied. Variants that can report hazardous
// situations (liquid and gas) additionally implement HazardNotifier.
//
// A container tracks two masses that are never reconciled: the gross Mass it
// was declared with (used by ships for weight limits) and the CargoMass that
// LoadCargo and EmptyCargo mutate.
package cargo
