// SPDX-License-Identifier: MPL-2.0

// Package manifest parses CUE voyage plans and runs them against a container
// ship.
//
// A manifest declares one ship, the containers available to it and an ordered
// list of steps. Parse validates the document against the embedded #Manifest
// schema, fills in missing serial numbers and checks the cross references the
// schema cannot express. Build turns a manifest into a Voyage whose Run method
// executes the steps in order.
package manifest
