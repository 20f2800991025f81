// SPDX-License-Identifier: MPL-2.0

// Package ship provides the ContainerShip aggregate: an ordered collection of
// cargo containers bounded by a container count and a total weight limit.
//
// Ship operations never fail with an error. Rejections (capacity, weight,
// not found) are reported as a user-visible message and returned as a Result
// so callers can branch on the Outcome without parsing text.
package ship
