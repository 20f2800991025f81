// SPDX-License-Identifier: MPL-2.0

// Package types defines the validated value types shared by the cargo and ship
// packages: serial numbers and the physical quantities containers and ships are
// described with. These carry semantic meaning and validation but have no
// domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
package types
