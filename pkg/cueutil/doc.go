// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// Voyage manifests and the configuration file share the same flow:
//
//  1. Compile the embedded schema and look up its root definition
//  2. Compile the user document and unify it with that definition
//  3. Validate and decode into a Go value
//
// Errors carry the CUE path of every offending field:
//
//	//go:embed manifest_schema.cue
//	var schema []byte
//
//	res, err := cueutil.Decode[Manifest](schema, data, "#Manifest",
//	    cueutil.WithFilename("voyage.cue"))
package cueutil
