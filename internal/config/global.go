// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride lets tests bypass platform directory lookup.
var configDirOverride string

// Reset clears test overrides.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
