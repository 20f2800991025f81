// SPDX-License-Identifier: MPL-2.0

// Package config handles cargoship configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/cargoship/config.cue on Linux,
// ~/Library/Application Support/cargoship/config.cue on macOS and
// %APPDATA%\cargoship\config.cue on Windows, falling back to ./config.cue and
// then to built-in defaults. Files are validated against the embedded
// config_schema.cue; CARGOSHIP_* environment variables override file values.
package config
