// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors for the cargoship CLI.
//
// An ActionableError records what was being attempted, on which resource,
// and how the user can fix it. Errors may point at an entry of the Markdown
// issue catalog, which the CLI renders with glamour in verbose mode.
package issue
