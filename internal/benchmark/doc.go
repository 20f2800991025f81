// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for the cargoship hot paths:
//   - CUE manifest parsing and schema validation
//   - Building a voyage (containers and ship)
//   - Running voyage steps against a ship
//   - Concurrent loading onto a shared ship
//
// Run them with:
//
//	go test -bench=. -benchmem ./internal/benchmark/
package benchmark
