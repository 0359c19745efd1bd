// Package report implements the sales performance aggregation engine.
//
// The engine turns three loosely-structured tabular datasets (sales
// transactions, inventory receiving records, staff timesheets) into a single
// immutable result snapshot: per-representative KPIs, a filtered product
// leaderboard, and package sell-through ratios.
//
// # Architecture
//
// The engine is a linear pipeline with independent branches feeding a final
// merge:
//
//   - normalize.go: column-alias resolution and value coercion for all three
//     row schemas
//   - filter.go: exclusion of sample/invalid sales rows
//   - aggregate.go: per-representative revenue/units/ticket grouping and
//     timesheet hour totals
//   - leaderboard.go: the closed set of product filters and the unit-volume
//     ranking
//   - sellthrough.go: the receiving-driven package join and ratio ranking
//   - engine.go: orchestration and the final snapshot assembly
//
// Every function in this package is pure: no I/O, no shared state, no
// mutation of inputs. Malformed cells are a data condition, not an error
// condition: coercion failures default to zero and the engine never fails
// for any input shape other than an empty sales dataset.
package report
