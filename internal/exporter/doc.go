// Package exporter renders computed sales reports as CSV.
//
// CSVWriter writes a single CSV document with one section per report
// table: the summary totals, per-representative metrics, the unit
// leaderboard, and the sell-through lists. Output carries a UTF-8 BOM
// for Excel compatibility. Reports can be streamed to an HTTP response
// or saved to a timestamped file under the configured export directory.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(cfg.Export.Dir, logger)
//	path, err := writer.SaveReport(result)
package exporter
