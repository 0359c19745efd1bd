// Package dataprocessing decodes uploaded spreadsheet files into the ordered
// raw records the aggregation engine consumes.
//
// Excel workbooks are read through excelize; CSV files through the standard
// library reader. Either way the first row supplies the column labels and
// every following non-blank row becomes one record, with empty strings for
// cells the row does not fill.
//
// # Data Flow
//
//	Uploaded file → Decoder → RawRecords → report engine → ComputationResult
//
// The decoder never interprets values: numeric coercion and column-alias
// resolution belong to the report package. A file that cannot be parsed is a
// caller-visible error; the previously uploaded dataset stays in effect.
package dataprocessing
