// Package spreadsheet reads and writes catalogs stored as xlsx workbooks or csv files.
//
// Rows are decoded lazily as positional fields (description, price).
// Encoding writes the merged rows back in the same two-column layout.
package spreadsheet
