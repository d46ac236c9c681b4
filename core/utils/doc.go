// Package utils provides value conversion helpers for raw catalog cells.
// Spreadsheet, CSV and database sources hand back loosely typed values; these
// helpers turn them into the strings and exact decimals that records need.
package utils
