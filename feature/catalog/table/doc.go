// Package table provides catalog sources and sinks backed by relational tables.
//
// A table holds one catalog entry per row in description and price columns.
// Sources read in primary key order; sinks insert the merged rows when closed.
package table
