// Package catalog implements the catalog reconciliation feature.
//
// The Service resolves catalog locations into sources and sinks:
//
//   - s3://bucket/key.xlsx and s3://bucket/key.csv are objects in storage
//   - db://table is a relational table with description and price columns
//   - anything else is a local .xlsx or .csv file
//
// The Handler exposes in-memory reconciliation and pair scoring over HTTP.
package catalog
