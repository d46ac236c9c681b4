// Package reconcile merges two product catalogs that share no identifier.
//
// The primary catalog is authoritative for descriptions and the secondary
// catalog for prices. Records are paired by description similarity only
// (see package match) and each merged row carries the primary description
// with the secondary price.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Record: the value type for one catalog entry, parsed from positional raw
//    rows, and IsSameProduct, the equivalence predicate used for pairing.
//
// 2. Source and Sink: capability interfaces for reading raw rows and writing
//    merged rows. Spreadsheet, object storage, database and in-memory variants
//    live under feature/catalog and are injected into the engine.
//
// 3. Engine: materializes both catalogs, then walks every primary record
//    against every secondary record in order. The first equivalent secondary
//    record wins; later matches for an already written primary description are
//    suppressed. Primary records without a match are dropped silently.
//
// # Errors
//
// Any failure while reading, parsing or writing aborts the run. Malformed rows
// wrap ErrMalformedRow. There are no retries and no partial recovery.
//
// # Usage Example
//
//	m, _ := match.NewMatcher(match.DefaultConfig())
//	engine := reconcile.NewEngine(m, logger)
//	summary, err := engine.Run(ctx, primarySource, secondarySource, sink)
package reconcile
