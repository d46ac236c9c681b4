package reconcile

import (
	"context"
	"iter"

	"github.com/shopspring/decimal"
)

// Source yields the raw rows of one catalog.
// Read returns a lazy, single-pass sequence; implementations release their
// underlying resources once iteration stops. A non-nil error ends the run.
type Source interface {
	// Name identifies the source in logs and errors (e.g., a file path).
	Name() string

	// Read streams the rows of the catalog in their stored order.
	Read(ctx context.Context) iter.Seq2[RawRow, error]
}

// Sink receives merged rows.
// Open is called before the first Write and Close exactly once afterwards,
// whether or not the run succeeded. Close persists everything written.
type Sink interface {
	// Name identifies the sink in logs and errors.
	Name() string

	// Open acquires the destination.
	Open(ctx context.Context) error

	// Write appends one merged row.
	Write(ctx context.Context, row Row) error

	// Close flushes the appended rows to the destination and releases it.
	Close() error
}

// Row is one merged output row: the primary description with the secondary price.
type Row struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Summary provides aggregate counts for a reconciliation run.
type Summary struct {
	// Primary is the number of records read from the primary catalog.
	Primary int `json:"primary"`

	// Secondary is the number of records read from the secondary catalog.
	Secondary int `json:"secondary"`

	// Matched is the number of rows written to the sink.
	Matched int `json:"matched"`

	// Unmatched counts primary records without any equivalent secondary record.
	Unmatched int `json:"unmatched"`

	// Suppressed counts equivalent pairs skipped because the primary
	// description had already been written.
	Suppressed int `json:"suppressed"`
}
