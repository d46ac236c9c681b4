package reconcile

import (
	"errors"
	"fmt"

	"catalog-reconciler/core/match"
	"catalog-reconciler/core/utils"

	"github.com/shopspring/decimal"
)

// ErrMalformedRow is returned when a raw row cannot be turned into a Record.
var ErrMalformedRow = errors.New("malformed row")

// RawRow is a positional row as produced by a Source.
// Field 0 is the description and field 1 the price; extra fields are ignored.
type RawRow []any

// Record is one catalog entry.
type Record struct {
	Description string
	Price       decimal.Decimal
}

// ParseRecord converts a raw row into a Record.
func ParseRecord(row RawRow) (Record, error) {
	if len(row) < 2 {
		return Record{}, fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformedRow, len(row))
	}
	if row[0] == nil {
		return Record{}, fmt.Errorf("%w: missing description", ErrMalformedRow)
	}

	price, err := utils.ToDecimal(row[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: price %q: %v", ErrMalformedRow, utils.ToString(row[1]), err)
	}

	return Record{
		Description: utils.ToString(row[0]),
		Price:       price,
	}, nil
}

// IsSameProduct reports whether two records describe the same product.
// Only descriptions are compared; prices never take part in matching.
func IsSameProduct(m *match.Matcher, a, b Record) bool {
	return m.Equivalent(a.Description, b.Description)
}
