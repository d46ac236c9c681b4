package models

import (
	"catalog-reconciler/core/reconcile"

	"github.com/shopspring/decimal"
)

// CatalogItem is one catalog entry in an HTTP request.
// Price accepts a JSON number or a numeric string.
type CatalogItem struct {
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ReconcileRequest carries both catalogs for an in-memory reconciliation.
type ReconcileRequest struct {
	Primary   []CatalogItem `json:"primary"`
	Secondary []CatalogItem `json:"secondary"`
}

// ReconcileResponse is the merged catalog and the run summary.
type ReconcileResponse struct {
	Rows    []reconcile.Row    `json:"rows"`
	Summary *reconcile.Summary `json:"summary"`
}

// ScoreRequest is a pair of descriptions to compare.
type ScoreRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// RawRows converts request items into source rows. A missing price becomes nil.
func RawRows(items []CatalogItem) []reconcile.RawRow {
	rows := make([]reconcile.RawRow, 0, len(items))
	for _, item := range items {
		var price any
		if item.Price != nil {
			price = *item.Price
		}
		rows = append(rows, reconcile.RawRow{item.Description, price})
	}
	return rows
}
