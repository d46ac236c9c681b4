package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog row stored in a relational table.
// Source and destination tables share this layout; the table name is chosen per run.
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string          `gorm:"column:description;type:varchar(512);not null" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(20,6);not null" json:"price"`
}

// TableName is the default table for merged rows.
func (Product) TableName() string {
	return "merged_products"
}
