package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de almacén.
// ProductCode es único; precios y peso se persisten como NUMERIC.
type Product struct {
	ID           string
	ProductCode  string
	Description  string
	MaterialID   string
	InitialPrice decimal.Decimal
	FinalPrice   decimal.Decimal
	Weight       decimal.Decimal
	Supplier     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
