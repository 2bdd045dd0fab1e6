package models

import (
	"github.com/shopspring/decimal"
)

// Product is a consumable item from the guesthouse pantry (copa).
// Immutable after load; owned by the catalog.
type Product struct {
	Code  int
	Name  string
	Price decimal.Decimal
}
