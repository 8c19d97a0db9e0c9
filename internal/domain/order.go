package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable snapshot of a checkout.
type Order struct {
	ID          int64
	Lines       []OrderLine
	TotalValue  decimal.Decimal
	DateOfOrder time.Time
}

// OrderLine records what was bought. ItemID is nil once the item has been
// removed from the catalog; the size, name and price snapshot survive.
type OrderLine struct {
	ID          int64
	ItemID      *int64
	ProductID   *int64
	Size        string
	ProductName string
	UnitPrice   decimal.Decimal
	Amount      int32
}
