package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineItem is the immutable snapshot of a cart line taken at submission.
type OrderLineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// OrderLineItems is stored as a JSON column on the order record.
type OrderLineItems []OrderLineItem

// Subtotal sums the extended prices over all lines.
func (items OrderLineItems) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
