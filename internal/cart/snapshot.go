package cart

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunaville/storefront-backend/pkg/money"
)

// Item is one cart line: a product plus how many of it the shopper wants.
type Item struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the price of this line, quantity included.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Snapshot is an immutable view of one cart. Every mutation produces a fresh
// snapshot; callers never observe a cart mid-change.
type Snapshot struct {
	items []Item
}

// EmptySnapshot is the state of a cart that has never been written to, or
// whose persisted payload could not be read back.
func EmptySnapshot() Snapshot {
	return Snapshot{}
}

func newSnapshot(items []Item) Snapshot {
	if len(items) == 0 {
		return Snapshot{}
	}
	copied := make([]Item, len(items))
	copy(copied, items)
	return Snapshot{items: copied}
}

// Items returns the cart lines in insertion order.
func (s Snapshot) Items() []Item {
	if len(s.items) == 0 {
		return []Item{}
	}
	copied := make([]Item, len(s.items))
	copy(copied, s.items)
	return copied
}

// TotalItems sums line quantities, not distinct lines.
func (s Snapshot) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of every line total before tax.
func (s Snapshot) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// Tax applies the flat sales-tax rate to the subtotal. The result is kept
// exact so Subtotal + Tax always equals Total.
func (s Snapshot) Tax() decimal.Decimal {
	return s.Subtotal().Mul(money.TaxRate)
}

// Total is the amount due: subtotal plus tax.
func (s Snapshot) Total() decimal.Decimal {
	return s.Subtotal().Add(s.Tax())
}

// IsInCart reports whether the product already has a line.
func (s Snapshot) IsInCart(productID uuid.UUID) bool {
	return s.indexOf(productID) >= 0
}

// Quantity returns the quantity on the product's line, or zero.
func (s Snapshot) Quantity(productID uuid.UUID) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

func (s Snapshot) indexOf(productID uuid.UUID) int {
	for i, item := range s.items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// withItemAdded merges quantity into an existing line or appends a new one.
func (s Snapshot) withItemAdded(product Product, quantity int) Snapshot {
	items := s.Items()
	if i := s.indexOf(product.ID); i >= 0 {
		items[i].Quantity += quantity
		return newSnapshot(items)
	}
	items = append(items, Item{Product: product, Quantity: quantity})
	return newSnapshot(items)
}

// withQuantity sets an existing line to the given quantity. The bool reports
// whether the product had a line to update.
func (s Snapshot) withQuantity(productID uuid.UUID, quantity int) (Snapshot, bool) {
	i := s.indexOf(productID)
	if i < 0 {
		return s, false
	}
	items := s.Items()
	items[i].Quantity = quantity
	return newSnapshot(items), true
}

// withItemRemoved drops the product's line. The bool reports whether a line
// existed.
func (s Snapshot) withItemRemoved(productID uuid.UUID) (Snapshot, bool) {
	i := s.indexOf(productID)
	if i < 0 {
		return s, false
	}
	items := s.Items()
	items = append(items[:i], items[i+1:]...)
	return newSnapshot(items), true
}

type snapshotPayload struct {
	Items []Item `json:"items"`
}

// MarshalJSON serializes the snapshot as its persisted wire shape.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotPayload{Items: s.Items()})
}

// UnmarshalJSON restores a snapshot from its persisted wire shape.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var payload snapshotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	*s = newSnapshot(payload.Items)
	return nil
}
