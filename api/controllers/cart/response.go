package cart

import (
	"github.com/shopspring/decimal"

	cartsvc "github.com/lunaville/storefront-backend/internal/cart"
	"github.com/lunaville/storefront-backend/pkg/money"
)

type cartResponse struct {
	Items           []cartsvc.Item  `json:"items"`
	TotalItems      int             `json:"total_items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	SubtotalDisplay string          `json:"subtotal_display"`
	TaxDisplay      string          `json:"tax_display"`
	TotalDisplay    string          `json:"total_display"`
}

func toCartResponse(snap cartsvc.Snapshot) cartResponse {
	subtotal := snap.Subtotal()
	tax := snap.Tax()
	total := snap.Total()
	return cartResponse{
		Items:           snap.Items(),
		TotalItems:      snap.TotalItems(),
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		SubtotalDisplay: money.FormatUSD(subtotal),
		TaxDisplay:      money.FormatUSD(tax),
		TotalDisplay:    money.FormatUSD(total),
	}
}
