package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunaville/storefront-backend/pkg/enums"
)

// Product is the slice of a listing a cart line needs. Custom rugs enter the
// cart through the same shape with a generated id and a quoted price.
type Product struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Price    decimal.Decimal   `json:"price"`
	Image    string            `json:"image"`
	Size     string            `json:"size"`
	Material enums.RugMaterial `json:"material"`
}
