package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartsvc "github.com/lunaville/storefront-backend/internal/cart"
	"github.com/lunaville/storefront-backend/pkg/enums"
)

type addItemRequest struct {
	ProductID uuid.UUID       `json:"id" validate:"required"`
	Name      string          `json:"name" validate:"required,max=200"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image" validate:"max=500"`
	Size      string          `json:"size" validate:"max=50"`
	Material  string          `json:"material" validate:"omitempty,oneof=wool cotton silk jute synthetic"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
}

func (r addItemRequest) toProduct() cartsvc.Product {
	return cartsvc.Product{
		ID:       r.ProductID,
		Name:     r.Name,
		Price:    r.Price,
		Image:    r.Image,
		Size:     r.Size,
		Material: enums.RugMaterial(r.Material),
	}
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}
