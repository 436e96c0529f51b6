package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lunaville/storefront-backend/pkg/enums"
	"github.com/lunaville/storefront-backend/pkg/types"
)

// Order is the record handed across the order-submission boundary. Line items
// and the shipping address are frozen as JSON documents at submission time so
// later catalog edits cannot rewrite history.
type Order struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID          string               `gorm:"column:user_id;not null" json:"user_id"`
	Items           types.OrderLineItems `gorm:"column:items;type:text;serializer:json;not null" json:"items"`
	Subtotal        decimal.Decimal      `gorm:"column:subtotal;type:numeric(10,2);not null" json:"subtotal"`
	Tax             decimal.Decimal      `gorm:"column:tax;type:numeric(10,2);not null" json:"tax"`
	Total           decimal.Decimal      `gorm:"column:total;type:numeric(10,2);not null" json:"total"`
	ShippingAddress types.Address        `gorm:"column:shipping_address;type:text;serializer:json;not null" json:"shipping_address"`
	PaymentMethod   enums.PaymentMethod  `gorm:"column:payment_method;not null" json:"payment_method"`
	Status          enums.OrderStatus    `gorm:"column:status;not null;default:pending" json:"status"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// BeforeCreate assigns the order identifier the submission contract promises.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
