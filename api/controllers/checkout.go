package controllers

import (
	"net/http"

	"github.com/lunaville/storefront-backend/api/responses"
	"github.com/lunaville/storefront-backend/api/validators"
	"github.com/lunaville/storefront-backend/internal/orders"
	"github.com/lunaville/storefront-backend/pkg/enums"
	"github.com/lunaville/storefront-backend/pkg/logger"
	"github.com/lunaville/storefront-backend/pkg/types"
)

type checkoutAddress struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	Address1  string `json:"address1" validate:"required,min=5,max=200"`
	Address2  string `json:"address2" validate:"max=200"`
	City      string `json:"city" validate:"required,min=2,max=100"`
	State     string `json:"state" validate:"required,min=2,max=50"`
	ZipCode   string `json:"zip_code" validate:"required,min=5,max=10"`
	Country   string `json:"country" validate:"max=100"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
}

type checkoutRequest struct {
	CartID          string          `json:"cart_id" validate:"required"`
	UserID          string          `json:"user_id" validate:"required"`
	PaymentMethod   string          `json:"payment_method" validate:"required,oneof=credit_card paypal"`
	ShippingAddress checkoutAddress `json:"shipping_address" validate:"required"`

	// Card fields are validated for shape when paying by card and then
	// discarded; no payment is captured.
	CardNumber string `json:"card_number" validate:"required_if=PaymentMethod credit_card,omitempty,len=16,numeric"`
	CardExpiry string `json:"card_expiry" validate:"required_if=PaymentMethod credit_card,omitempty,len=5"`
	CardCVC    string `json:"card_cvc" validate:"required_if=PaymentMethod credit_card,omitempty,min=3,max=4,numeric"`
}

func (r checkoutRequest) toInput() orders.CheckoutInput {
	var line2 *string
	if r.ShippingAddress.Address2 != "" {
		line2 = &r.ShippingAddress.Address2
	}
	return orders.CheckoutInput{
		CartID:        r.CartID,
		UserID:        r.UserID,
		PaymentMethod: enums.PaymentMethod(r.PaymentMethod),
		ShippingAddress: types.Address{
			FirstName: r.ShippingAddress.FirstName,
			LastName:  r.ShippingAddress.LastName,
			Line1:     r.ShippingAddress.Address1,
			Line2:     line2,
			City:      r.ShippingAddress.City,
			State:     r.ShippingAddress.State,
			ZipCode:   r.ShippingAddress.ZipCode,
			Country:   r.ShippingAddress.Country,
			Phone:     r.ShippingAddress.Phone,
		},
	}
}

// Checkout freezes the cart into a pending order.
func Checkout(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ctx = logg.WithCartID(ctx, req.CartID)
		order, err := svc.Checkout(ctx, req.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
