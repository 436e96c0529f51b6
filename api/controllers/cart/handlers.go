package cart

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lunaville/storefront-backend/api/responses"
	"github.com/lunaville/storefront-backend/api/validators"
	cartsvc "github.com/lunaville/storefront-backend/internal/cart"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
	"github.com/lunaville/storefront-backend/pkg/logger"
)

// Fetch returns the current snapshot for a cart.
func Fetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := chi.URLParam(r, "cartId")
		ctx = logg.WithCartID(ctx, cartID)

		snap, err := svc.Get(ctx, cartID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(snap))
	}
}

// AddItem adds a product to the cart, merging quantity into an existing line.
func AddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := chi.URLParam(r, "cartId")
		ctx = logg.WithCartID(ctx, cartID)

		var req addItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap, err := svc.AddItem(ctx, cartID, req.toProduct(), req.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(snap))
	}
}

// UpdateQuantity sets a line to an exact quantity; zero removes the line.
func UpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := chi.URLParam(r, "cartId")
		ctx = logg.WithCartID(ctx, cartID)

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var req updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		snap, err := svc.UpdateQuantity(ctx, cartID, productID, *req.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(snap))
	}
}

// RemoveItem drops a line from the cart; absent products are a quiet no-op.
func RemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := chi.URLParam(r, "cartId")
		ctx = logg.WithCartID(ctx, cartID)

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		snap, err := svc.RemoveItem(ctx, cartID, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(snap))
	}
}

// Clear empties the cart.
func Clear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cartID := chi.URLParam(r, "cartId")
		ctx = logg.WithCartID(ctx, cartID)

		snap, err := svc.Clear(ctx, cartID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toCartResponse(snap))
	}
}
