package controllers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/lunaville/storefront-backend/api/responses"
	"github.com/lunaville/storefront-backend/api/validators"
	"github.com/lunaville/storefront-backend/internal/notifications"
	"github.com/lunaville/storefront-backend/internal/pricing"
	"github.com/lunaville/storefront-backend/pkg/logger"
	"github.com/lunaville/storefront-backend/pkg/money"
)

type customRugResponse struct {
	RequestID    uuid.UUID      `json:"request_id"`
	Quote        *pricing.Quote `json:"quote"`
	PriceDisplay string         `json:"price_display"`
}

// CustomRugSubmit records a custom rug request. The price is recomputed here;
// whatever figure the client showed the shopper is ignored. The request is a
// stub pipeline: logged and acknowledged, nothing downstream yet.
func CustomRugSubmit(notifier notifications.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req rugSpecRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quote, err := pricing.Estimate(req.toSpec())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		requestID := uuid.New()
		ctx = logg.WithFields(ctx, map[string]any{
			"custom_rug_request_id": requestID.String(),
			"shape":                 req.Shape,
			"material":              req.Material,
			"length":                req.Length,
			"width":                 req.Width,
			"quoted_price":          quote.Price,
		})
		logg.Info(ctx, "custom rug request received")

		notifier.Notify(ctx, notifications.Notification{
			Title:       "Custom rug request submitted",
			Description: fmt.Sprintf("Estimated at %s. We'll be in touch shortly.", money.FormatUSD(quote.Price)),
		})

		responses.WriteSuccessStatus(w, http.StatusAccepted, customRugResponse{
			RequestID:    requestID,
			Quote:        quote,
			PriceDisplay: money.FormatUSD(quote.Price),
		})
	}
}
