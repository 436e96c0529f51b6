package controllers

import (
	"net/http"

	"github.com/lunaville/storefront-backend/api/responses"
	"github.com/lunaville/storefront-backend/api/validators"
	"github.com/lunaville/storefront-backend/internal/pricing"
	"github.com/lunaville/storefront-backend/pkg/enums"
	"github.com/lunaville/storefront-backend/pkg/logger"
	"github.com/lunaville/storefront-backend/pkg/money"
)

type rugSpecRequest struct {
	Shape    string  `json:"shape" validate:"required,oneof=rectangular square round runner"`
	Material string  `json:"material" validate:"required,oneof=wool cotton silk jute synthetic"`
	Length   float64 `json:"length" validate:"required,gte=2,lte=20"`
	Width    float64 `json:"width" validate:"required,gte=2,lte=20"`
	Notes    string  `json:"notes" validate:"max=1000"`
}

func (r rugSpecRequest) toSpec() pricing.RugSpec {
	return pricing.RugSpec{
		Shape:    enums.RugShape(r.Shape),
		Material: enums.RugMaterial(r.Material),
		Length:   r.Length,
		Width:    r.Width,
		Notes:    r.Notes,
	}
}

type quoteResponse struct {
	*pricing.Quote
	PriceDisplay string `json:"price_display"`
}

// PricingQuote returns the live estimate the customizer renders while the
// shopper drags the sliders.
func PricingQuote(logg *logger.Logger) http.HandlerFunc {
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
		responses.WriteSuccess(w, quoteResponse{
			Quote:        quote,
			PriceDisplay: money.FormatUSD(quote.Price),
		})
	}
}
