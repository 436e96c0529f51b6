package controllers

import (
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunaville/storefront-backend/api/responses"
	"github.com/lunaville/storefront-backend/internal/catalog"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
	"github.com/lunaville/storefront-backend/pkg/logger"
)

// ProductList serves the filterable browse grid. Filter tokens repeat as
// ?filter=Traditional&filter=Wool and match categories, material or size.
func ProductList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		params := catalog.ListParams{
			Filters: query["filter"],
			Sort:    query.Get("sort"),
		}

		var err error
		if params.Page, err = intQueryParam(query.Get("page")); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid page"))
			return
		}
		if params.PageSize, err = intQueryParam(query.Get("page_size")); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid page_size"))
			return
		}
		if params.PriceMin, err = priceQueryParam(query.Get("price_min")); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price_min"))
			return
		}
		if params.PriceMax, err = priceQueryParam(query.Get("price_max")); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price_max"))
			return
		}

		result, err := svc.List(ctx, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ProductDetail returns a single product for the detail page and add-to-cart.
func ProductDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}
		ctx = logg.WithProductID(ctx, id.String())

		product, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func intQueryParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func priceQueryParam(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
