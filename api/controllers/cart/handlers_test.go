package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/lunaville/storefront-backend/internal/cart"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
	"github.com/lunaville/storefront-backend/pkg/logger"
)

type stubService struct {
	snapshot    cartsvc.Snapshot
	err         error
	lastCartID  string
	lastProduct cartsvc.Product
	lastQty     int
}

func (s *stubService) Get(_ context.Context, cartID string) (cartsvc.Snapshot, error) {
	s.lastCartID = cartID
	return s.snapshot, s.err
}

func (s *stubService) AddItem(_ context.Context, cartID string, product cartsvc.Product, qty int) (cartsvc.Snapshot, error) {
	s.lastCartID = cartID
	s.lastProduct = product
	s.lastQty = qty
	return s.snapshot, s.err
}

func (s *stubService) UpdateQuantity(_ context.Context, cartID string, _ uuid.UUID, qty int) (cartsvc.Snapshot, error) {
	s.lastCartID = cartID
	s.lastQty = qty
	return s.snapshot, s.err
}

func (s *stubService) RemoveItem(_ context.Context, cartID string, _ uuid.UUID) (cartsvc.Snapshot, error) {
	s.lastCartID = cartID
	return s.snapshot, s.err
}

func (s *stubService) Clear(_ context.Context, cartID string) (cartsvc.Snapshot, error) {
	s.lastCartID = cartID
	return s.snapshot, s.err
}

func snapshotFromJSON(t *testing.T, payload string) cartsvc.Snapshot {
	t.Helper()
	var snap cartsvc.Snapshot
	require.NoError(t, json.Unmarshal([]byte(payload), &snap))
	return snap
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{
		ServiceName: "test",
		Level:       zerolog.ErrorLevel,
		Output:      &bytes.Buffer{},
	})
}

func newCartRouter(svc cartsvc.Service) http.Handler {
	logg := testLogger()
	r := chi.NewRouter()
	r.Route("/carts/{cartId}", func(r chi.Router) {
		r.Get("/", Fetch(svc, logg))
		r.Delete("/", Clear(svc, logg))
		r.Post("/items", AddItem(svc, logg))
		r.Patch("/items/{productId}", UpdateQuantity(svc, logg))
		r.Delete("/items/{productId}", RemoveItem(svc, logg))
	})
	return r
}

func TestFetchReturnsDerivedTotals(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	svc := &stubService{
		snapshot: snapshotFromJSON(t, fmt.Sprintf(
			`{"items":[{"id":%q,"name":"Heriz","price":"100","quantity":1}]}`, productID,
		)),
	}
	router := newCartRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/carts/cart-1/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "cart-1", svc.lastCartID)

	var envelope struct {
		Data cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, 1, envelope.Data.TotalItems)
	require.Equal(t, "$100.00", envelope.Data.SubtotalDisplay)
	require.Equal(t, "$7.00", envelope.Data.TaxDisplay)
	require.Equal(t, "$107.00", envelope.Data.TotalDisplay)
}

func TestAddItemDecodesBody(t *testing.T) {
	t.Parallel()

	svc := &stubService{snapshot: cartsvc.EmptySnapshot()}
	router := newCartRouter(svc)

	productID := uuid.New()
	body := fmt.Sprintf(
		`{"id":%q,"name":"Heriz","price":"30","image":"/img.jpg","size":"5x8","material":"wool","quantity":2}`,
		productID,
	)
	req := httptest.NewRequest(http.MethodPost, "/carts/cart-1/items", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, productID, svc.lastProduct.ID)
	require.Equal(t, "Heriz", svc.lastProduct.Name)
	require.Equal(t, 2, svc.lastQty)
}

func TestAddItemRejectsMissingFields(t *testing.T) {
	t.Parallel()

	router := newCartRouter(&stubService{snapshot: cartsvc.EmptySnapshot()})

	req := httptest.NewRequest(http.MethodPost, "/carts/cart-1/items", strings.NewReader(`{"name":"Heriz"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestUpdateQuantityAllowsZero(t *testing.T) {
	t.Parallel()

	svc := &stubService{snapshot: cartsvc.EmptySnapshot()}
	router := newCartRouter(svc)

	url := fmt.Sprintf("/carts/cart-1/items/%s", uuid.New())
	req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(`{"quantity":0}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, svc.lastQty)
}

func TestUpdateQuantityRejectsBadProductID(t *testing.T) {
	t.Parallel()

	router := newCartRouter(&stubService{snapshot: cartsvc.EmptySnapshot()})

	req := httptest.NewRequest(http.MethodPatch, "/carts/cart-1/items/not-a-uuid", strings.NewReader(`{"quantity":1}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	t.Parallel()

	svc := &stubService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")}
	router := newCartRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/carts/cart-1/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "cart id is required")
}
