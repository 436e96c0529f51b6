package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lunaville/storefront-backend/internal/cart"
	"github.com/lunaville/storefront-backend/internal/notifications"
	"github.com/lunaville/storefront-backend/pkg/db/models"
	"github.com/lunaville/storefront-backend/pkg/enums"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
	"github.com/lunaville/storefront-backend/pkg/logger"
	"github.com/lunaville/storefront-backend/pkg/pagination"
	"github.com/lunaville/storefront-backend/pkg/types"
)

type cartStore interface {
	Get(ctx context.Context, cartID string) (cart.Snapshot, error)
	Clear(ctx context.Context, cartID string) (cart.Snapshot, error)
}

// Service exposes checkout and the order read/admin surface.
type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, params pagination.Params) (*ListResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*models.Order, error)
}

// CheckoutInput is everything checkout needs beyond the cart itself.
type CheckoutInput struct {
	CartID          string
	UserID          string
	ShippingAddress types.Address
	PaymentMethod   enums.PaymentMethod
}

// ListResult wraps one page of orders and the cursor for the next.
type ListResult struct {
	Items  []models.Order `json:"items"`
	Cursor string         `json:"cursor"`
}

type service struct {
	repo     Repository
	carts    cartStore
	notifier notifications.Notifier
	logg     *logger.Logger
}

// NewService wires order dependencies.
func NewService(repo Repository, carts cartStore, notifier notifications.Notifier, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     repo,
		carts:    carts,
		notifier: notifier,
		logg:     logg,
	}, nil
}

// Checkout freezes the cart into an order. Totals are recomputed from the
// snapshot on this side of the boundary; client-sent totals are never
// trusted. On success the cart is cleared; on failure the shopper is told
// and nothing is retried.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	if strings.TrimSpace(input.CartID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}
	if err := input.ShippingAddress.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping address")
	}

	snap, err := s.carts.Get(ctx, input.CartID)
	if err != nil {
		return nil, err
	}
	if snap.TotalItems() == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	lines := make(types.OrderLineItems, 0, len(snap.Items()))
	for _, item := range snap.Items() {
		lines = append(lines, types.OrderLineItem{
			ProductID: item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		UserID:          input.UserID,
		Items:           lines,
		Subtotal:        snap.Subtotal(),
		Tax:             snap.Tax(),
		Total:           snap.Total(),
		ShippingAddress: input.ShippingAddress.Normalized(),
		PaymentMethod:   input.PaymentMethod,
		Status:          enums.OrderStatusPending,
	}

	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		s.notifier.Notify(ctx, notifications.Notification{
			Title:       "Order failed",
			Description: "Something went wrong placing your order. Please try again.",
		})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	ctx = s.logg.WithOrderID(ctx, saved.ID.String())
	s.logg.Info(ctx, "order placed")

	// A cart that refuses to clear is not worth failing the order over.
	if _, err := s.carts.Clear(ctx, input.CartID); err != nil {
		s.logg.Warn(ctx, "failed to clear cart after checkout")
	}

	s.notifier.Notify(ctx, notifications.Notification{
		Title:       "Order placed",
		Description: fmt.Sprintf("Order %s confirmed", saved.ID),
	})
	return saved, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return row, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, params pagination.Params) (*ListResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	query := listOrdersParams{
		UserID: userID,
		Limit:  pagination.LimitWithBuffer(params.Limit),
	}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, next, err := s.repo.ListByUser(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &ListResult{
		Items:  rows,
		Cursor: cursor,
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order is in a terminal state").
			WithDetails(map[string]any{"status": current.Status})
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	current.Status = status
	return current, nil
}
