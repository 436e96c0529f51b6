package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lunaville/storefront-backend/internal/notifications"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
	"github.com/lunaville/storefront-backend/pkg/logger"
	redisclient "github.com/lunaville/storefront-backend/pkg/redis"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(cartID string) string
}

// Service exposes the cart mutations and the read path. Every mutation
// returns the snapshot the cart settled on.
type Service interface {
	Get(ctx context.Context, cartID string) (Snapshot, error)
	AddItem(ctx context.Context, cartID string, product Product, quantity int) (Snapshot, error)
	UpdateQuantity(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (Snapshot, error)
	RemoveItem(ctx context.Context, cartID string, productID uuid.UUID) (Snapshot, error)
	Clear(ctx context.Context, cartID string) (Snapshot, error)
}

type service struct {
	kv       kvStore
	notifier notifications.Notifier
	ttl      time.Duration
	logg     *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(kv kvStore, notifier notifications.Notifier, ttl time.Duration, logg *logger.Logger) (Service, error) {
	if kv == nil {
		return nil, fmt.Errorf("cart kv store required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("cart notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &service{
		kv:       kv,
		notifier: notifier,
		ttl:      ttl,
		logg:     logg,
	}, nil
}

func (s *service) Get(ctx context.Context, cartID string) (Snapshot, error) {
	if err := validateCartID(cartID); err != nil {
		return EmptySnapshot(), err
	}
	return s.load(ctx, cartID)
}

func (s *service) AddItem(ctx context.Context, cartID string, product Product, quantity int) (Snapshot, error) {
	if err := validateCartID(cartID); err != nil {
		return EmptySnapshot(), err
	}
	if product.ID == uuid.Nil {
		return EmptySnapshot(), pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return EmptySnapshot(), pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if product.Price.IsNegative() {
		return EmptySnapshot(), pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
	}
	if quantity < 1 {
		return EmptySnapshot(), pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	current, err := s.load(ctx, cartID)
	if err != nil {
		return EmptySnapshot(), err
	}

	existing := current.IsInCart(product.ID)
	next := current.withItemAdded(product, quantity)
	if err := s.persist(ctx, cartID, next); err != nil {
		return EmptySnapshot(), err
	}

	if existing {
		s.notifier.Notify(ctx, notifications.Notification{
			Title:       "Cart updated",
			Description: fmt.Sprintf("%s (x%d)", product.Name, next.Quantity(product.ID)),
		})
	} else {
		s.notifier.Notify(ctx, notifications.Notification{
			Title:       "Added to cart",
			Description: fmt.Sprintf("%s (x%d)", product.Name, quantity),
		})
	}
	return next, nil
}

func (s *service) UpdateQuantity(ctx context.Context, cartID string, productID uuid.UUID, quantity int) (Snapshot, error) {
	if err := validateCartID(cartID); err != nil {
		return EmptySnapshot(), err
	}
	if productID == uuid.Nil {
		return EmptySnapshot(), pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	// Dropping below one means the shopper no longer wants the line at all.
	if quantity < 1 {
		return s.RemoveItem(ctx, cartID, productID)
	}

	current, err := s.load(ctx, cartID)
	if err != nil {
		return EmptySnapshot(), err
	}

	next, found := current.withQuantity(productID, quantity)
	if !found {
		return current, nil
	}
	if err := s.persist(ctx, cartID, next); err != nil {
		return EmptySnapshot(), err
	}
	return next, nil
}

func (s *service) RemoveItem(ctx context.Context, cartID string, productID uuid.UUID) (Snapshot, error) {
	if err := validateCartID(cartID); err != nil {
		return EmptySnapshot(), err
	}
	if productID == uuid.Nil {
		return EmptySnapshot(), pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	current, err := s.load(ctx, cartID)
	if err != nil {
		return EmptySnapshot(), err
	}

	next, found := current.withItemRemoved(productID)
	if !found {
		return current, nil
	}
	if err := s.persist(ctx, cartID, next); err != nil {
		return EmptySnapshot(), err
	}

	s.notifier.Notify(ctx, notifications.Notification{
		Title: "Removed from cart",
	})
	return next, nil
}

func (s *service) Clear(ctx context.Context, cartID string) (Snapshot, error) {
	if err := validateCartID(cartID); err != nil {
		return EmptySnapshot(), err
	}

	empty := EmptySnapshot()
	if err := s.persist(ctx, cartID, empty); err != nil {
		return EmptySnapshot(), err
	}

	s.notifier.Notify(ctx, notifications.Notification{
		Title: "Cart cleared",
	})
	return empty, nil
}

// load reads the persisted snapshot. A missing slot is a valid empty cart,
// and an unreadable payload degrades to an empty cart rather than wedging
// the shopper.
func (s *service) load(ctx context.Context, cartID string) (Snapshot, error) {
	key := s.kv.CartKey(cartID)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return EmptySnapshot(), nil
		}
		return EmptySnapshot(), pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		ctx = s.logg.WithCartID(ctx, cartID)
		s.logg.Warn(ctx, "discarding unreadable cart payload")
		return EmptySnapshot(), nil
	}
	return snap, nil
}

func (s *service) persist(ctx context.Context, cartID string, snap Snapshot) error {
	key := s.kv.CartKey(cartID)

	if snap.TotalItems() == 0 {
		if err := s.kv.Del(ctx, key); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}
		return nil
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.kv.Set(ctx, key, string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func validateCartID(cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	return nil
}
