package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
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

type stubRepo struct {
	created   *models.Order
	createErr error
	stored    *models.Order
	getErr    error
	updateErr error
}

func (s *stubRepo) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	order.ID = uuid.New()
	s.created = order
	return order, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.stored, nil
}

func (s *stubRepo) ListByUser(_ context.Context, _ listOrdersParams) ([]models.Order, *pagination.Cursor, error) {
	return nil, nil, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ enums.OrderStatus) error {
	return s.updateErr
}

type stubCartStore struct {
	snapshot cart.Snapshot
	getErr   error
	cleared  []string
	clearErr error
}

func (s *stubCartStore) Get(_ context.Context, _ string) (cart.Snapshot, error) {
	if s.getErr != nil {
		return cart.EmptySnapshot(), s.getErr
	}
	return s.snapshot, nil
}

func (s *stubCartStore) Clear(_ context.Context, cartID string) (cart.Snapshot, error) {
	if s.clearErr != nil {
		return cart.EmptySnapshot(), s.clearErr
	}
	s.cleared = append(s.cleared, cartID)
	return cart.EmptySnapshot(), nil
}

type recordingNotifier struct {
	sent []notifications.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n notifications.Notification) {
	r.sent = append(r.sent, n)
}

func snapshotWith(t *testing.T, lines ...string) cart.Snapshot {
	t.Helper()
	payload := fmt.Sprintf(`{"items":[%s]}`, joinLines(lines))
	var snap cart.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		t.Fatalf("build snapshot: %v", err)
	}
	return snap
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += ","
		}
		out += l
	}
	return out
}

func lineJSON(id uuid.UUID, name, price string, qty int) string {
	return fmt.Sprintf(`{"id":%q,"name":%q,"price":%q,"quantity":%d}`, id, name, price, qty)
}

func validAddress() types.Address {
	return types.Address{
		FirstName: "Ada",
		LastName:  "Moreno",
		Line1:     "14 Birch Lane",
		City:      "Portland",
		State:     "or",
		ZipCode:   "97202",
		Phone:     "503-555-0142",
	}
}

func newOrdersService(t *testing.T, repo Repository, carts cartStore, notifier notifications.Notifier) Service {
	t.Helper()
	logg := logger.New(logger.Options{
		ServiceName: "test",
		Level:       zerolog.ErrorLevel,
		Output:      &bytes.Buffer{},
	})
	svc, err := NewService(repo, carts, notifier, logg)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestCheckoutRecomputesTotalsAndClearsCart(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	carts := &stubCartStore{
		snapshot: snapshotWith(t,
			lineJSON(productID, "Heriz Medallion", "30", 2),
			lineJSON(uuid.New(), "Sahara Flatweave", "40", 1),
		),
	}
	repo := &stubRepo{}
	notifier := &recordingNotifier{}
	svc := newOrdersService(t, repo, carts, notifier)

	order, err := svc.Checkout(context.Background(), CheckoutInput{
		CartID:          "cart-1",
		UserID:          "user-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   enums.PaymentMethodCreditCard,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if !order.Subtotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("Subtotal = %s, want 100", order.Subtotal)
	}
	if !order.Tax.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("Tax = %s, want 7", order.Tax)
	}
	if !order.Total.Equal(decimal.NewFromInt(107)) {
		t.Fatalf("Total = %s, want 107", order.Total)
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("Status = %s, want pending", order.Status)
	}
	if order.ID == uuid.Nil {
		t.Fatal("order id not assigned")
	}
	if len(order.Items) != 2 || order.Items[0].ProductID != productID {
		t.Fatalf("unexpected line items: %+v", order.Items)
	}
	if order.ShippingAddress.State != "OR" {
		t.Fatalf("address not normalized: %+v", order.ShippingAddress)
	}

	if len(carts.cleared) != 1 || carts.cleared[0] != "cart-1" {
		t.Fatalf("cart not cleared: %v", carts.cleared)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Order placed" {
		t.Fatalf("unexpected notifications: %+v", notifier.sent)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newOrdersService(t, &stubRepo{}, &stubCartStore{snapshot: cart.EmptySnapshot()}, &recordingNotifier{})

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		CartID:          "cart-1",
		UserID:          "user-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   enums.PaymentMethodPayPal,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestCheckoutPersistFailureNotifiesAndKeepsCart(t *testing.T) {
	t.Parallel()

	carts := &stubCartStore{
		snapshot: snapshotWith(t, lineJSON(uuid.New(), "Heriz", "30", 1)),
	}
	repo := &stubRepo{createErr: errors.New("connection reset")}
	notifier := &recordingNotifier{}
	svc := newOrdersService(t, repo, carts, notifier)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		CartID:          "cart-1",
		UserID:          "user-1",
		ShippingAddress: validAddress(),
		PaymentMethod:   enums.PaymentMethodCreditCard,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if len(carts.cleared) != 0 {
		t.Fatal("cart must survive a failed checkout")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Order failed" {
		t.Fatalf("expected failure notification, got %+v", notifier.sent)
	}
}

func TestCheckoutValidation(t *testing.T) {
	t.Parallel()

	svc := newOrdersService(t, &stubRepo{}, &stubCartStore{}, &recordingNotifier{})
	ctx := context.Background()

	cases := []CheckoutInput{
		{UserID: "u", ShippingAddress: validAddress(), PaymentMethod: enums.PaymentMethodPayPal},
		{CartID: "c", ShippingAddress: validAddress(), PaymentMethod: enums.PaymentMethodPayPal},
		{CartID: "c", UserID: "u", ShippingAddress: validAddress(), PaymentMethod: enums.PaymentMethod("wire")},
		{CartID: "c", UserID: "u", ShippingAddress: types.Address{}, PaymentMethod: enums.PaymentMethodPayPal},
	}
	for i, input := range cases {
		_, err := svc.Checkout(ctx, input)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestUpdateStatusTerminalGuard(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{stored: &models.Order{
		ID:     uuid.New(),
		Status: enums.OrderStatusDelivered,
	}}
	svc := newOrdersService(t, repo, &stubCartStore{}, &recordingNotifier{})

	_, err := svc.UpdateStatus(context.Background(), repo.stored.ID, enums.OrderStatusCancelled)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}

	// Same-status update is a quiet no-op even on terminal orders.
	out, err := svc.UpdateStatus(context.Background(), repo.stored.ID, enums.OrderStatusDelivered)
	if err != nil || out.Status != enums.OrderStatusDelivered {
		t.Fatalf("same-status update failed: %v", err)
	}
}

func TestUpdateStatusHappyPath(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{stored: &models.Order{
		ID:     uuid.New(),
		Status: enums.OrderStatusPending,
	}}
	svc := newOrdersService(t, repo, &stubCartStore{}, &recordingNotifier{})

	out, err := svc.UpdateStatus(context.Background(), repo.stored.ID, enums.OrderStatusShipped)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if out.Status != enums.OrderStatusShipped {
		t.Fatalf("Status = %s, want shipped", out.Status)
	}
}

func TestGetMapsNotFound(t *testing.T) {
	t.Parallel()

	svc := newOrdersService(t, &stubRepo{getErr: gorm.ErrRecordNotFound}, &stubCartStore{}, &recordingNotifier{})

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListByUserRejectsBadCursor(t *testing.T) {
	t.Parallel()

	svc := newOrdersService(t, &stubRepo{}, &stubCartStore{}, &recordingNotifier{})

	_, err := svc.ListByUser(context.Background(), "user-1", pagination.Params{Cursor: "garbage!!"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.ListByUser(context.Background(), " ", pagination.Params{})
	if pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
}
