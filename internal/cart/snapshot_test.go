package cart

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunaville/storefront-backend/pkg/enums"
)

func testProduct(name string, price string) Product {
	return Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Image:    "/images/rugs/" + name + ".jpg",
		Size:     "5x8",
		Material: enums.RugMaterialWool,
	}
}

func TestSnapshotAddMergesExistingLine(t *testing.T) {
	t.Parallel()

	rug := testProduct("heriz", "30")
	snap := EmptySnapshot().withItemAdded(rug, 2).withItemAdded(rug, 3)

	if got := snap.Quantity(rug.ID); got != 5 {
		t.Fatalf("expected merged quantity 5, got %d", got)
	}
	if got := len(snap.Items()); got != 1 {
		t.Fatalf("expected a single line, got %d", got)
	}
	if got := snap.TotalItems(); got != 5 {
		t.Fatalf("TotalItems = %d, want 5", got)
	}
}

func TestSnapshotTotals(t *testing.T) {
	t.Parallel()

	// 2 x 30 + 1 x 40 = 100, taxed at 7%.
	snap := EmptySnapshot().
		withItemAdded(testProduct("heriz", "30"), 2).
		withItemAdded(testProduct("sahara", "40"), 1)

	if got := snap.Subtotal(); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("Subtotal = %s, want 100", got)
	}
	if got := snap.Tax(); !got.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("Tax = %s, want 7", got)
	}
	if got := snap.Total(); !got.Equal(decimal.NewFromInt(107)) {
		t.Fatalf("Total = %s, want 107", got)
	}
	if !snap.Total().Equal(snap.Subtotal().Add(snap.Tax())) {
		t.Fatal("Total must equal Subtotal + Tax exactly")
	}
}

func TestSnapshotTransitionsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	rug := testProduct("heriz", "30")
	base := EmptySnapshot().withItemAdded(rug, 1)

	if next := base.withItemAdded(rug, 4); next.Quantity(rug.ID) != 5 {
		t.Fatal("transition result wrong")
	}
	if got := base.Quantity(rug.ID); got != 1 {
		t.Fatalf("receiver mutated, quantity now %d", got)
	}

	if _, found := base.withItemRemoved(rug.ID); !found {
		t.Fatal("expected removal to find the line")
	}
	if !base.IsInCart(rug.ID) {
		t.Fatal("receiver mutated by removal")
	}
}

func TestSnapshotWithQuantity(t *testing.T) {
	t.Parallel()

	rug := testProduct("heriz", "30")
	snap := EmptySnapshot().withItemAdded(rug, 2)

	updated, found := snap.withQuantity(rug.ID, 7)
	if !found || updated.Quantity(rug.ID) != 7 {
		t.Fatalf("update failed: found=%v qty=%d", found, updated.Quantity(rug.ID))
	}

	if _, found := snap.withQuantity(uuid.New(), 3); found {
		t.Fatal("unknown product should not be found")
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	t.Parallel()

	rug := testProduct("heriz", "1249.00")
	snap := EmptySnapshot().withItemAdded(rug, 2)

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored Snapshot
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if restored.Quantity(rug.ID) != 2 {
		t.Fatal("round trip lost the line")
	}
	if !restored.Subtotal().Equal(snap.Subtotal()) {
		t.Fatal("round trip changed the subtotal")
	}
}
