package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lunaville/storefront-backend/pkg/enums"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
)

func TestCalculateRugPriceTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		length float64
		width  float64
		rate   float64
		want   int64
	}{
		{"mid tier at exactly 80 sqft", 10, 8, 12, 864},
		{"large tier above 80 sqft", 10, 9, 12, 918},
		{"no tier below 50 sqft", 6, 4, 12, 288},
		{"mid tier just above 50 sqft", 10, 5.1, 12, 551},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateRugPrice(tc.length, tc.width, tc.rate); got != tc.want {
				t.Fatalf("CalculateRugPrice(%v, %v, %v) = %d, want %d", tc.length, tc.width, tc.rate, got, tc.want)
			}
		})
	}
}

func TestRoundRugPrice(t *testing.T) {
	t.Parallel()

	// diameter 10 -> area pi*25 = 78.54, below the large-area threshold.
	if got := RoundRugPrice(10, 12); got != 942 {
		t.Fatalf("RoundRugPrice(10, 12) = %d, want 942", got)
	}

	// diameter 12 -> area pi*36 = 113.1, large tier applies.
	if got := RoundRugPrice(12, 12); got != 1154 {
		t.Fatalf("RoundRugPrice(12, 12) = %d, want 1154", got)
	}
}

func TestRunnerRugPriceFloor(t *testing.T) {
	t.Parallel()

	if got := RunnerRugPrice(3, 2, 12); got != 180 {
		t.Fatalf("RunnerRugPrice(3, 2, 12) = %d, want floor 180", got)
	}

	// A big enough runner clears the floor on its own.
	if got := RunnerRugPrice(20, 3, 12); got != CalculateRugPrice(20, 3, 12) {
		t.Fatalf("floor applied where computed price %d exceeds it", got)
	}
}

func TestMaterialFactor(t *testing.T) {
	t.Parallel()

	cases := map[enums.RugMaterial]float64{
		enums.RugMaterialWool:      1.2,
		enums.RugMaterialCotton:    0.9,
		enums.RugMaterialSilk:      2.5,
		enums.RugMaterialJute:      0.8,
		enums.RugMaterialSynthetic: 0.7,
	}
	for material, want := range cases {
		if got := MaterialFactor(material); got != want {
			t.Fatalf("MaterialFactor(%s) = %v, want %v", material, got, want)
		}
	}
	if got := MaterialFactor(enums.RugMaterial("velvet")); got != 1.0 {
		t.Fatalf("unknown material factor = %v, want 1.0", got)
	}
}

func TestEstimate(t *testing.T) {
	t.Parallel()

	t.Run("square mirrors width to length", func(t *testing.T) {
		t.Parallel()
		quote, err := Estimate(RugSpec{
			Shape:    enums.RugShapeSquare,
			Material: enums.RugMaterialWool,
			Length:   6,
			Width:    2,
		})
		if err != nil {
			t.Fatalf("estimate failed: %v", err)
		}
		// 6x6 = 36 sqft at 12*1.2 = 14.4/sqft.
		if !quote.Price.Equal(decimal.NewFromInt(518)) {
			t.Fatalf("Price = %s, want 518", quote.Price)
		}
		if quote.AreaSqFt != 36 {
			t.Fatalf("AreaSqFt = %v, want 36", quote.AreaSqFt)
		}
	})

	t.Run("runner reports floor", func(t *testing.T) {
		t.Parallel()
		quote, err := Estimate(RugSpec{
			Shape:    enums.RugShapeRunner,
			Material: enums.RugMaterialSynthetic,
			Length:   3,
			Width:    2,
		})
		if err != nil {
			t.Fatalf("estimate failed: %v", err)
		}
		if !quote.Price.Equal(decimal.NewFromInt(180)) {
			t.Fatalf("Price = %s, want 180", quote.Price)
		}
		if !quote.FloorApplied {
			t.Fatal("expected FloorApplied")
		}
	})

	t.Run("round uses diameter", func(t *testing.T) {
		t.Parallel()
		quote, err := Estimate(RugSpec{
			Shape:    enums.RugShapeRound,
			Material: enums.RugMaterialCotton,
			Length:   10,
			Width:    10,
		})
		if err != nil {
			t.Fatalf("estimate failed: %v", err)
		}
		// area 78.54 at 12*0.9 = 10.8/sqft, no tier.
		if !quote.Price.Equal(decimal.NewFromInt(848)) {
			t.Fatalf("Price = %s, want 848", quote.Price)
		}
	})

	t.Run("rejects out-of-range dimensions", func(t *testing.T) {
		t.Parallel()
		_, err := Estimate(RugSpec{
			Shape:    enums.RugShapeRectangular,
			Material: enums.RugMaterialWool,
			Length:   25,
			Width:    4,
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects unknown material", func(t *testing.T) {
		t.Parallel()
		_, err := Estimate(RugSpec{
			Shape:    enums.RugShapeRectangular,
			Material: enums.RugMaterial("velvet"),
			Length:   6,
			Width:    4,
		})
		if pkgerrors.As(err) == nil {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
