package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/lunaville/storefront-backend/pkg/enums"
	pkgerrors "github.com/lunaville/storefront-backend/pkg/errors"
)

// Pricing policy constants. Dimensions are in feet, rates in dollars per
// square foot, prices in whole dollars.
const (
	BaseRatePerSqFt = 12.0

	MinDimension = 2.0
	MaxDimension = 20.0

	RunnerPriceFloor = 180

	largeAreaThreshold = 80.0
	largeAreaRate      = 0.85
	midAreaThreshold   = 50.0
	midAreaRate        = 0.90
)

var materialFactors = map[enums.RugMaterial]float64{
	enums.RugMaterialWool:      1.2,
	enums.RugMaterialCotton:    0.9,
	enums.RugMaterialSilk:      2.5,
	enums.RugMaterialJute:      0.8,
	enums.RugMaterialSynthetic: 0.7,
}

// MaterialFactor returns the per-material rate multiplier. Unknown materials
// price at the base rate.
func MaterialFactor(material enums.RugMaterial) float64 {
	if factor, ok := materialFactors[material]; ok {
		return factor
	}
	return 1.0
}

// tieredRate discounts the per-area rate for larger rugs.
func tieredRate(area, ratePerArea float64) float64 {
	switch {
	case area > largeAreaThreshold:
		return ratePerArea * largeAreaRate
	case area > midAreaThreshold:
		return ratePerArea * midAreaRate
	default:
		return ratePerArea
	}
}

// CalculateRugPrice prices a rectangular rug: area times the tiered rate,
// rounded to whole dollars. Callers must pass dimensions already clamped to
// the valid range.
func CalculateRugPrice(length, width, ratePerArea float64) int64 {
	area := length * width
	return int64(math.Round(area * tieredRate(area, ratePerArea)))
}

// RoundRugPrice prices a round rug from its diameter. Only the large-area
// tier applies; a round rug rarely clears it.
func RoundRugPrice(diameter, ratePerArea float64) int64 {
	radius := diameter / 2
	area := math.Pi * radius * radius
	rate := ratePerArea
	if area > largeAreaThreshold {
		rate = ratePerArea * largeAreaRate
	}
	return int64(math.Round(area * rate))
}

// RunnerRugPrice prices a runner as a rectangle with a minimum price floor.
func RunnerRugPrice(length, width, ratePerArea float64) int64 {
	price := CalculateRugPrice(length, width, ratePerArea)
	if price < RunnerPriceFloor {
		return RunnerPriceFloor
	}
	return price
}

// RugSpec is the customizer input: geometry, material, free-text notes.
// Square rugs mirror width to length.
type RugSpec struct {
	Shape    enums.RugShape    `json:"shape"`
	Material enums.RugMaterial `json:"material"`
	Length   float64           `json:"length"`
	Width    float64           `json:"width"`
	Notes    string            `json:"notes,omitempty"`
}

// Validate enforces the caller contract the arithmetic assumes.
func (s RugSpec) Validate() error {
	if !s.Shape.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown rug shape")
	}
	if !s.Material.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown rug material")
	}
	if !dimensionInRange(s.Length) || !dimensionInRange(s.Width) {
		return pkgerrors.New(pkgerrors.CodeValidation, "dimensions must be between 2 and 20 feet")
	}
	return nil
}

func dimensionInRange(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= MinDimension && v <= MaxDimension
}

// Quote is a deterministic price estimate for a rug spec.
type Quote struct {
	Price           decimal.Decimal `json:"price"`
	RatePerSqFt     float64         `json:"rate_per_sqft"`
	AreaSqFt        float64         `json:"area_sqft"`
	FloorApplied    bool            `json:"floor_applied"`
	MaterialFactor  float64         `json:"material_factor"`
	BaseRatePerSqFt float64         `json:"base_rate_per_sqft"`
}

// Estimate validates the spec and prices it with the shape-specific formula.
func Estimate(spec RugSpec) (*Quote, error) {
	if spec.Shape == enums.RugShapeSquare {
		spec.Width = spec.Length
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	factor := MaterialFactor(spec.Material)
	rate := BaseRatePerSqFt * factor

	var (
		price        int64
		area         float64
		floorApplied bool
	)
	switch spec.Shape {
	case enums.RugShapeRound:
		radius := spec.Width / 2
		area = math.Pi * radius * radius
		price = RoundRugPrice(spec.Width, rate)
	case enums.RugShapeRunner:
		area = spec.Length * spec.Width
		price = RunnerRugPrice(spec.Length, spec.Width, rate)
		floorApplied = price == RunnerPriceFloor && CalculateRugPrice(spec.Length, spec.Width, rate) < RunnerPriceFloor
	default:
		area = spec.Length * spec.Width
		price = CalculateRugPrice(spec.Length, spec.Width, rate)
	}

	return &Quote{
		Price:           decimal.NewFromInt(price),
		RatePerSqFt:     rate,
		AreaSqFt:        area,
		FloorApplied:    floorApplied,
		MaterialFactor:  factor,
		BaseRatePerSqFt: BaseRatePerSqFt,
	}, nil
}
