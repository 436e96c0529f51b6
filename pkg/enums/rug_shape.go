package enums

import "fmt"

// RugShape represents the shapes the customizer can price.
type RugShape string

const (
	RugShapeRectangular RugShape = "rectangular"
	RugShapeSquare      RugShape = "square"
	RugShapeRound       RugShape = "round"
	RugShapeRunner      RugShape = "runner"
)

var validRugShapes = []RugShape{
	RugShapeRectangular,
	RugShapeSquare,
	RugShapeRound,
	RugShapeRunner,
}

// String implements fmt.Stringer.
func (s RugShape) String() string {
	return string(s)
}

// IsValid reports whether the value is a known RugShape.
func (s RugShape) IsValid() bool {
	for _, candidate := range validRugShapes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseRugShape converts raw input into a RugShape.
func ParseRugShape(value string) (RugShape, error) {
	for _, candidate := range validRugShapes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid rug shape %q", value)
}
