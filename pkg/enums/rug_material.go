package enums

import "fmt"

// RugMaterial represents the canonical rug materials carried by the catalog.
type RugMaterial string

const (
	RugMaterialWool      RugMaterial = "wool"
	RugMaterialCotton    RugMaterial = "cotton"
	RugMaterialSilk      RugMaterial = "silk"
	RugMaterialJute      RugMaterial = "jute"
	RugMaterialSynthetic RugMaterial = "synthetic"
)

var validRugMaterials = []RugMaterial{
	RugMaterialWool,
	RugMaterialCotton,
	RugMaterialSilk,
	RugMaterialJute,
	RugMaterialSynthetic,
}

// String implements fmt.Stringer.
func (m RugMaterial) String() string {
	return string(m)
}

// IsValid reports whether the value is a known RugMaterial.
func (m RugMaterial) IsValid() bool {
	for _, candidate := range validRugMaterials {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseRugMaterial converts raw input into a RugMaterial.
func ParseRugMaterial(value string) (RugMaterial, error) {
	for _, candidate := range validRugMaterials {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid rug material %q", value)
}
