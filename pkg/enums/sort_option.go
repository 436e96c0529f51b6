package enums

import "fmt"

// SortOption enumerates the catalog browse sort orders.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
)

var validSortOptions = []SortOption{
	SortFeatured,
	SortPriceAsc,
	SortPriceDesc,
	SortNewest,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption, defaulting empty
// input to the featured ordering.
func ParseSortOption(value string) (SortOption, error) {
	if value == "" {
		return SortFeatured, nil
	}
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
