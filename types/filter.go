package types

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering of the visible records
type SortKey int

const (
	Newest SortKey = iota
	PriceLow
	PriceHigh
	Name
)

// SortKeys lists the sort keys in the order the sort selector cycles them.
var SortKeys = []SortKey{Newest, PriceLow, PriceHigh, Name}

// String returns the wire name of the sort key
func (s SortKey) String() string {
	switch s {
	case Newest:
		return "newest"
	case PriceLow:
		return "price-low"
	case PriceHigh:
		return "price-high"
	case Name:
		return "name"
	default:
		return "unknown"
	}
}

// Label returns the human-readable selector label
func (s SortKey) Label() string {
	switch s {
	case Newest:
		return "Newest First"
	case PriceLow:
		return "Price: Low to High"
	case PriceHigh:
		return "Price: High to Low"
	case Name:
		return "Name: A to Z"
	default:
		return "Unknown"
	}
}

// Next returns the sort key after s, wrapping around.
func (s SortKey) Next() SortKey {
	for i, k := range SortKeys {
		if k == s {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return Newest
}

// ParseSortKey parses a sort key name. An empty string parses as Newest.
func ParseSortKey(raw string) (SortKey, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	if v == "" {
		return Newest, nil
	}
	for _, k := range SortKeys {
		if k.String() == v {
			return k, nil
		}
	}
	return Newest, fmt.Errorf("invalid sort %q; expected newest|price-low|price-high|name", raw)
}

// FilterState is the search term, category and sort key driving the
// visible record list. It is comparable and used as a memo key.
type FilterState struct {
	SearchTerm string
	Category   Category
	Sort       SortKey
}

// DefaultFilterState returns the start-up filter: no search, All, newest.
func DefaultFilterState() FilterState {
	return FilterState{SearchTerm: "", Category: All, Sort: Newest}
}

// IsDefault reports whether no search or category filter is active.
func (f FilterState) IsDefault() bool {
	return f.SearchTerm == "" && f.Category == All
}
