package browse

import "github.com/qyinm/modeldeck/types"

// Stats summarises the whole catalog, independent of any filter.
type Stats struct {
	Total      int
	ByCategory map[types.Category]int
}

// ComputeStats counts records overall and per category.
func ComputeStats(records []types.ModelRecord) Stats {
	s := Stats{
		Total:      len(records),
		ByCategory: make(map[types.Category]int, len(types.Categories)),
	}
	for _, c := range types.Categories {
		s.ByCategory[c] = 0
	}
	for _, r := range records {
		s.ByCategory[r.Category()]++
	}
	return s
}

// Count returns the number of records in category c; All yields Total.
func (s Stats) Count(c types.Category) int {
	if c == types.All {
		return s.Total
	}
	return s.ByCategory[c]
}
