// Package browse implements the catalog filter/sort pipeline, the
// comparison selection and the catalog statistics.
package browse

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/qyinm/modeldeck/types"
)

// Apply returns the records matching state, in sort order. The input
// slice is never modified and the result never aliases it.
func Apply(records []types.ModelRecord, state types.FilterState) []types.ModelRecord {
	term := strings.ToLower(state.SearchTerm)

	out := make([]types.ModelRecord, 0, len(records))
	for _, r := range records {
		if state.Category != types.All && r.Category() != state.Category {
			continue
		}
		if term != "" && !MatchesSearch(r, term) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, state.Sort)
	return out
}

// MatchesSearch reports whether the lowercase term is a substring of the
// record's name, developer, any tag or description, ignoring case.
func MatchesSearch(r types.ModelRecord, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(r.Name()), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Developer()), lowerTerm) {
		return true
	}
	for _, tag := range r.Tags() {
		if strings.Contains(strings.ToLower(tag), lowerTerm) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.Description()), lowerTerm)
}

type pricedRecord struct {
	record types.ModelRecord
	price  float64
	known  bool
}

func sortRecords(records []types.ModelRecord, key types.SortKey) {
	switch key {
	case types.Newest:
		sortNewest(records)
	case types.PriceLow, types.PriceHigh:
		sortByPrice(records, key == types.PriceHigh)
	case types.Name:
		slices.SortStableFunc(records, func(a, b types.ModelRecord) int {
			return cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
		})
	}
}

// sortNewest orders records with a parsable release date newest first.
// Records whose date does not parse keep their slot, so they stay where
// the filter step left them relative to everything else.
func sortNewest(records []types.ModelRecord) {
	type dated struct {
		record types.ModelRecord
		date   time.Time
	}

	slots := make([]int, 0, len(records))
	parsed := make([]dated, 0, len(records))
	for i, r := range records {
		d, ok := ParseReleaseDate(r.ReleaseDate())
		if !ok {
			continue
		}
		slots = append(slots, i)
		parsed = append(parsed, dated{record: r, date: d})
	}

	slices.SortStableFunc(parsed, func(a, b dated) int {
		return b.date.Compare(a.date)
	})
	for i, slot := range slots {
		records[slot] = parsed[i].record
	}
}

// sortByPrice sorts by PriceValue. Unparsable prices go last in either
// direction.
func sortByPrice(records []types.ModelRecord, descending bool) {
	priced := make([]pricedRecord, len(records))
	for i, r := range records {
		priced[i] = pricedRecord{record: r, price: PriceValue(r.Price()), known: PriceKnown(r.Price())}
	}

	slices.SortStableFunc(priced, func(a, b pricedRecord) int {
		switch {
		case !a.known && !b.known:
			return 0
		case !a.known:
			return 1
		case !b.known:
			return -1
		case descending:
			return cmp.Compare(b.price, a.price)
		}
		return cmp.Compare(a.price, b.price)
	})

	for i := range priced {
		records[i] = priced[i].record
	}
}
