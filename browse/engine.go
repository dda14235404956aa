package browse

import (
	"slices"
	"sync"

	"github.com/qyinm/modeldeck/types"
)

// maxCached bounds the memo; the whole memo is dropped when it fills up.
const maxCached = 64

// Engine serves filtered views and stats over one catalog, memoizing
// results per FilterState. It is safe for concurrent use.
type Engine struct {
	source  types.CatalogSource
	records []types.ModelRecord
	stats   Stats

	mu    sync.Mutex
	cache map[types.FilterState][]types.ModelRecord
}

// NewEngine snapshots the source's records and computes its stats.
func NewEngine(source types.CatalogSource) *Engine {
	records := source.Records()
	return &Engine{
		source:  source,
		records: records,
		stats:   ComputeStats(records),
		cache:   make(map[types.FilterState][]types.ModelRecord),
	}
}

// Visible returns the records matching state in sort order.
func (e *Engine) Visible(state types.FilterState) []types.ModelRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.cache[state]; ok {
		return slices.Clone(cached)
	}

	result := Apply(e.records, state)
	if len(e.cache) >= maxCached {
		e.cache = make(map[types.FilterState][]types.ModelRecord)
	}
	e.cache[state] = result
	return slices.Clone(result)
}

// Stats returns whole-catalog statistics.
func (e *Engine) Stats() Stats {
	byCategory := make(map[types.Category]int, len(e.stats.ByCategory))
	for c, n := range e.stats.ByCategory {
		byCategory[c] = n
	}
	return Stats{Total: e.stats.Total, ByCategory: byCategory}
}

// Records returns every catalog record in catalog order.
func (e *Engine) Records() []types.ModelRecord {
	return slices.Clone(e.records)
}

// Lookup returns the record with the given id.
func (e *Engine) Lookup(id string) (types.ModelRecord, bool) {
	return e.source.Lookup(id)
}

// Len returns the catalog size.
func (e *Engine) Len() int { return len(e.records) }

// CacheSize returns the number of memoized filter states.
func (e *Engine) CacheSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cache)
}

// ClearCache drops every memoized result.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[types.FilterState][]types.ModelRecord)
}
