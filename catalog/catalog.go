// Package catalog loads the immutable model catalog the browser works on.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/qyinm/modeldeck/types"
)

var (
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate model id")
	// ErrEmptyID is returned when a record has no id.
	ErrEmptyID = errors.New("model id is required")
)

// Catalog implements types.CatalogSource over an in-memory record slice.
// It is built once and never mutated.
type Catalog struct {
	records []types.ModelRecord
	byID    map[string]int
	origin  string
}

// Compile-time interface check
var _ types.CatalogSource = (*Catalog)(nil)

// New validates records and returns a Catalog that preserves their order.
func New(origin string, records []types.ModelRecord) (*Catalog, error) {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.ID())
		if id == "" {
			return nil, fmt.Errorf("record %d (%q): %w", i, r.Name(), ErrEmptyID)
		}
		if !r.Category().Valid() {
			return nil, fmt.Errorf("record %q: %w %d", id, types.ErrUnknownCategory, r.Category())
		}
		if prev, ok := byID[id]; ok {
			return nil, fmt.Errorf("records %d and %d: %w %q", prev, i, ErrDuplicateID, id)
		}
		byID[id] = i
	}
	return &Catalog{
		records: slices.Clone(records),
		byID:    byID,
		origin:  origin,
	}, nil
}

// Records returns the records in catalog order. The slice is a copy.
func (c *Catalog) Records() []types.ModelRecord {
	return slices.Clone(c.records)
}

// Lookup returns the record with the given id.
func (c *Catalog) Lookup(id string) (types.ModelRecord, bool) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return types.ModelRecord{}, false
	}
	return c.records[i], true
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Origin describes where the catalog was loaded from.
func (c *Catalog) Origin() string { return c.origin }
