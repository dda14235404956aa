package browse

import (
	"errors"
	"slices"

	"github.com/qyinm/modeldeck/types"
)

// MaxSelection is the comparison tray capacity.
const MaxSelection = 4

// ErrSelectionFull is returned when adding to a full selection.
var ErrSelectionFull = errors.New("you can compare up to 4 models at a time")

// Outcome reports what Toggle did.
type Outcome int

const (
	Rejected Outcome = iota
	Added
	Removed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "rejected"
	}
}

// Selection is the ordered set of records picked for comparison,
// identified by id and bounded by MaxSelection.
type Selection struct {
	records []types.ModelRecord
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{records: make([]types.ModelRecord, 0, MaxSelection)}
}

// Toggle removes r if it is selected, otherwise appends it. A full
// selection rejects the addition with ErrSelectionFull and is left as is.
func (s *Selection) Toggle(r types.ModelRecord) (Outcome, error) {
	if i := s.index(r.ID()); i >= 0 {
		s.records = slices.Delete(s.records, i, i+1)
		return Removed, nil
	}
	if len(s.records) >= MaxSelection {
		return Rejected, ErrSelectionFull
	}
	s.records = append(s.records, r)
	return Added, nil
}

// IsSelected reports whether a record with r's id is selected.
func (s *Selection) IsSelected(r types.ModelRecord) bool {
	return s.index(r.ID()) >= 0
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	return s.index(id) >= 0
}

// Len returns the number of selected records.
func (s *Selection) Len() int { return len(s.records) }

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool { return len(s.records) == 0 }

// Records returns the selected records in selection order.
func (s *Selection) Records() []types.ModelRecord {
	return slices.Clone(s.records)
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.records))
	for i, r := range s.records {
		ids[i] = r.ID()
	}
	return ids
}

func (s *Selection) index(id string) int {
	return slices.IndexFunc(s.records, func(r types.ModelRecord) bool {
		return r.ID() == id
	})
}
