package browse

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/qyinm/modeldeck/types"
)

func numbered(n int) []types.ModelRecord {
	out := make([]types.ModelRecord, n)
	for i := range out {
		out[i] = rec(fmt.Sprintf("m%d", i), fmt.Sprintf("Model %d", i), "Dev", "2025-01-01", types.Image, "$1", "")
	}
	return out
}

func TestToggleIsInvolution(t *testing.T) {
	records := numbered(3)
	s := NewSelection()
	s.Toggle(records[0])
	s.Toggle(records[1])
	before := s.IDs()

	if outcome, err := s.Toggle(records[2]); err != nil || outcome != Added {
		t.Fatalf("add: %v, %v", outcome, err)
	}
	if outcome, err := s.Toggle(records[2]); err != nil || outcome != Removed {
		t.Fatalf("remove: %v, %v", outcome, err)
	}
	if !slices.Equal(s.IDs(), before) {
		t.Fatalf("selection after double toggle = %v, want %v", s.IDs(), before)
	}
}

func TestToggleCapacity(t *testing.T) {
	records := numbered(6)
	s := NewSelection()
	for _, r := range records[:MaxSelection] {
		if _, err := s.Toggle(r); err != nil {
			t.Fatalf("toggle %s: %v", r.ID(), err)
		}
	}
	full := s.IDs()

	outcome, err := s.Toggle(records[4])
	if !errors.Is(err, ErrSelectionFull) || outcome != Rejected {
		t.Fatalf("fifth add = %v, %v; want Rejected, ErrSelectionFull", outcome, err)
	}
	if err.Error() != "you can compare up to 4 models at a time" {
		t.Fatalf("notice = %q", err.Error())
	}
	if !slices.Equal(s.IDs(), full) {
		t.Fatalf("rejected add changed selection: %v", s.IDs())
	}

	// Removing a member of a full selection always works.
	if outcome, err := s.Toggle(records[1]); err != nil || outcome != Removed {
		t.Fatalf("remove from full selection: %v, %v", outcome, err)
	}
	if outcome, err := s.Toggle(records[4]); err != nil || outcome != Added {
		t.Fatalf("add after removal: %v, %v", outcome, err)
	}
	if s.Len() != MaxSelection {
		t.Fatalf("len = %d, want %d", s.Len(), MaxSelection)
	}
	if want := []string{"m0", "m2", "m3", "m4"}; !slices.Equal(s.IDs(), want) {
		t.Fatalf("selection = %v, want %v", s.IDs(), want)
	}
}

func TestSelectionIdentityByID(t *testing.T) {
	a := rec("same", "First copy", "Dev", "", types.Video, "", "")
	b := rec("same", "Second copy", "Other", "", types.Audio, "", "")

	s := NewSelection()
	s.Toggle(a)
	if !s.IsSelected(b) || !s.Contains("same") {
		t.Fatalf("membership must be tested by id")
	}
	if outcome, _ := s.Toggle(b); outcome != Removed || !s.Empty() {
		t.Fatalf("toggling a record with the same id must remove it")
	}
}

func TestSelectionRecordsIsCopy(t *testing.T) {
	s := NewSelection()
	s.Toggle(numbered(1)[0])
	got := s.Records()
	got[0] = types.ModelRecord{}
	if s.Records()[0].ID() != "m0" {
		t.Fatalf("Records() exposes internal slice")
	}
}
