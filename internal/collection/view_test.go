package collection

import (
	"testing"
	"time"

	"github.com/marcus/ripplenote/internal/note"
)

func sampleNotes() []note.Note {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return []note.Note{
		{ID: "n-4", Title: "banana bread", Content: "recipe", Project: "Cooking", Tags: []string{"food"}, CreatedAt: base},
		{ID: "n-3", Title: "Apple pie", Content: "another recipe", Project: "Cooking", Tags: []string{"food", "dessert"}, CreatedAt: base.Add(-time.Hour)},
		{ID: "n-2", Title: "Standup notes", Content: "discussed the roadmap", Project: "Work", Tags: []string{"meeting"}, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "n-1", Title: "Untagged", Content: "nothing special", CreatedAt: base.Add(-3 * time.Hour)},
	}
}

func ids(notes []note.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestApply_NoFiltersKeepsAll(t *testing.T) {
	got := Apply(sampleNotes(), Query{})
	if len(got) != 4 {
		t.Fatalf("Expected all notes, got %d", len(got))
	}
	want := []string{"n-4", "n-3", "n-2", "n-1"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Errorf("Expected %q at %d, got %q", want[i], i, id)
		}
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleNotes(), Query{Search: "RECIPE"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(got))
	}
}

func TestApply_SearchSpansFields(t *testing.T) {
	tests := []struct {
		name   string
		search string
		wantID string
	}{
		{"title", "banana", "n-4"},
		{"content", "roadmap", "n-2"},
		{"project", "work", "n-2"},
		{"tag", "dessert", "n-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleNotes(), Query{Search: tt.search})
			if len(got) != 1 || got[0].ID != tt.wantID {
				t.Errorf("Expected only %q, got %v", tt.wantID, ids(got))
			}
		})
	}
}

func TestApply_ProjectIsExact(t *testing.T) {
	got := Apply(sampleNotes(), Query{Project: "Cooking"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 cooking notes, got %d", len(got))
	}

	got = Apply(sampleNotes(), Query{Project: "cooking"})
	if len(got) != 0 {
		t.Errorf("Expected exact project match, got %v", ids(got))
	}
}

func TestApply_TagIsExactCaseSensitive(t *testing.T) {
	got := Apply(sampleNotes(), Query{Tag: "food"})
	if len(got) != 2 {
		t.Fatalf("Expected 2 food notes, got %d", len(got))
	}

	got = Apply(sampleNotes(), Query{Tag: "Food"})
	if len(got) != 0 {
		t.Errorf("Expected case-sensitive tag match, got %v", ids(got))
	}
}

func TestApply_FiltersCompose(t *testing.T) {
	got := Apply(sampleNotes(), Query{Search: "recipe", Tag: "dessert"})
	if len(got) != 1 || got[0].ID != "n-3" {
		t.Errorf("Expected AND of filters, got %v", ids(got))
	}
}

func TestApply_SortOldest(t *testing.T) {
	got := Apply(sampleNotes(), Query{Sort: SortOldest})
	want := []string{"n-1", "n-2", "n-3", "n-4"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("Expected %v, got %v", want, ids(got))
		}
	}
}

func TestApply_SortTitleIgnoresCase(t *testing.T) {
	got := Apply(sampleNotes(), Query{Sort: SortTitle})
	want := []string{"n-3", "n-4", "n-2", "n-1"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("Expected %v, got %v", want, ids(got))
		}
	}
}

func TestApply_StableOnTies(t *testing.T) {
	ts := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	notes := []note.Note{
		{ID: "n-3", Title: "same", CreatedAt: ts},
		{ID: "n-2", Title: "same", CreatedAt: ts},
		{ID: "n-1", Title: "same", CreatedAt: ts},
	}

	for _, order := range []SortOrder{SortNewest, SortOldest, SortTitle} {
		got := Apply(notes, Query{Sort: order})
		want := []string{"n-3", "n-2", "n-1"}
		for i, id := range ids(got) {
			if id != want[i] {
				t.Errorf("Sort %v: expected canonical order on ties, got %v", order, ids(got))
			}
		}
	}
}

func TestApply_ZeroTimeSortsOldest(t *testing.T) {
	notes := []note.Note{
		{ID: "n-2", CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "n-1"}, // zero CreatedAt
	}

	got := Apply(notes, Query{Sort: SortOldest})
	if got[0].ID != "n-1" {
		t.Errorf("Expected zero-time note first under oldest, got %v", ids(got))
	}

	got = Apply(notes, Query{Sort: SortNewest})
	if got[0].ID != "n-2" {
		t.Errorf("Expected zero-time note last under newest, got %v", ids(got))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	notes := sampleNotes()
	Apply(notes, Query{Sort: SortTitle})

	if notes[0].ID != "n-4" {
		t.Error("Expected input order untouched")
	}
}

func TestParseSortOrder_RoundTrip(t *testing.T) {
	for _, order := range []SortOrder{SortNewest, SortOldest, SortTitle} {
		if got := ParseSortOrder(order.String()); got != order {
			t.Errorf("Expected %v to round-trip, got %v", order, got)
		}
	}
	if got := ParseSortOrder("garbage"); got != SortNewest {
		t.Errorf("Expected unknown name to fall back to newest, got %v", got)
	}
}

func TestQueryIsZero(t *testing.T) {
	if !(Query{}).IsZero() {
		t.Error("Expected empty query to be zero")
	}
	if (Query{Search: "x"}).IsZero() {
		t.Error("Expected search query to be non-zero")
	}
	if (Query{Sort: SortTitle}).IsZero() {
		t.Error("Expected non-default sort to be non-zero")
	}
}
