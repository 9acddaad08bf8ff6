package collection

import (
	"testing"
	"time"

	"github.com/marcus/ripplenote/internal/note"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreate_PrependsAndSelects(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(fixedClock(now)))

	first := s.Create(note.Note{Title: "first"})
	second := s.Create(note.Note{Title: "second"})

	if first.ID != "n-1" || second.ID != "n-2" {
		t.Errorf("Expected sequential IDs, got %q and %q", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(now) {
		t.Errorf("Expected clock timestamp, got %v", second.CreatedAt)
	}

	all := s.All()
	if all[0].ID != "n-2" || all[1].ID != "n-1" {
		t.Error("Expected newest note first")
	}
	if s.SelectedID() != "n-2" {
		t.Errorf("Expected new note selected, got %q", s.SelectedID())
	}
}

func TestCreate_IgnoresDraftIDAndTimestamp(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(fixedClock(now)))

	created := s.Create(note.Note{
		ID:        "bogus",
		Title:     "x",
		CreatedAt: now.Add(-time.Hour),
	})

	if created.ID != "n-1" {
		t.Errorf("Expected assigned ID, got %q", created.ID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("Expected store timestamp, got %v", created.CreatedAt)
	}
}

func TestWithSeed_AdvancesCounter(t *testing.T) {
	s := New(WithSeed(note.Defaults(time.Now())))

	if s.Len() != 3 {
		t.Fatalf("Expected 3 seeded notes, got %d", s.Len())
	}
	if s.SelectedID() != "n-3" {
		t.Errorf("Expected first seeded note selected, got %q", s.SelectedID())
	}

	created := s.Create(note.Note{Title: "new"})
	if created.ID != "n-4" {
		t.Errorf("Expected counter past seeded IDs, got %q", created.ID)
	}
}

func TestUpdate_PreservesIDAndCreatedAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := New(WithClock(fixedClock(now)))
	created := s.Create(note.Note{Title: "before"})

	s.Update(created.ID, note.Note{
		ID:        "other",
		Title:     "after",
		Tags:      []string{"t"},
		CreatedAt: now.Add(time.Hour),
	})

	got, ok := s.Get(created.ID)
	if !ok {
		t.Fatal("Expected note to remain")
	}
	if got.Title != "after" {
		t.Errorf("Expected updated title, got %q", got.Title)
	}
	if got.ID != created.ID {
		t.Errorf("Expected ID preserved, got %q", got.ID)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Expected CreatedAt preserved, got %v", got.CreatedAt)
	}
}

func TestUpdate_SelectsUpdatedNote(t *testing.T) {
	s := New()
	a := s.Create(note.Note{Title: "a"}) // n-1
	s.Create(note.Note{Title: "b"})      // n-2, selected

	s.Update(a.ID, note.Note{Title: "a2"})

	if s.SelectedID() != a.ID {
		t.Errorf("Expected update to select %q, got %q", a.ID, s.SelectedID())
	}
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.Create(note.Note{Title: "only"})

	s.Update("n-999", note.Note{Title: "ghost"})

	if s.Len() != 1 {
		t.Errorf("Expected store untouched, got %d notes", s.Len())
	}
	got, _ := s.Get("n-1")
	if got.Title != "only" {
		t.Errorf("Expected original title, got %q", got.Title)
	}
	if s.SelectedID() != "n-1" {
		t.Errorf("Expected selection untouched, got %q", s.SelectedID())
	}
}

func TestDelete_SelectionFailover(t *testing.T) {
	s := New()
	s.Create(note.Note{Title: "a"}) // n-1
	s.Create(note.Note{Title: "b"}) // n-2, selected, at front

	s.Delete("n-2")

	if s.Len() != 1 {
		t.Fatalf("Expected 1 note, got %d", s.Len())
	}
	if s.SelectedID() != "n-1" {
		t.Errorf("Expected selection to move to first remaining, got %q", s.SelectedID())
	}
}

func TestDelete_UnselectedKeepsSelection(t *testing.T) {
	s := New()
	s.Create(note.Note{Title: "a"}) // n-1
	s.Create(note.Note{Title: "b"}) // n-2, selected

	s.Delete("n-1")

	if s.SelectedID() != "n-2" {
		t.Errorf("Expected selection unchanged, got %q", s.SelectedID())
	}
}

func TestDelete_LastNoteClearsSelection(t *testing.T) {
	s := New()
	s.Create(note.Note{Title: "a"})

	s.Delete("n-1")

	if s.Len() != 0 {
		t.Errorf("Expected empty store, got %d", s.Len())
	}
	if s.SelectedID() != "" {
		t.Errorf("Expected empty selection, got %q", s.SelectedID())
	}
	if _, ok := s.Selected(); ok {
		t.Error("Expected Selected to report nothing")
	}
}

func TestSelect_UnknownIDClears(t *testing.T) {
	s := New()
	s.Create(note.Note{Title: "a"})

	s.Select("n-404")

	if s.SelectedID() != "" {
		t.Errorf("Expected cleared selection, got %q", s.SelectedID())
	}
}

func TestAll_ReturnsDeepCopies(t *testing.T) {
	s := New()
	s.Create(note.Note{Title: "a", Tags: []string{"x"}})

	all := s.All()
	all[0].Title = "mutated"
	all[0].Tags[0] = "mutated"

	got, _ := s.Get("n-1")
	if got.Title != "a" || got.Tags[0] != "x" {
		t.Error("Expected store isolated from caller mutation")
	}
}
