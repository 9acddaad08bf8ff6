package collection

import (
	"testing"

	"github.com/marcus/ripplenote/internal/note"
)

func TestProjects_FirstSeenOrder(t *testing.T) {
	notes := []note.Note{
		{ID: "n-4", Project: "Work"},
		{ID: "n-3", Project: ""},
		{ID: "n-2", Project: "Personal"},
		{ID: "n-1", Project: "Work"},
	}

	got := Projects(notes)
	want := []string{"Work", "Personal"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
}

func TestTags_FirstSeenCaseSensitive(t *testing.T) {
	notes := []note.Note{
		{ID: "n-3", Tags: []string{"go", "tui"}},
		{ID: "n-2", Tags: []string{"Go", "go"}},
		{ID: "n-1", Tags: []string{"", "tui"}},
	}

	got := Tags(notes)
	want := []string{"go", "tui", "Go"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
}

func TestIndex_EmptyInput(t *testing.T) {
	if got := Projects(nil); got != nil {
		t.Errorf("Expected nil projects, got %v", got)
	}
	if got := Tags(nil); got != nil {
		t.Errorf("Expected nil tags, got %v", got)
	}
}
