// Package collection holds the in-memory note store, the derived view
// engine, and the tag/project index.
package collection

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/marcus/ripplenote/internal/note"
)

// Store owns the canonical note list and the selection. Notes are kept
// newest-first by insertion. The store runs on the single update
// goroutine, so it carries no lock.
type Store struct {
	notes      []note.Note
	selectedID string
	nextID     int
	clock      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the CreatedAt timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithSeed preloads notes. Seeded notes keep their IDs; the counter
// starts past the highest numeric suffix so later creates cannot
// collide with them.
func WithSeed(notes []note.Note) Option {
	return func(s *Store) {
		s.notes = make([]note.Note, len(notes))
		for i, n := range notes {
			s.notes[i] = n.Clone()
			if suffix, ok := strings.CutPrefix(n.ID, "n-"); ok {
				if v, err := strconv.Atoi(suffix); err == nil && v >= s.nextID {
					s.nextID = v + 1
				}
			}
		}
		if len(s.notes) > 0 {
			s.selectedID = s.notes[0].ID
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		nextID: 1,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create assigns a fresh ID and timestamp, prepends the note, and
// selects it. The stored copy is returned.
func (s *Store) Create(draft note.Note) note.Note {
	n := draft.Clone()
	n.ID = fmt.Sprintf("n-%d", s.nextID)
	s.nextID++
	n.CreatedAt = s.clock()

	s.notes = append([]note.Note{n}, s.notes...)
	s.selectedID = n.ID
	return n.Clone()
}

// Update replaces every field of the identified note except ID and
// CreatedAt, and selects it. An unknown id leaves the store untouched.
func (s *Store) Update(id string, n note.Note) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			c := n.Clone()
			c.ID = s.notes[i].ID
			c.CreatedAt = s.notes[i].CreatedAt
			s.notes[i] = c
			s.selectedID = id
			return
		}
	}
}

// Delete removes the note. If it was selected, selection moves to the
// first remaining note, or clears when the store empties.
func (s *Store) Delete(id string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			if s.selectedID == id {
				if len(s.notes) > 0 {
					s.selectedID = s.notes[0].ID
				} else {
					s.selectedID = ""
				}
			}
			return
		}
	}
}

// Select sets the selection. An unknown id clears it.
func (s *Store) Select(id string) {
	if _, ok := s.Get(id); ok {
		s.selectedID = id
		return
	}
	s.selectedID = ""
}

// SelectedID returns the selected note id, or "" when nothing is
// selected.
func (s *Store) SelectedID() string { return s.selectedID }

// Selected returns the selected note.
func (s *Store) Selected() (note.Note, bool) {
	return s.Get(s.selectedID)
}

// Get returns a copy of the note with the given id.
func (s *Store) Get(id string) (note.Note, bool) {
	if id == "" {
		return note.Note{}, false
	}
	for i := range s.notes {
		if s.notes[i].ID == id {
			return s.notes[i].Clone(), true
		}
	}
	return note.Note{}, false
}

// All returns a deep copy of the canonical order.
func (s *Store) All() []note.Note {
	out := make([]note.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Len returns the note count.
func (s *Store) Len() int { return len(s.notes) }
