// Package draft implements the editor's staging buffer. Edits
// accumulate here and reach the store only on an explicit save.
package draft

import (
	"strings"

	"github.com/marcus/ripplenote/internal/note"
)

// State is the buffer lifecycle phase.
type State int

const (
	Idle State = iota
	Editing
)

// Buffer stages one note's fields during editing. Mutations outside
// the Editing state are no-ops.
type Buffer struct {
	state  State
	noteID string

	Title   string
	Content string
	Tags    []string
	Project string

	// snapshot at Begin, for dirty detection
	base note.Note
}

// State returns the current lifecycle phase.
func (b *Buffer) State() State { return b.state }

// NoteID returns the id of the note being edited, or "" for a new note.
func (b *Buffer) NoteID() string { return b.noteID }

// Begin loads an existing note for editing.
func (b *Buffer) Begin(n note.Note) {
	c := n.Clone()
	b.state = Editing
	b.noteID = c.ID
	b.Title = c.Title
	b.Content = c.Content
	b.Tags = c.Tags
	b.Project = c.Project
	b.base = n.Clone()
}

// BeginNew starts editing a note that does not exist yet, typically
// from a template body.
func (b *Buffer) BeginNew(title, content string) {
	b.state = Editing
	b.noteID = ""
	b.Title = title
	b.Content = content
	b.Tags = nil
	b.Project = ""
	b.base = note.Note{Title: title, Content: content}
}

// SetTitle stages a title change.
func (b *Buffer) SetTitle(s string) {
	if b.state != Editing {
		return
	}
	b.Title = s
}

// SetContent stages a content change.
func (b *Buffer) SetContent(s string) {
	if b.state != Editing {
		return
	}
	b.Content = s
}

// SetProject stages a project change.
func (b *Buffer) SetProject(s string) {
	if b.state != Editing {
		return
	}
	b.Project = s
}

// AddTag trims the tag and appends it. Empty results and exact
// duplicates are dropped silently.
func (b *Buffer) AddTag(raw string) {
	if b.state != Editing {
		return
	}
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return
	}
	for _, t := range b.Tags {
		if t == tag {
			return
		}
	}
	b.Tags = append(b.Tags, tag)
}

// RemoveTag drops the tag at index i. Out-of-range indexes are
// ignored.
func (b *Buffer) RemoveTag(i int) {
	if b.state != Editing || i < 0 || i >= len(b.Tags) {
		return
	}
	b.Tags = append(b.Tags[:i], b.Tags[i+1:]...)
}

// Snapshot returns the staged note for saving. The bool is false when
// both the trimmed title and trimmed content are empty, which callers
// treat as "nothing to save".
func (b *Buffer) Snapshot() (note.Note, bool) {
	if b.state != Editing {
		return note.Note{}, false
	}
	if strings.TrimSpace(b.Title) == "" && strings.TrimSpace(b.Content) == "" {
		return note.Note{}, false
	}
	tags := make([]string, len(b.Tags))
	copy(tags, b.Tags)
	return note.Note{
		ID:      b.noteID,
		Title:   b.Title,
		Content: b.Content,
		Tags:    tags,
		Project: b.Project,
	}, true
}

// Dirty reports whether any staged field differs from the note loaded
// at Begin.
func (b *Buffer) Dirty() bool {
	if b.state != Editing {
		return false
	}
	if b.Title != b.base.Title || b.Content != b.base.Content || b.Project != b.base.Project {
		return true
	}
	if len(b.Tags) != len(b.base.Tags) {
		return true
	}
	for i, t := range b.Tags {
		if t != b.base.Tags[i] {
			return true
		}
	}
	return false
}

// Commit ends the editing session after a successful save.
func (b *Buffer) Commit() {
	b.reset()
}

// Cancel discards every staged field.
func (b *Buffer) Cancel() {
	b.reset()
}

func (b *Buffer) reset() {
	*b = Buffer{}
}
