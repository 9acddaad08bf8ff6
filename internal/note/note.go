// Package note defines the note model shared by the store, the view
// engine, and the editor.
package note

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Note is a single markdown note. CreatedAt may be the zero value for
// notes imported without a timestamp; sorting treats those as oldest.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	Project   string
	CreatedAt time.Time
}

// Clone returns a deep copy so store mutations never alias notes held
// by callers.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = make([]string, len(n.Tags))
		copy(c.Tags, n.Tags)
	}
	return c
}

// HasTag reports whether the note carries the tag. Matching is
// case-sensitive.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayTitle returns the title, or the first non-empty content line
// when the title is blank.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) != "" {
		return n.Title
	}
	for _, line := range strings.Split(n.Content, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return "Untitled"
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount counts runes, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
