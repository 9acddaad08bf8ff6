package collection

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/marcus/ripplenote/internal/note"
)

// SortOrder selects how a filtered view is ordered.
type SortOrder int

const (
	SortNewest SortOrder = iota
	SortOldest
	SortTitle
)

// String returns the display name for the sort order.
func (o SortOrder) String() string {
	switch o {
	case SortOldest:
		return "oldest"
	case SortTitle:
		return "title"
	default:
		return "newest"
	}
}

// ParseSortOrder maps a stored name back to a SortOrder. Unknown names
// fall back to newest.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "oldest":
		return SortOldest
	case "title":
		return SortTitle
	default:
		return SortNewest
	}
}

// Query describes a derived view over the canonical list. All filters
// compose with AND; empty fields match everything.
type Query struct {
	Search  string // case-insensitive substring over title, content, project, tags
	Project string // exact project match
	Tag     string // exact tag membership, case-sensitive
	Sort    SortOrder
}

// IsZero reports whether the query has no active filters and the
// default sort.
func (q Query) IsZero() bool {
	return q.Search == "" && q.Project == "" && q.Tag == "" && q.Sort == SortNewest
}

// titleCollator compares titles with locale rules, ignoring case.
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// Apply filters and sorts notes into a fresh slice. The input is never
// mutated, and equal inputs always produce equal output: the sort is
// stable, so ties keep the canonical order.
func Apply(notes []note.Note, q Query) []note.Note {
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if matches(n, q) {
			out = append(out, n)
		}
	}

	switch q.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

func matches(n note.Note, q Query) bool {
	if q.Project != "" && n.Project != q.Project {
		return false
	}
	if q.Tag != "" && !n.HasTag(q.Tag) {
		return false
	}
	if q.Search != "" && !matchesSearch(n, q.Search) {
		return false
	}
	return true
}

func matchesSearch(n note.Note, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Project), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
