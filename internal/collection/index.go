package collection

import "github.com/marcus/ripplenote/internal/note"

// Projects returns the distinct non-empty project names in first-seen
// order over the canonical list.
func Projects(notes []note.Note) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range notes {
		if n.Project == "" || seen[n.Project] {
			continue
		}
		seen[n.Project] = true
		out = append(out, n.Project)
	}
	return out
}

// Tags returns the distinct tags in first-seen order. Distinctness is
// case-sensitive, matching the tag filter.
func Tags(notes []note.Note) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range notes {
		for _, t := range n.Tags {
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
