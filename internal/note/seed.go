package note

import "time"

// Defaults returns the starter notes shown on first run. IDs use the
// same "n-<counter>" scheme the store assigns, so seeded and created
// notes share one namespace.
func Defaults(now time.Time) []Note {
	return []Note{
		{
			ID:    "n-3",
			Title: "Welcome to RippleNote",
			Content: `# Welcome

RippleNote keeps your notes in a two-pane workspace.

- Press **n** to create a note
- Press **/** to search
- Press **tab** to jump between the list and the editor

Markdown renders in read mode: **bold**, *italic*, ` + "`code`" + `, links and lists all work.`,
			Tags:      []string{"intro"},
			Project:   "Getting Started",
			CreatedAt: now,
		},
		{
			ID:    "n-2",
			Title: "Shopping List",
			Content: `# Shopping List

- Milk
- Eggs
- Bread
- Coffee`,
			Tags:      []string{"errands"},
			Project:   "Personal",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:    "n-1",
			Title: "Team Sync Notes",
			Content: `# Team Sync

## Attendees

## Agenda

## Action Items
- [ ] `,
			Tags:      []string{"meeting", "work"},
			Project:   "Work",
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}
