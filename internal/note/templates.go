package note

// Template is a named starter body for the new-note dialog.
type Template struct {
	Name    string
	Title   string
	Content string
}

// Templates returns the built-in note templates in display order.
func Templates() []Template {
	return []Template{
		{
			Name: "Blank",
		},
		{
			Name:  "Shopping List",
			Title: "Shopping List",
			Content: `# Shopping List

- Item 1
- Item 2
- Item 3`,
		},
		{
			Name:  "Meeting Notes",
			Title: "Meeting Notes",
			Content: `# Meeting Notes

## Attendees

## Agenda

## Action Items
- [ ] `,
		},
		{
			Name:  "Brainstorm",
			Title: "Brainstorm",
			Content: `# Brainstorm

## Ideas
-

## Next Steps
- `,
		},
	}
}
