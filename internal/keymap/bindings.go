package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: "app.quit", Context: "global"},
		{Key: "ctrl+c", Command: "app.quit", Context: "global"},
		{Key: "?", Command: "app.help", Context: "global"},
		{Key: "ctrl+k", Command: "app.palette", Context: "global"},
		{Key: "ctrl+h", Command: "app.toggle-footer", Context: "global"},
		{Key: "tab", Command: "app.switch-pane", Context: "global"},

		// Note list context
		{Key: "j", Command: "list.cursor-down", Context: "list"},
		{Key: "down", Command: "list.cursor-down", Context: "list"},
		{Key: "k", Command: "list.cursor-up", Context: "list"},
		{Key: "up", Command: "list.cursor-up", Context: "list"},
		{Key: "g g", Command: "list.cursor-top", Context: "list"},
		{Key: "G", Command: "list.cursor-bottom", Context: "list"},
		{Key: "enter", Command: "note.edit", Context: "list"},
		{Key: "e", Command: "note.edit", Context: "list"},
		{Key: "n", Command: "note.new", Context: "list"},
		{Key: "d", Command: "note.delete", Context: "list"},
		{Key: "y", Command: "note.yank-content", Context: "list"},
		{Key: "Y", Command: "note.yank-title", Context: "list"},
		{Key: "/", Command: "filter.search", Context: "list"},
		{Key: "t", Command: "filter.tag", Context: "list"},
		{Key: "p", Command: "filter.project", Context: "list"},
		{Key: "s", Command: "filter.sort", Context: "list"},
		{Key: "x", Command: "filter.clear", Context: "list"},
		{Key: "w", Command: "preview.toggle-wrap", Context: "list"},
		{Key: "<", Command: "list.narrow", Context: "list"},
		{Key: ">", Command: "list.widen", Context: "list"},

		// Preview pane context
		{Key: "j", Command: "preview.scroll-down", Context: "preview"},
		{Key: "down", Command: "preview.scroll-down", Context: "preview"},
		{Key: "k", Command: "preview.scroll-up", Context: "preview"},
		{Key: "up", Command: "preview.scroll-up", Context: "preview"},
		{Key: "g g", Command: "preview.scroll-top", Context: "preview"},
		{Key: "G", Command: "preview.scroll-bottom", Context: "preview"},
		{Key: "ctrl+d", Command: "preview.page-down", Context: "preview"},
		{Key: "ctrl+u", Command: "preview.page-up", Context: "preview"},
		{Key: "enter", Command: "note.edit", Context: "preview"},
		{Key: "e", Command: "note.edit", Context: "preview"},
		{Key: "h", Command: "app.switch-pane", Context: "preview"},
		{Key: "esc", Command: "app.switch-pane", Context: "preview"},
		{Key: "y", Command: "note.yank-content", Context: "preview"},
		{Key: "Y", Command: "note.yank-title", Context: "preview"},
		{Key: "w", Command: "preview.toggle-wrap", Context: "preview"},
	}
}

// DefaultCommands returns the command definitions the palette and help
// view list. Editor shortcuts are handled by the editor directly while
// its inputs have focus, so they appear here for discoverability only.
func DefaultCommands() []Command {
	return []Command{
		{ID: "app.quit", Name: "Quit", Description: "Exit the app", Context: "global"},
		{ID: "app.help", Name: "Help", Description: "Show keyboard shortcuts", Context: "global"},
		{ID: "app.palette", Name: "Command Palette", Description: "Open the command palette", Context: "global"},
		{ID: "app.toggle-footer", Name: "Toggle Footer", Description: "Show or hide the footer hints", Context: "global"},
		{ID: "app.switch-pane", Name: "Switch Pane", Description: "Move focus between list and preview", Context: "global"},

		{ID: "list.cursor-down", Name: "Next Note", Description: "Move the cursor down the list", Context: "list"},
		{ID: "list.cursor-up", Name: "Previous Note", Description: "Move the cursor up the list", Context: "list"},
		{ID: "list.cursor-top", Name: "First Note", Description: "Jump to the top of the list", Context: "list"},
		{ID: "list.cursor-bottom", Name: "Last Note", Description: "Jump to the bottom of the list", Context: "list"},
		{ID: "list.narrow", Name: "Narrow List", Description: "Shrink the list pane", Context: "list"},
		{ID: "list.widen", Name: "Widen List", Description: "Grow the list pane", Context: "list"},

		{ID: "note.new", Name: "New Note", Description: "Create a note from a template", Context: "list"},
		{ID: "note.edit", Name: "Edit Note", Description: "Open the selected note in the editor", Context: "list"},
		{ID: "note.delete", Name: "Delete Note", Description: "Delete the selected note", Context: "list"},
		{ID: "note.yank-content", Name: "Copy Note", Description: "Copy the note content to the clipboard", Context: "list"},
		{ID: "note.yank-title", Name: "Copy Title", Description: "Copy the note title to the clipboard", Context: "list"},

		{ID: "filter.search", Name: "Search Notes", Description: "Filter notes by text", Context: "list"},
		{ID: "filter.tag", Name: "Filter by Tag", Description: "Show notes with a tag", Context: "list"},
		{ID: "filter.project", Name: "Filter by Project", Description: "Show notes in a project", Context: "list"},
		{ID: "filter.sort", Name: "Change Sort", Description: "Pick the list sort order", Context: "list"},
		{ID: "filter.clear", Name: "Clear Filters", Description: "Remove all active filters", Context: "list"},

		{ID: "preview.scroll-down", Name: "Scroll Down", Description: "Scroll the preview down", Context: "preview"},
		{ID: "preview.scroll-up", Name: "Scroll Up", Description: "Scroll the preview up", Context: "preview"},
		{ID: "preview.toggle-wrap", Name: "Toggle Wrap", Description: "Toggle markdown word wrap in the preview", Context: "preview"},

		{ID: "editor.save", Name: "Save Note", Description: "Save the draft (ctrl+s in the editor)", Context: "editor"},
		{ID: "editor.cancel", Name: "Discard Draft", Description: "Leave the editor without saving (esc)", Context: "editor"},
	}
}

// RegisterDefaults registers all default bindings and commands with
// the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
	for _, cmd := range DefaultCommands() {
		r.RegisterCommand(cmd)
	}
}
