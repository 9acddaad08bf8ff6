// Package palette implements the command palette modal. It lists the
// registered commands with their key bindings and filters them as the
// user types.
package palette

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ripplenote/internal/keymap"
)

// maxVisibleEntries caps the list height inside the modal.
const maxVisibleEntries = 10

// Entry is one selectable row.
type Entry struct {
	CommandID   string
	Name        string
	Description string
	Key         string
	Context     string
	MatchRanges []MatchRange
}

// MatchRange marks a byte range of Name that matched the filter.
type MatchRange struct {
	Start int
	End   int
}

// CommandSelectedMsg is emitted when the user picks an entry.
type CommandSelectedMsg struct {
	CommandID string
}

// ClosedMsg is emitted when the palette is dismissed without a pick.
type ClosedMsg struct{}

// Model is the palette state.
type Model struct {
	textInput textinput.Model
	entries   []Entry
	filtered  []Entry
	cursor    int
	offset    int
	context   string
	width     int
	height    int
}

// New creates a closed, empty palette.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = ""
	ti.CharLimit = 64
	return Model{textInput: ti}
}

// Open resets the palette with the commands visible from the given
// context and focuses the input.
func (m Model) Open(reg *keymap.Registry, context string) Model {
	m.context = context
	m.entries = buildEntries(reg, context)
	m.filtered = m.entries
	m.cursor = 0
	m.offset = 0
	m.textInput.SetValue("")
	m.textInput.Focus()
	return m
}

// SetSize records the terminal size for layout.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

func buildEntries(reg *keymap.Registry, context string) []Entry {
	var entries []Entry
	for _, cmd := range reg.Commands() {
		if cmd.Context != context && cmd.Context != "global" && cmd.Context != "editor" {
			continue
		}
		key := ""
		if keys := reg.KeysForCommand(cmd.ID, context); len(keys) > 0 {
			key = keys[0]
		}
		entries = append(entries, Entry{
			CommandID:   cmd.ID,
			Name:        cmd.Name,
			Description: cmd.Description,
			Key:         key,
			Context:     cmd.Context,
		})
	}
	return entries
}

// Update handles palette input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return ClosedMsg{} }
	case "enter":
		if m.cursor < len(m.filtered) {
			id := m.filtered[m.cursor].CommandID
			return m, func() tea.Msg { return CommandSelectedMsg{CommandID: id} }
		}
		return m, nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *Model) refilter() {
	query := strings.ToLower(strings.TrimSpace(m.textInput.Value()))
	if query == "" {
		m.filtered = m.entries
	} else {
		var filtered []Entry
		for _, e := range m.entries {
			lower := strings.ToLower(e.Name)
			if idx := strings.Index(lower, query); idx >= 0 {
				e.MatchRanges = []MatchRange{{Start: idx, End: idx + len(query)}}
				filtered = append(filtered, e)
			} else if strings.Contains(strings.ToLower(e.Description), query) {
				e.MatchRanges = nil
				filtered = append(filtered, e)
			}
		}
		m.filtered = filtered
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	m.offset = 0
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleEntries {
		m.offset = m.cursor - maxVisibleEntries + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
