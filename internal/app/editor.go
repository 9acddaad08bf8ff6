package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ripplenote/internal/config"
	"github.com/marcus/ripplenote/internal/draft"
	"github.com/marcus/ripplenote/internal/msg"
	"github.com/marcus/ripplenote/internal/note"
	"github.com/marcus/ripplenote/internal/styles"
)

// Editor fields, in tab order.
const (
	fieldTitle = iota
	fieldContent
	fieldTags
	fieldProject
	fieldCount
)

// editorState holds the input widgets for the draft editor. The draft
// buffer owns the canonical values; the widgets mirror them.
type editorState struct {
	titleInput   textinput.Model
	content      textarea.Model
	tagsInput    textinput.Model
	projectInput textinput.Model

	field       int
	previewMode bool

	autoSaveSec int
	autoSaveSeq int

	width  int
	height int
}

type autoSaveTickMsg struct {
	seq int
}

func newEditorState(cfg *config.Config) editorState {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	tags := textinput.New()
	tags.Placeholder = "Add tag, enter to confirm"
	tags.Prompt = "# "
	tags.CharLimit = 64

	project := textinput.New()
	project.Placeholder = "Project"
	project.Prompt = "@ "
	project.CharLimit = 64

	e := editorState{
		titleInput:   title,
		content:      ta,
		tagsInput:    tags,
		projectInput: project,
	}
	e.applyConfig(cfg)
	return e
}

func (e *editorState) applyConfig(cfg *config.Config) {
	e.autoSaveSec = cfg.Editor.AutoSaveSec
}

func (e *editorState) setSize(width, height int) {
	e.width = width
	e.height = height
	contentHeight := height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	e.content.SetWidth(width - 4)
	e.content.SetHeight(contentHeight)
	e.titleInput.Width = width - 6
}

// forward passes a non-key message to the focused widget.
func (e *editorState) forward(teaMsg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch e.field {
	case fieldTitle:
		e.titleInput, cmd = e.titleInput.Update(teaMsg)
	case fieldContent:
		e.content, cmd = e.content.Update(teaMsg)
	case fieldTags:
		e.tagsInput, cmd = e.tagsInput.Update(teaMsg)
	case fieldProject:
		e.projectInput, cmd = e.projectInput.Update(teaMsg)
	}
	return cmd
}

// focusField moves widget focus to the given field.
func (e *editorState) focusField(field int) tea.Cmd {
	e.field = field
	e.titleInput.Blur()
	e.content.Blur()
	e.tagsInput.Blur()
	e.projectInput.Blur()

	switch field {
	case fieldTitle:
		return e.titleInput.Focus()
	case fieldContent:
		return e.content.Focus()
	case fieldTags:
		return e.tagsInput.Focus()
	case fieldProject:
		return e.projectInput.Focus()
	}
	return nil
}

// openEditor loads an existing note into the editor.
func (m *Model) openEditor(n note.Note) tea.Cmd {
	m.buffer.Begin(n)
	m.loadEditorWidgets()
	m.focus = FocusEditor
	m.editor.previewMode = false
	m.editor.setSize(m.editorWidth(), m.contentHeight())
	return m.editor.focusField(fieldContent)
}

// openEditorNew starts a draft from a template.
func (m *Model) openEditorNew(tpl note.Template) tea.Cmd {
	m.buffer.BeginNew(tpl.Title, tpl.Content)
	m.loadEditorWidgets()
	m.focus = FocusEditor
	m.editor.previewMode = false
	m.editor.setSize(m.editorWidth(), m.contentHeight())
	return m.editor.focusField(fieldTitle)
}

func (m *Model) loadEditorWidgets() {
	m.editor.titleInput.SetValue(m.buffer.Title)
	m.editor.titleInput.CursorEnd()
	m.editor.content.SetValue(m.buffer.Content)
	m.editor.tagsInput.SetValue("")
	m.editor.projectInput.SetValue(m.buffer.Project)
	m.editor.projectInput.CursorEnd()
}

func (m Model) handleEditorKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor.previewMode {
		return m.handleEditorPreviewKey(key)
	}

	switch key.String() {
	case "ctrl+s":
		return m.saveDraft()
	case "esc":
		// Dirty drafts need confirmation before they are thrown away.
		if m.buffer.Dirty() {
			m.showDiscardConfirm = true
			return m, nil
		}
		return m.cancelDraft()
	case "ctrl+r":
		m.editor.previewMode = true
		m.previewScroll = 0
		return m, nil
	case "tab":
		cmd := m.editor.focusField((m.editor.field + 1) % fieldCount)
		return m, cmd
	case "shift+tab":
		cmd := m.editor.focusField((m.editor.field + fieldCount - 1) % fieldCount)
		return m, cmd
	}

	if m.editor.field == fieldContent {
		switch key.String() {
		case "ctrl+b":
			m.insertMarkup(draft.MarkupBold)
			return m.scheduleAutoSave()
		case "ctrl+e":
			m.insertMarkup(draft.MarkupItalic)
			return m.scheduleAutoSave()
		case "ctrl+t":
			m.insertMarkup(draft.MarkupCode)
			return m.scheduleAutoSave()
		case "ctrl+g":
			m.insertMarkup(draft.MarkupHeading)
			return m.scheduleAutoSave()
		case "ctrl+l":
			m.insertMarkup(draft.MarkupList)
			return m.scheduleAutoSave()
		case "ctrl+o":
			m.insertMarkup(draft.MarkupLink)
			return m.scheduleAutoSave()
		}
	}

	if m.editor.field == fieldTags {
		switch key.String() {
		case "enter":
			m.buffer.AddTag(m.editor.tagsInput.Value())
			m.editor.tagsInput.SetValue("")
			return m, nil
		case "backspace":
			if m.editor.tagsInput.Value() == "" && len(m.buffer.Tags) > 0 {
				m.buffer.RemoveTag(len(m.buffer.Tags) - 1)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.editor.field {
	case fieldTitle:
		m.editor.titleInput, cmd = m.editor.titleInput.Update(key)
		m.buffer.SetTitle(m.editor.titleInput.Value())
	case fieldContent:
		m.editor.content, cmd = m.editor.content.Update(key)
		m.buffer.SetContent(m.editor.content.Value())
	case fieldTags:
		m.editor.tagsInput, cmd = m.editor.tagsInput.Update(key)
	case fieldProject:
		m.editor.projectInput, cmd = m.editor.projectInput.Update(key)
		m.buffer.SetProject(m.editor.projectInput.Value())
	}

	model, saveCmd := m.scheduleAutoSave()
	return model, tea.Batch(cmd, saveCmd)
}

func (m Model) handleEditorPreviewKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "ctrl+r", "q":
		m.editor.previewMode = false
		m.previewScroll = 0
	case "j", "down":
		m.previewScroll++
	case "k", "up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "ctrl+s":
		return m.saveDraft()
	}
	return m, nil
}

// insertMarkup inserts a markdown wrapper at the caret.
func (m *Model) insertMarkup(kind draft.MarkupKind) {
	before, placeholder, after := draft.Wrap(kind)
	m.editor.content.InsertString(before + placeholder + after)
	m.buffer.SetContent(m.editor.content.Value())
}

// scheduleAutoSave arms the debounced auto save for existing notes.
func (m Model) scheduleAutoSave() (tea.Model, tea.Cmd) {
	if m.editor.autoSaveSec <= 0 || m.buffer.NoteID() == "" || !m.buffer.Dirty() {
		return m, nil
	}
	m.editor.autoSaveSeq++
	seq := m.editor.autoSaveSeq
	return m, tea.Tick(time.Duration(m.editor.autoSaveSec)*time.Second, func(time.Time) tea.Msg {
		return autoSaveTickMsg{seq: seq}
	})
}

func (m Model) handleAutoSaveTick(tick autoSaveTickMsg) (tea.Model, tea.Cmd) {
	// A newer edit re-armed the timer; this tick is stale.
	if tick.seq != m.editor.autoSaveSeq {
		return m, nil
	}
	if m.focus != FocusEditor || m.buffer.NoteID() == "" {
		return m, nil
	}
	snap, ok := m.buffer.Snapshot()
	if !ok {
		return m, nil
	}
	id := m.buffer.NoteID()
	m.store.Update(id, snap)
	if updated, found := m.store.Get(id); found {
		m.buffer.Begin(updated)
	}
	m.refreshVisible()
	return m, msg.ShowToast("Autosaved", time.Second)
}

func (m Model) saveDraft() (tea.Model, tea.Cmd) {
	snap, ok := m.buffer.Snapshot()
	if !ok {
		return m, msg.ShowErrorToast("Nothing to save", toastDuration)
	}

	if id := m.buffer.NoteID(); id == "" {
		m.store.Create(snap)
	} else {
		m.store.Update(id, snap)
	}
	m.buffer.Commit()
	m.editor.autoSaveSeq++
	m.focus = FocusList
	m.refreshVisible()
	return m, msg.ShowToast("Saved", toastDuration)
}

func (m Model) cancelDraft() (tea.Model, tea.Cmd) {
	wasDirty := m.buffer.Dirty()
	m.buffer.Cancel()
	m.editor.autoSaveSeq++
	m.focus = FocusList
	m.refreshVisible()
	if wasDirty {
		return m, msg.ShowToast("Draft discarded", toastDuration)
	}
	return m, nil
}

// renderEditor draws the editor pane.
func (m Model) renderEditor(width, height int) string {
	if m.editor.previewMode {
		return m.renderEditorPreview(width, height)
	}

	var b strings.Builder

	header := styles.PanelHeader.Render("Edit Note")
	if m.buffer.NoteID() == "" {
		header = styles.PanelHeader.Render("New Note")
	}
	if m.buffer.Dirty() {
		header += styles.Muted.Render(" *")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(m.renderEditorField(fieldTitle, m.editor.titleInput.View()))
	b.WriteString("\n")
	b.WriteString(m.renderEditorField(fieldContent, m.editor.content.View()))
	b.WriteString("\n")

	var tagsRow strings.Builder
	for _, tag := range m.buffer.Tags {
		tagsRow.WriteString(styles.TagBadge(tag))
		tagsRow.WriteString(" ")
	}
	tagsRow.WriteString(m.editor.tagsInput.View())
	b.WriteString(m.renderEditorField(fieldTags, tagsRow.String()))
	b.WriteString("\n")
	b.WriteString(m.renderEditorField(fieldProject, m.editor.projectInput.View()))
	b.WriteString("\n")

	words := note.WordCount(m.buffer.Content)
	chars := note.CharCount(m.buffer.Content)
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%d words, %d chars", words, chars)))

	panel := styles.PanelActive.Width(width - 2).Height(height - 2)
	return panel.Render(b.String())
}

// renderEditorField marks the focused field with a colored bar.
func (m Model) renderEditorField(field int, content string) string {
	marker := "  "
	if m.editor.field == field {
		marker = styles.ListCursor.Render("┃ ")
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = marker + line
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEditorPreview(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render("Preview"))
	b.WriteString("  ")
	b.WriteString(styles.Muted.Render("ctrl+r to edit"))
	b.WriteString("\n\n")

	lines := m.renderMarkdown(m.buffer.Content, width-6)
	b.WriteString(m.scrollLines(lines, height-5))

	panel := styles.PanelActive.Width(width - 2).Height(height - 2)
	return panel.Render(b.String())
}
