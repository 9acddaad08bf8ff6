package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ripplenote/internal/collection"
	"github.com/marcus/ripplenote/internal/config"
	"github.com/marcus/ripplenote/internal/keymap"
	"github.com/marcus/ripplenote/internal/msg"
	"github.com/marcus/ripplenote/internal/note"
	"github.com/marcus/ripplenote/internal/palette"
	"github.com/marcus/ripplenote/internal/state"
)

// Update handles all messages.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.palette = m.palette.SetSize(message.Width, message.Height)
		m.editor.setSize(m.editorWidth(), m.contentHeight())
		m.clampListScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case msg.ToastMsg:
		duration := message.Duration
		if duration == 0 {
			duration = toastDuration
		}
		m.statusMessage = message.Message
		m.statusIsError = message.IsError
		m.statusExpiry = time.Now().Add(duration)
		return m, tea.Tick(duration, func(time.Time) tea.Msg {
			return toastExpiredMsg{}
		})

	case toastExpiredMsg:
		if time.Now().After(m.statusExpiry) {
			m.statusMessage = ""
		}
		return m, nil

	case keymap.ExecMsg:
		return m.dispatchCommand(message.CommandID)

	case palette.CommandSelectedMsg:
		m.showPalette = false
		return m.dispatchCommand(message.CommandID)

	case palette.ClosedMsg:
		m.showPalette = false
		return m, nil

	case config.ReloadedMsg:
		m.applyConfig(message.Config)
		cmds := []tea.Cmd{msg.ShowToast("Config reloaded", toastDuration)}
		if m.watcher != nil {
			cmds = append(cmds, m.watcher.WaitForReload())
		}
		return m, tea.Batch(cmds...)

	case autoSaveTickMsg:
		return m.handleAutoSaveTick(message)
	}

	// Non-key messages, cursor blinks mostly, still reach the
	// focused inputs.
	var cmd tea.Cmd
	switch {
	case m.showPalette:
		m.palette, cmd = m.palette.Update(teaMsg)
	case m.focus == FocusEditor:
		cmd = m.editor.forward(teaMsg)
	case m.searching:
		m.searchInput, cmd = m.searchInput.Update(teaMsg)
	}
	return m, cmd
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.showFooter = cfg.UI.ShowFooter
	for key, cmdID := range cfg.Keymap.Overrides {
		m.registry.SetUserOverride(key, cmdID)
	}
	m.editor.applyConfig(cfg)
	m.clampListScroll()
}

func (m Model) handleKeyMsg(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The quit confirm outranks everything, including the editor.
	if m.showQuitConfirm {
		return m.handleQuitConfirmKey(key)
	}

	if m.showPalette {
		if key.String() == "ctrl+k" {
			m.showPalette = false
			return m, nil
		}
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(key)
		return m, cmd
	}

	if m.showDiscardConfirm {
		return m.handleDiscardConfirmKey(key)
	}

	if m.focus == FocusEditor {
		return m.handleEditorKey(key)
	}

	if m.searching {
		return m.handleSearchKey(key)
	}

	switch m.activeModal() {
	case ModalDeleteConfirm:
		return m.handleDeleteConfirmKey(key)
	case ModalTemplatePicker:
		item, chosen, cmd := pickerHandleKey(&m.templatePicker, key)
		if chosen {
			return m.chooseTemplate(item)
		}
		return m, cmd
	case ModalProjectPicker:
		item, chosen, cmd := pickerHandleKey(&m.projectPicker, key)
		if chosen {
			return m.chooseProjectFilter(item)
		}
		return m, cmd
	case ModalTagPicker:
		item, chosen, cmd := pickerHandleKey(&m.tagPicker, key)
		if chosen {
			return m.chooseTagFilter(item)
		}
		return m, cmd
	case ModalSortPicker:
		item, chosen, cmd := pickerHandleKey(&m.sortPicker, key)
		if chosen {
			return m.chooseSortOrder(item)
		}
		return m, cmd
	case ModalHelp:
		return m.handleHelpKey(key)
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		m.showQuitConfirm = true
		return m, nil
	case "esc":
		if !m.query.IsZero() {
			return m.dispatchCommand("filter.clear")
		}
		return m, nil
	}

	if cmd := m.registry.Handle(key, m.keyContext()); cmd != nil {
		return m, cmd
	}
	return m, nil
}

func (m Model) handleQuitConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y", "enter":
		return m, tea.Quit
	case "n", "N", "esc", "q":
		m.showQuitConfirm = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleDeleteConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y", "enter":
		title := m.deleteTargetTitle
		m.store.Delete(m.deleteTargetID)
		m.deleteTargetID = ""
		m.deleteTargetTitle = ""
		m.refreshVisible()
		return m, msg.ShowToast(fmt.Sprintf("Deleted %q", title), toastDuration)
	case "n", "N", "esc", "q":
		m.deleteTargetID = ""
		m.deleteTargetTitle = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleDiscardConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y", "enter":
		m.showDiscardConfirm = false
		return m.cancelDraft()
	case "n", "N", "esc", "q":
		m.showDiscardConfirm = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleHelpKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q", "?":
		m.showHelp = false
		m.helpScroll = 0
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

// pickerHandleKey drives a picker modal in place. chosen is true when
// the user confirmed the returned item.
func pickerHandleKey(p *picker, key tea.KeyMsg) (item string, chosen bool, cmd tea.Cmd) {
	switch key.String() {
	case "esc":
		p.reset()
		return "", false, nil
	case "enter":
		item, ok := p.selected()
		p.reset()
		return item, ok, nil
	case "up", "ctrl+p":
		p.moveCursor(-1)
		return "", false, nil
	case "down", "ctrl+n":
		p.moveCursor(1)
		return "", false, nil
	}

	if p.filterable {
		p.input, cmd = p.input.Update(key)
		p.refilter()
		return "", false, cmd
	}

	switch key.String() {
	case "j":
		p.moveCursor(1)
	case "k":
		p.moveCursor(-1)
	}
	return "", false, nil
}

func (m Model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.query.Search = m.savedSearch
		m.refreshVisible()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(key)
	m.query.Search = m.searchInput.Value()
	m.refreshVisible()
	return m, cmd
}

// dispatchCommand executes a command by ID. Both key bindings and the
// palette land here.
func (m Model) dispatchCommand(id string) (tea.Model, tea.Cmd) {
	switch id {
	case "app.quit":
		m.showQuitConfirm = true
	case "app.help":
		m.showHelp = true
		m.helpScroll = 0
	case "app.palette":
		m.showPalette = true
		m.palette = m.palette.Open(m.registry, m.keyContext())
	case "app.toggle-footer":
		m.showFooter = !m.showFooter
	case "app.switch-pane":
		if m.focus == FocusList {
			m.focus = FocusPreview
		} else {
			m.focus = FocusList
		}

	case "list.cursor-down":
		m.moveCursor(1)
	case "list.cursor-up":
		m.moveCursor(-1)
	case "list.cursor-top":
		m.setCursor(0)
	case "list.cursor-bottom":
		m.setCursor(len(m.visible) - 1)
	case "list.narrow":
		m.resizeListPane(-2)
	case "list.widen":
		m.resizeListPane(2)

	case "note.new":
		items := make([]string, 0, len(note.Templates()))
		for _, tpl := range note.Templates() {
			items = append(items, tpl.Name)
		}
		m.templatePicker = newPicker("New Note", items, false)
	case "note.edit":
		n, ok := m.store.Selected()
		if !ok {
			return m, msg.ShowErrorToast("No note selected", toastDuration)
		}
		cmd := m.openEditor(n)
		return m, cmd
	case "note.delete":
		n, ok := m.store.Selected()
		if !ok {
			return m, msg.ShowErrorToast("No note selected", toastDuration)
		}
		m.deleteTargetID = n.ID
		m.deleteTargetTitle = n.DisplayTitle()
	case "note.yank-content":
		return m, m.yankSelected(func(n note.Note) string { return n.Content }, "Content copied")
	case "note.yank-title":
		return m, m.yankSelected(func(n note.Note) string { return n.DisplayTitle() }, "Title copied")

	case "filter.search":
		m.searching = true
		m.savedSearch = m.query.Search
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.CursorEnd()
		cmd := m.searchInput.Focus()
		return m, cmd
	case "filter.project":
		projects := collection.Projects(m.store.All())
		if len(projects) == 0 {
			return m, msg.ShowToast("No projects yet", toastDuration)
		}
		m.projectPicker = newPicker("Filter by Project", projects, true)
	case "filter.tag":
		tags := collection.Tags(m.store.All())
		if len(tags) == 0 {
			return m, msg.ShowToast("No tags yet", toastDuration)
		}
		m.tagPicker = newPicker("Filter by Tag", tags, true)
	case "filter.sort":
		m.sortPicker = newPicker("Sort Order", []string{"newest", "oldest", "title"}, false)
		for i, item := range m.sortPicker.items {
			if item == m.query.Sort.String() {
				m.sortPicker.cursor = i
			}
		}
	case "filter.clear":
		m.query = collection.Query{Sort: m.query.Sort}
		m.searchInput.SetValue("")
		state.SetProjectFilter("")
		m.refreshVisible()
		return m, msg.ShowToast("Filters cleared", toastDuration)

	case "preview.scroll-down":
		m.previewScroll++
	case "preview.scroll-up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "preview.scroll-top":
		m.previewScroll = 0
	case "preview.scroll-bottom":
		m.previewScroll = 1 << 20
	case "preview.page-down":
		m.previewScroll += m.contentHeight() / 2
	case "preview.page-up":
		m.previewScroll -= m.contentHeight() / 2
		if m.previewScroll < 0 {
			m.previewScroll = 0
		}
	case "preview.toggle-wrap":
		m.wrapEnabled = !m.wrapEnabled
		state.SetWrapEnabled(m.wrapEnabled)

	case "editor.save", "editor.cancel":
		// Editor shortcuts only act while the editor has focus.
		return m, nil
	}
	return m, nil
}

func (m Model) yankSelected(extract func(note.Note) string, okMessage string) tea.Cmd {
	n, ok := m.store.Selected()
	if !ok {
		return msg.ShowErrorToast("No note selected", toastDuration)
	}
	if err := clipboard.WriteAll(extract(n)); err != nil {
		return msg.ShowErrorToast("Clipboard unavailable", toastDuration)
	}
	return msg.ShowToast(okMessage, toastDuration)
}

func (m Model) chooseTemplate(name string) (tea.Model, tea.Cmd) {
	for _, tpl := range note.Templates() {
		if tpl.Name == name {
			cmd := m.openEditorNew(tpl)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) chooseProjectFilter(project string) (tea.Model, tea.Cmd) {
	m.query.Project = project
	state.SetProjectFilter(project)
	m.refreshVisible()
	return m, msg.ShowToast(fmt.Sprintf("Project: %s", project), toastDuration)
}

func (m Model) chooseTagFilter(tag string) (tea.Model, tea.Cmd) {
	m.query.Tag = tag
	m.refreshVisible()
	return m, msg.ShowToast(fmt.Sprintf("Tag: #%s", tag), toastDuration)
}

func (m Model) chooseSortOrder(order string) (tea.Model, tea.Cmd) {
	m.query.Sort = collection.ParseSortOrder(order)
	state.SetSortOrder(order)
	m.refreshVisible()
	return m, msg.ShowToast(fmt.Sprintf("Sorted by %s", order), toastDuration)
}

// filterItems returns the items whose lowercase form contains the
// lowercase query.
func filterItems(items []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []string
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), query) {
			out = append(out, item)
		}
	}
	return out
}
