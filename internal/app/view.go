package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/ripplenote/internal/note"
	"github.com/marcus/ripplenote/internal/styles"
	"github.com/marcus/ripplenote/internal/ui"
)

const (
	headerHeight = 2
	footerHeight = 1
	minWidth     = 80
	minHeight    = 24
)

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		warning := styles.StatusError.Render(
			fmt.Sprintf("Terminal too small (%dx%d). Minimum is %dx%d.", m.width, m.height, minWidth, minHeight))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, warning)
	}

	sections := []string{
		m.renderHeader(),
		m.renderContent(),
	}
	if m.showFooter {
		sections = append(sections, m.renderFooter())
	}
	base := lipgloss.JoinVertical(lipgloss.Left, sections...)

	switch m.activeModal() {
	case ModalQuitConfirm:
		return ui.OverlayModal(base, m.renderQuitConfirm(), m.width, m.height)
	case ModalPalette:
		return ui.OverlayModal(base, m.palette.View(), m.width, m.height)
	case ModalDiscardConfirm:
		return ui.OverlayModal(base, m.renderDiscardConfirm(), m.width, m.height)
	case ModalDeleteConfirm:
		return ui.OverlayModal(base, m.renderDeleteConfirm(), m.width, m.height)
	case ModalSortPicker:
		return ui.OverlayModal(base, m.renderPicker(m.sortPicker), m.width, m.height)
	case ModalTagPicker:
		return ui.OverlayModal(base, m.renderPicker(m.tagPicker), m.width, m.height)
	case ModalProjectPicker:
		return ui.OverlayModal(base, m.renderPicker(m.projectPicker), m.width, m.height)
	case ModalTemplatePicker:
		return ui.OverlayModal(base, m.renderPicker(m.templatePicker), m.width, m.height)
	case ModalHelp:
		return ui.OverlayModal(base, m.renderHelp(), m.width, m.height)
	}
	return base
}

func (m Model) listWidth() int {
	w := m.listPaneWidth
	if w > m.width/2 {
		w = m.width / 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) editorWidth() int {
	return m.width - m.listWidth()
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight
	if m.showFooter {
		h -= footerHeight
	}
	return h
}

// listRows is the number of note rows visible in the list pane. The
// search input takes one of them while it is open.
func (m Model) listRows() int {
	rows := m.contentHeight() - 3
	if m.searching {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) renderHeader() string {
	title := styles.BarTitle.Render("ripplenote")
	count := styles.BarText.Render(fmt.Sprintf(" %d notes", m.store.Len()))

	var chips []string
	if m.query.Search != "" {
		chips = append(chips, styles.FilterChip.Render("/"+m.query.Search))
	}
	if m.query.Project != "" {
		chips = append(chips, styles.FilterChip.Render("@"+m.query.Project))
	}
	if m.query.Tag != "" {
		chips = append(chips, styles.FilterChip.Render("#"+m.query.Tag))
	}
	chips = append(chips, styles.BarText.Render("sort: "+m.query.Sort.String()))

	left := title + count
	right := strings.Join(chips, " ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return styles.Header.Width(m.width).Render(" "+bar) + "\n"
}

func (m Model) renderContent() string {
	left := m.renderListPane()
	var right string
	if m.focus == FocusEditor {
		right = m.renderEditor(m.editorWidth(), m.contentHeight())
	} else {
		right = m.renderPreviewPane()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderListPane() string {
	width := m.listWidth()
	innerWidth := width - 4

	var b strings.Builder
	b.WriteString(styles.PanelHeader.Render("Notes"))
	b.WriteString(styles.Muted.Render(fmt.Sprintf(" %d/%d", len(m.visible), m.store.Len())))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString("\n")
		if m.query.IsZero() {
			b.WriteString(styles.Muted.Render("No notes yet. Press n to create one."))
		} else {
			b.WriteString(styles.Muted.Render("No notes match the filters."))
		}
	} else {
		end := m.scroll + m.listRows()
		if end > len(m.visible) {
			end = len(m.visible)
		}
		for i := m.scroll; i < end; i++ {
			b.WriteString(m.renderListRow(m.visible[i], i == m.cursor, innerWidth))
			b.WriteString("\n")
		}
		if end < len(m.visible) {
			b.WriteString(styles.Subtle.Render(fmt.Sprintf("  ↓ %d more", len(m.visible)-end)))
		}
	}

	panel := styles.PanelInactive
	if m.focus == FocusList {
		panel = styles.PanelActive
	}
	return panel.Width(width - 2).Height(m.contentHeight() - 2).Render(b.String())
}

// renderListRow renders one note as a single line so the scroll math
// stays in rows.
func (m Model) renderListRow(n note.Note, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = styles.ListCursor.Render("> ")
	}

	date := n.CreatedAt.Format(m.cfg.UI.DateFormat)
	dateWidth := runewidth.StringWidth(date)

	var meta strings.Builder
	if n.Project != "" {
		meta.WriteString(" ")
		meta.WriteString(styles.ProjectLabel.Render("@" + n.Project))
	}
	for _, tag := range n.Tags {
		meta.WriteString(" ")
		meta.WriteString(styles.TagBadge(tag))
	}

	titleWidth := width - dateWidth - 3
	if titleWidth < 8 {
		titleWidth = 8
	}
	left := runewidth.Truncate(n.DisplayTitle(), titleWidth, "…") + meta.String()
	left = ansi.Truncate(left, titleWidth, "…")
	pad := titleWidth - ansi.StringWidth(left)
	if pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	line := fmt.Sprintf("%s %s", left, styles.Subtle.Render(date))
	if selected {
		line = styles.ListItemSelected.Render(line)
	} else {
		line = styles.ListItemNormal.Render(line)
	}
	return marker + line
}

func (m Model) renderPreviewPane() string {
	width := m.editorWidth()
	height := m.contentHeight()

	var b strings.Builder
	n, ok := m.store.Selected()
	if !ok {
		b.WriteString(styles.Muted.Render("Select a note to preview it."))
	} else {
		b.WriteString(styles.Title.Render(n.DisplayTitle()))
		b.WriteString("\n")
		meta := []string{styles.Subtle.Render(n.CreatedAt.Format(m.cfg.UI.DateFormat))}
		if n.Project != "" {
			meta = append(meta, styles.ProjectLabel.Render("@"+n.Project))
		}
		for _, tag := range n.Tags {
			meta = append(meta, styles.TagBadge(tag))
		}
		b.WriteString(strings.Join(meta, " "))
		b.WriteString("\n\n")

		lines := m.renderMarkdown(n.Content, width-6)
		b.WriteString(m.scrollLines(lines, height-6))
	}

	panel := styles.PanelInactive
	if m.focus == FocusPreview {
		panel = styles.PanelActive
	}
	return panel.Width(width - 2).Height(height - 2).Render(b.String())
}

// renderMarkdown renders note content through glamour, falling back to
// raw text when rendering fails. Wrap can be toggled at runtime.
func (m Model) renderMarkdown(content string, width int) []string {
	if !m.wrapEnabled {
		width = 0
	}
	if m.renderer == nil {
		return strings.Split(content, "\n")
	}
	return m.renderer.Render(content, width)
}

// scrollLines returns at most height lines starting at the preview
// scroll offset.
func (m Model) scrollLines(lines []string, height int) string {
	if height < 1 {
		height = 1
	}
	offset := m.previewScroll
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[offset:end]

	var b strings.Builder
	b.WriteString(strings.Join(visible, "\n"))
	if end < len(lines) {
		b.WriteString("\n")
		b.WriteString(styles.Subtle.Render(fmt.Sprintf("↓ %d more lines", len(lines)-end)))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	if m.statusMessage != "" {
		style := styles.ToastSuccess
		if m.statusIsError {
			style = styles.ToastError
		}
		return styles.Footer.Width(m.width).Render(" " + style.Render(m.statusMessage))
	}
	return styles.Footer.Width(m.width).Render(m.renderHintLine())
}

type hint struct {
	key   string
	label string
}

func (m Model) footerHints() []hint {
	switch {
	case m.focus == FocusEditor && m.editor.previewMode:
		return []hint{{"j/k", "scroll"}, {"ctrl+s", "save"}, {"esc", "edit"}}
	case m.focus == FocusEditor:
		return []hint{
			{"ctrl+s", "save"}, {"esc", "discard"}, {"tab", "next field"},
			{"ctrl+r", "preview"}, {"ctrl+b", "bold"}, {"ctrl+e", "italic"},
		}
	case m.searching:
		return []hint{{"enter", "apply"}, {"esc", "cancel"}}
	case m.focus == FocusPreview:
		return []hint{
			{"j/k", "scroll"}, {"e", "edit"}, {"w", "wrap"},
			{"tab", "list"}, {"?", "help"}, {"q", "quit"},
		}
	default:
		return []hint{
			{"j/k", "move"}, {"n", "new"}, {"e", "edit"}, {"d", "delete"},
			{"/", "search"}, {"t", "tag"}, {"p", "project"}, {"s", "sort"},
			{"?", "help"}, {"q", "quit"},
		}
	}
}

// renderHintLine renders footer hints, dropping trailing hints that do
// not fit.
func (m Model) renderHintLine() string {
	var b strings.Builder
	b.WriteString(" ")
	used := 1
	for _, h := range m.footerHints() {
		chip := styles.KeyHint.Render(h.key) + " " + h.label
		chipWidth := lipgloss.Width(chip) + 2
		if used+chipWidth > m.width {
			break
		}
		if used > 1 {
			b.WriteString("  ")
		}
		b.WriteString(chip)
		used += chipWidth
	}
	return b.String()
}

func (m Model) renderQuitConfirm() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Quit ripplenote?"))
	b.WriteString("\n\n")
	b.WriteString(styles.ButtonDangerFocused.Render("Quit (y)"))
	b.WriteString("  ")
	b.WriteString(styles.Button.Render("Cancel (n)"))
	return styles.ModalBox.Render(b.String())
}

func (m Model) renderDiscardConfirm() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Discard unsaved changes?"))
	b.WriteString("\n\n")
	b.WriteString(styles.ButtonDangerFocused.Render("Discard (y)"))
	b.WriteString("  ")
	b.WriteString(styles.Button.Render("Keep editing (n)"))
	return styles.ModalBox.Render(b.String())
}

func (m Model) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Delete note?"))
	b.WriteString("\n")
	b.WriteString(ansi.Truncate(styles.Subtitle.Render(m.deleteTargetTitle), 40, "…"))
	b.WriteString("\n\n")
	b.WriteString(styles.ButtonDangerFocused.Render("Delete (y)"))
	b.WriteString("  ")
	b.WriteString(styles.Button.Render("Cancel (n)"))
	return styles.ModalBox.Render(b.String())
}

func (m Model) renderPicker(p picker) string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render(p.title))
	b.WriteString("\n")

	if p.filterable {
		b.WriteString(p.input.View())
		b.WriteString("\n\n")
	}

	if len(p.filtered) == 0 {
		b.WriteString(styles.Muted.Render("No matches"))
	}

	end := p.scroll + pickerMaxVisible
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	if p.scroll > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↑ %d more", p.scroll)))
		b.WriteString("\n")
	}
	for i := p.scroll; i < end; i++ {
		item := runewidth.Truncate(p.filtered[i], 36, "…")
		if i == p.cursor {
			b.WriteString(styles.ListCursor.Render("> "))
			b.WriteString(styles.ListItemSelected.Render(item))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.ListItemNormal.Render(item))
		}
		b.WriteString("\n")
	}
	if end < len(p.filtered) {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↓ %d more", len(p.filtered)-end)))
	}

	return styles.ModalBox.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	bindings := m.registry.BindingsForContext(m.keyContext())
	maxRows := m.contentHeight() - 8
	if maxRows < 5 {
		maxRows = 5
	}
	offset := m.helpScroll
	if offset > len(bindings)-maxRows {
		offset = len(bindings) - maxRows
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + maxRows
	if end > len(bindings) {
		end = len(bindings)
	}
	if offset > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↑ %d more", offset)))
		b.WriteString("\n")
	}
	for _, binding := range bindings[offset:end] {
		cmd, ok := m.registry.GetCommand(binding.Command)
		if !ok {
			continue
		}
		key := styles.KeyHint.Render(binding.Key)
		keyWidth := lipgloss.Width(key)
		if keyWidth < 12 {
			key += strings.Repeat(" ", 12-keyWidth)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", key, cmd.Name))
	}
	if end < len(bindings) {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("↓ %d more", len(bindings)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("esc to close"))
	return styles.ModalBox.Render(b.String())
}
