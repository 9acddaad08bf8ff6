// Package app wires the note store, derived view, draft editor, and
// modals into the root Bubble Tea model.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ripplenote/internal/collection"
	"github.com/marcus/ripplenote/internal/config"
	"github.com/marcus/ripplenote/internal/draft"
	"github.com/marcus/ripplenote/internal/keymap"
	"github.com/marcus/ripplenote/internal/markdown"
	"github.com/marcus/ripplenote/internal/note"
	"github.com/marcus/ripplenote/internal/palette"
	"github.com/marcus/ripplenote/internal/state"
)

// FocusPane identifies which pane has keyboard focus.
type FocusPane int

const (
	FocusList FocusPane = iota
	FocusPreview
	FocusEditor
)

// ModalKind identifies which modal is active. Higher values take
// priority when more than one is open.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalHelp
	ModalTemplatePicker
	ModalProjectPicker
	ModalTagPicker
	ModalSortPicker
	ModalDeleteConfirm
	ModalDiscardConfirm
	ModalPalette
	ModalQuitConfirm
)

// picker is a filterable single-select list used by the template,
// project, tag, and sort modals.
type picker struct {
	visible    bool
	title      string
	items      []string
	filtered   []string
	cursor     int
	scroll     int
	input      textinput.Model
	filterable bool
}

const pickerMaxVisible = 8

// toastDuration is the default time a footer toast stays visible.
const toastDuration = 2 * time.Second

// Model is the root application model.
type Model struct {
	store    *collection.Store
	buffer   draft.Buffer
	cfg      *config.Config
	watcher  *config.Watcher
	registry *keymap.Registry
	palette  palette.Model
	renderer *markdown.Renderer

	width  int
	height int
	ready  bool

	focus FocusPane

	// Derived list state. visible is the filtered and sorted
	// projection of the store; cursor indexes into it.
	visible []note.Note
	cursor  int
	scroll  int

	query       collection.Query
	searching   bool
	searchInput textinput.Model
	// savedSearch restores the query when a live search is cancelled.
	savedSearch string

	previewScroll int
	wrapEnabled   bool
	listPaneWidth int

	editor editorState

	showPalette        bool
	showHelp           bool
	showQuitConfirm    bool
	showDiscardConfirm bool
	helpScroll         int

	deleteTargetID    string
	deleteTargetTitle string

	templatePicker picker
	projectPicker  picker
	tagPicker      picker
	sortPicker     picker

	showFooter bool

	statusMessage string
	statusIsError bool
	statusExpiry  time.Time
}

// Options configures the root model.
type Options struct {
	Config  *config.Config
	Watcher *config.Watcher
	Seed    []note.Note
}

// New creates the root model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	seed := opts.Seed
	if seed == nil {
		seed = note.Defaults(time.Now())
	}
	store := collection.New(collection.WithSeed(seed))

	registry := keymap.NewRegistry()
	keymap.RegisterDefaults(registry)
	for key, cmdID := range cfg.Keymap.Overrides {
		registry.SetUserOverride(key, cmdID)
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search notes..."
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 128

	m := Model{
		store:       store,
		cfg:         cfg,
		watcher:     opts.Watcher,
		registry:    registry,
		palette:     palette.New(),
		searchInput: searchInput,
		editor:      newEditorState(cfg),
		showFooter:  cfg.UI.ShowFooter,
		wrapEnabled: state.GetWrapEnabled(),
	}

	// Rendering falls back to raw text if glamour fails to build.
	if r, err := markdown.New(80); err == nil {
		m.renderer = r
	}

	m.listPaneWidth = state.GetListWidth()
	if m.listPaneWidth == 0 {
		m.listPaneWidth = cfg.UI.ListWidth
	}

	m.query.Sort = collection.ParseSortOrder(state.GetSortOrder())
	m.query.Project = state.GetProjectFilter()
	m.refreshVisible()
	return m
}

// Init starts background listeners.
func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.WaitForReload()
	}
	return nil
}

// Store exposes the note store for tests.
func (m Model) Store() *collection.Store {
	return m.store
}

// Visible returns the current filtered projection.
func (m Model) Visible() []note.Note {
	return m.visible
}

// activeModal returns the highest-priority open modal.
func (m Model) activeModal() ModalKind {
	switch {
	case m.showQuitConfirm:
		return ModalQuitConfirm
	case m.showPalette:
		return ModalPalette
	case m.showDiscardConfirm:
		return ModalDiscardConfirm
	case m.deleteTargetID != "":
		return ModalDeleteConfirm
	case m.sortPicker.visible:
		return ModalSortPicker
	case m.tagPicker.visible:
		return ModalTagPicker
	case m.projectPicker.visible:
		return ModalProjectPicker
	case m.templatePicker.visible:
		return ModalTemplatePicker
	case m.showHelp:
		return ModalHelp
	default:
		return ModalNone
	}
}

// keyContext names the context used for keymap lookup.
func (m Model) keyContext() string {
	switch m.focus {
	case FocusPreview:
		return "preview"
	default:
		return "list"
	}
}

// refreshVisible recomputes the filtered projection and keeps the
// cursor on the selected note. When the selection is filtered out it
// fails over to the first visible note so the highlighted row and the
// preview always agree.
func (m *Model) refreshVisible() {
	m.visible = collection.Apply(m.store.All(), m.query)

	m.cursor = 0
	found := false
	if id := m.store.SelectedID(); id != "" {
		for i, n := range m.visible {
			if n.ID == id {
				m.cursor = i
				found = true
				break
			}
		}
	}
	if !found && len(m.visible) > 0 {
		m.store.Select(m.visible[0].ID)
	}
	m.clampListScroll()
}

func (m *Model) clampListScroll() {
	maxVisible := m.listRows()
	if m.cursor < m.scroll+m.cfg.UI.ScrollOff {
		m.scroll = m.cursor - m.cfg.UI.ScrollOff
	}
	if m.cursor >= m.scroll+maxVisible-m.cfg.UI.ScrollOff {
		m.scroll = m.cursor - maxVisible + 1 + m.cfg.UI.ScrollOff
	}
	if m.scroll > len(m.visible)-maxVisible {
		m.scroll = len(m.visible) - maxVisible
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// resizeListPane adjusts and persists the list pane width.
func (m *Model) resizeListPane(delta int) {
	w := m.listPaneWidth + delta
	if w < 20 {
		w = 20
	}
	if m.width > 0 && w > m.width/2 {
		w = m.width / 2
	}
	m.listPaneWidth = w
	state.SetListWidth(w)
	m.editor.setSize(m.editorWidth(), m.contentHeight())
}

// moveCursor moves the list cursor and selects the note under it.
func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	m.store.Select(m.visible[m.cursor].ID)
	m.previewScroll = 0
	m.clampListScroll()
}

func (m *Model) setCursor(idx int) {
	if len(m.visible) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.visible) {
		idx = len(m.visible) - 1
	}
	m.cursor = idx
	m.store.Select(m.visible[m.cursor].ID)
	m.previewScroll = 0
	m.clampListScroll()
}

type toastExpiredMsg struct{}

// newPicker builds a picker modal.
func newPicker(title string, items []string, filterable bool) picker {
	p := picker{
		visible:    true,
		title:      title,
		items:      items,
		filtered:   items,
		filterable: filterable,
	}
	if filterable {
		ti := textinput.New()
		ti.Placeholder = "Filter..."
		ti.Prompt = "> "
		ti.CharLimit = 64
		ti.Focus()
		p.input = ti
	}
	return p
}

func (p *picker) refilter() {
	if !p.filterable {
		return
	}
	p.filtered = filterItems(p.items, p.input.Value())
	if p.cursor >= len(p.filtered) {
		p.cursor = 0
	}
	p.scroll = 0
	p.ensureCursorVisible()
}

func (p *picker) moveCursor(delta int) {
	if len(p.filtered) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	p.ensureCursorVisible()
}

func (p *picker) ensureCursorVisible() {
	if p.cursor < p.scroll {
		p.scroll = p.cursor
	}
	if p.cursor >= p.scroll+pickerMaxVisible {
		p.scroll = p.cursor - pickerMaxVisible + 1
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}

func (p *picker) selected() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return "", false
	}
	return p.filtered[p.cursor], true
}

func (p *picker) reset() {
	*p = picker{}
}
