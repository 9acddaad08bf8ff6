package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ripplenote/internal/config"
	"github.com/marcus/ripplenote/internal/keymap"
	"github.com/marcus/ripplenote/internal/msg"
	"github.com/marcus/ripplenote/internal/note"
	"github.com/marcus/ripplenote/internal/palette"
	"github.com/marcus/ripplenote/internal/state"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	if err := state.InitWithDir(t.TempDir()); err != nil {
		t.Fatalf("state init failed: %v", err)
	}

	m := New(Options{
		Config: config.Default(),
		Seed:   note.Defaults(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)),
	})
	return resize(m, 100, 30)
}

func resize(m Model, w, h int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func exec(m Model, commandID string) (Model, tea.Cmd) {
	updated, cmd := m.Update(keymap.ExecMsg{CommandID: commandID})
	return updated.(Model), cmd
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var km tea.KeyMsg
		switch k {
		case "enter":
			km = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			km = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			km = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			km = tea.KeyMsg{Type: tea.KeyBackspace}
		case "ctrl+s":
			km = tea.KeyMsg{Type: tea.KeyCtrlS}
		case "ctrl+b":
			km = tea.KeyMsg{Type: tea.KeyCtrlB}
		case "ctrl+e":
			km = tea.KeyMsg{Type: tea.KeyCtrlE}
		case "ctrl+t":
			km = tea.KeyMsg{Type: tea.KeyCtrlT}
		default:
			km = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(km)
		m = updated.(Model)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestCursorMovesSelection(t *testing.T) {
	m := newTestModel(t)

	if m.Store().SelectedID() != "n-3" {
		t.Fatalf("Expected first seeded note selected, got %q", m.Store().SelectedID())
	}

	m, _ = exec(m, "list.cursor-down")
	if m.Store().SelectedID() != "n-2" {
		t.Errorf("Expected second note selected, got %q", m.Store().SelectedID())
	}

	m, _ = exec(m, "list.cursor-bottom")
	if m.Store().SelectedID() != "n-1" {
		t.Errorf("Expected last note selected, got %q", m.Store().SelectedID())
	}

	m, _ = exec(m, "list.cursor-top")
	if m.Store().SelectedID() != "n-3" {
		t.Errorf("Expected first note selected, got %q", m.Store().SelectedID())
	}
}

func TestSearchNarrowsVisible(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "filter.search")
	if !m.searching {
		t.Fatal("Expected search input active")
	}

	m = typeText(m, "shopping")
	if len(m.Visible()) != 1 || m.Visible()[0].ID != "n-2" {
		t.Fatalf("Expected only the shopping note, got %d visible", len(m.Visible()))
	}

	m = press(m, "enter")
	if m.searching {
		t.Error("Expected enter to close the search input")
	}
	if len(m.Visible()) != 1 {
		t.Error("Expected filter to stay applied after enter")
	}
}

func TestSearchInputTakesAListRow(t *testing.T) {
	m := newTestModel(t)

	base := m.listRows()
	m, _ = exec(m, "filter.search")
	if got := m.listRows(); got != base-1 {
		t.Errorf("Expected %d list rows while searching, got %d", base-1, got)
	}
}

func TestFilterFailsSelectionOverToFirstVisible(t *testing.T) {
	m := newTestModel(t)

	// n-3 is selected; the shopping filter hides it.
	m, _ = exec(m, "filter.search")
	m = typeText(m, "shopping")

	if len(m.Visible()) != 1 || m.Visible()[0].ID != "n-2" {
		t.Fatalf("Expected only the shopping note, got %d visible", len(m.Visible()))
	}
	if m.Store().SelectedID() != "n-2" {
		t.Errorf("Expected selection to follow the visible list, got %q", m.Store().SelectedID())
	}
	if m.cursor != 0 {
		t.Errorf("Expected cursor on the first row, got %d", m.cursor)
	}
}

func TestSearchEscRestoresPreviousQuery(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "filter.search")
	m = typeText(m, "shopping")
	m = press(m, "esc")

	if m.searching {
		t.Error("Expected esc to close the search input")
	}
	if len(m.Visible()) != 3 {
		t.Errorf("Expected original view restored, got %d visible", len(m.Visible()))
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.delete")
	if m.activeModal() != ModalDeleteConfirm {
		t.Fatal("Expected delete confirm modal")
	}

	// n declines
	m = press(m, "n")
	if m.Store().Len() != 3 {
		t.Fatal("Expected decline to keep the note")
	}

	m, _ = exec(m, "note.delete")
	m = press(m, "y")
	if m.Store().Len() != 2 {
		t.Fatalf("Expected 2 notes after delete, got %d", m.Store().Len())
	}
	if m.Store().SelectedID() != "n-2" {
		t.Errorf("Expected selection failover to first remaining, got %q", m.Store().SelectedID())
	}
}

func TestNewNoteFromTemplateAndSave(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.new")
	if m.activeModal() != ModalTemplatePicker {
		t.Fatal("Expected template picker")
	}

	// Second template is Shopping List.
	m = press(m, "j", "enter")
	if m.focus != FocusEditor {
		t.Fatal("Expected editor focus after template choice")
	}
	if m.buffer.Title != "Shopping List" {
		t.Errorf("Expected template title loaded, got %q", m.buffer.Title)
	}

	m = press(m, "ctrl+s")
	if m.focus != FocusList {
		t.Error("Expected list focus after save")
	}
	if m.Store().Len() != 4 {
		t.Fatalf("Expected 4 notes after save, got %d", m.Store().Len())
	}
	// New note is prepended and selected.
	if m.Store().SelectedID() != "n-4" {
		t.Errorf("Expected created note selected, got %q", m.Store().SelectedID())
	}
}

func TestEmptyDraftRefusesSave(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.new")
	m = press(m, "enter") // Blank template
	m = press(m, "ctrl+s")

	if m.focus != FocusEditor {
		t.Error("Expected editor to stay open on refused save")
	}
	if m.Store().Len() != 3 {
		t.Errorf("Expected no note created, got %d", m.Store().Len())
	}
}

func TestEditNoteUpdatesStore(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.edit")
	if m.focus != FocusEditor {
		t.Fatal("Expected editor focus")
	}

	original, _ := m.Store().Get("n-3")
	m = typeText(m, "!!")
	m = press(m, "ctrl+s")

	got, _ := m.Store().Get("n-3")
	if got.Content == original.Content {
		t.Error("Expected edited content saved")
	}
	if got.Title != original.Title {
		t.Error("Expected title untouched")
	}
}

func TestEditorEscOnDirtyDraftAsksFirst(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.edit")
	m = typeText(m, "scratch this")
	m = press(m, "esc")

	if m.activeModal() != ModalDiscardConfirm {
		t.Fatal("Expected discard confirm for a dirty draft")
	}
	if m.focus != FocusEditor {
		t.Error("Expected editor to stay open behind the confirm")
	}

	// n keeps editing with the changes intact.
	m = press(m, "n")
	if m.activeModal() != ModalNone || m.focus != FocusEditor {
		t.Fatal("Expected decline to return to the editor")
	}
	if !m.buffer.Dirty() {
		t.Error("Expected draft changes kept after decline")
	}

	// y discards.
	m = press(m, "esc", "y")
	if m.focus != FocusList {
		t.Error("Expected list focus after discard")
	}
	got, _ := m.Store().Get("n-3")
	if got.Content != note.Defaults(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))[0].Content {
		t.Error("Expected note untouched after discard")
	}
}

func TestEditorEscOnCleanDraftCloses(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.edit")
	m = press(m, "esc")

	if m.activeModal() != ModalNone {
		t.Error("Expected no confirm for a clean draft")
	}
	if m.focus != FocusList {
		t.Error("Expected editor closed directly")
	}
}

func TestTagFilter(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "filter.tag")
	if m.activeModal() != ModalTagPicker {
		t.Fatal("Expected tag picker")
	}

	// First tag in first-seen order is "intro".
	m = press(m, "enter")
	if m.query.Tag != "intro" {
		t.Fatalf("Expected intro tag filter, got %q", m.query.Tag)
	}
	if len(m.Visible()) != 1 || m.Visible()[0].ID != "n-3" {
		t.Errorf("Expected only the intro note visible")
	}

	m, _ = exec(m, "filter.clear")
	if len(m.Visible()) != 3 {
		t.Error("Expected filters cleared")
	}
}

func TestSortPickerChangesOrder(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "filter.sort")
	if m.activeModal() != ModalSortPicker {
		t.Fatal("Expected sort picker")
	}

	// Move from newest to oldest.
	m = press(m, "j", "enter")
	if m.query.Sort.String() != "oldest" {
		t.Fatalf("Expected oldest sort, got %q", m.query.Sort)
	}
	if m.Visible()[0].ID != "n-1" {
		t.Errorf("Expected oldest note first, got %q", m.Visible()[0].ID)
	}
	if got := state.GetSortOrder(); got != "oldest" {
		t.Errorf("Expected sort persisted, got %q", got)
	}
}

func TestQuitConfirm(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "q")
	if m.activeModal() != ModalQuitConfirm {
		t.Fatal("Expected quit confirm")
	}

	m = press(m, "n")
	if m.activeModal() != ModalNone {
		t.Error("Expected confirm dismissed")
	}
}

func TestPaletteRunsCommand(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "app.palette")
	if m.activeModal() != ModalPalette {
		t.Fatal("Expected palette open")
	}

	updated, _ := m.Update(palette.CommandSelectedMsg{CommandID: "note.delete"})
	m = updated.(Model)
	if m.activeModal() != ModalDeleteConfirm {
		t.Error("Expected palette selection to dispatch the command")
	}
}

func TestTagEditingInEditor(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.edit")
	// Move focus from content to the tags field.
	m = press(m, "tab")
	if m.editor.field != fieldTags {
		t.Fatalf("Expected tags field focused, got %d", m.editor.field)
	}

	m = typeText(m, "urgent")
	m = press(m, "enter")
	if len(m.buffer.Tags) != 2 || m.buffer.Tags[1] != "urgent" {
		t.Fatalf("Expected urgent tag added, got %v", m.buffer.Tags)
	}

	m = press(m, "backspace")
	if len(m.buffer.Tags) != 1 {
		t.Errorf("Expected backspace on empty input to pop a tag, got %v", m.buffer.Tags)
	}
}

func TestEditorMarkupShortcuts(t *testing.T) {
	m := newTestModel(t)

	m, _ = exec(m, "note.new")
	m = press(m, "enter") // Blank template
	m = press(m, "tab")   // title -> content
	if m.editor.field != fieldContent {
		t.Fatalf("Expected content field focused, got %d", m.editor.field)
	}

	m = press(m, "ctrl+b")
	if !strings.Contains(m.buffer.Content, "**bold**") {
		t.Errorf("Expected bold wrapper inserted, got %q", m.buffer.Content)
	}

	m = press(m, "ctrl+e")
	if !strings.Contains(m.buffer.Content, "*italic*") {
		t.Errorf("Expected italic wrapper inserted, got %q", m.buffer.Content)
	}

	m = press(m, "ctrl+t")
	if !strings.Contains(m.buffer.Content, "`code`") {
		t.Errorf("Expected code wrapper inserted, got %q", m.buffer.Content)
	}
}

func TestToastLifecycle(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(msg.ToastMsg{Message: "hello", Duration: time.Minute})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected expiry command")
	}
	if m.statusMessage != "hello" {
		t.Errorf("Expected toast set, got %q", m.statusMessage)
	}

	// A tick before expiry keeps the message.
	updated, _ = m.Update(toastExpiredMsg{})
	m = updated.(Model)
	if m.statusMessage != "hello" {
		t.Error("Expected early tick to keep the toast")
	}
}
