package tui

import (
	"strings"
	"testing"

	"rimeskin/internal/prefs"
	"rimeskin/internal/scheme"
	"rimeskin/internal/services/preferences"
	"rimeskin/internal/session"
	"rimeskin/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestEditor(t *testing.T) (schemeEditorModel, *session.Session) {
	t.Helper()
	sess, err := session.Open(preferences.NewService(prefs.NewMemoryStore()))
	if err != nil {
		t.Fatalf("session.Open failed: %v", err)
	}
	m := newSchemeEditorModel(sess, styles.PageColor("light"))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(schemeEditorModel), sess
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and runs any returned command that is not a timer,
// feeding its result back into the model.
func send(t *testing.T, m schemeEditorModel, msg tea.Msg) schemeEditorModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(schemeEditorModel)
	if cmd == nil {
		return m
	}
	switch next := cmd().(type) {
	case schemeSavedMsg, schemeSaveErrorMsg:
		updated, _ = m.Update(next)
		m = updated.(schemeEditorModel)
	}
	return m
}

func TestEditor_Navigation(t *testing.T) {
	m, _ := newTestEditor(t)

	m = send(t, m, key("k"))
	if m.cursor != 0 {
		t.Errorf("cursor moved above first field: %d", m.cursor)
	}

	m = send(t, m, key("j"))
	m = send(t, m, key("j"))
	if got := m.fields[m.cursor].Key; got != scheme.KeyTextColor {
		t.Errorf("cursor on %q, want %q", got, scheme.KeyTextColor)
	}

	for i, n := 0, len(m.fields)+3; i < n; i++ {
		m = send(t, m, key("j"))
	}
	if m.cursor != len(m.fields)-1 {
		t.Errorf("cursor = %d, want last index %d", m.cursor, len(m.fields)-1)
	}
}

func TestEditor_EditColorCommits(t *testing.T) {
	m, sess := newTestEditor(t)

	m = send(t, m, key("j"))
	m = send(t, m, key("j")) // text_color
	m = send(t, m, key("e"))
	if !m.editing {
		t.Fatal("expected edit mode")
	}

	m.editor.SetValue(" #123 ")
	m = send(t, m, key("enter"))

	if m.editing {
		t.Error("expected edit mode to end after a valid value")
	}
	if m.isError {
		t.Errorf("unexpected error status %q", m.status)
	}
	if got := sess.Scheme().Base.TextColor; got != "#112233ff" {
		t.Errorf("TextColor = %q, want #112233ff", got)
	}

	snap, err := sess.Preferences().WorkingScheme()
	if err != nil {
		t.Fatalf("WorkingScheme failed: %v", err)
	}
	if snap[scheme.KeyTextColor] != "#112233ff" {
		t.Errorf("working scheme not committed: %v", snap)
	}
}

func TestEditor_InvalidValueStaysInEditMode(t *testing.T) {
	m, sess := newTestEditor(t)

	m = send(t, m, key("j"))
	m = send(t, m, key("j"))
	m = send(t, m, key("e"))
	m.editor.SetValue("#zz")
	m = send(t, m, key("enter"))

	if !m.editing {
		t.Error("expected to stay in edit mode after an invalid value")
	}
	if !m.isError || !strings.Contains(m.status, "Error") {
		t.Errorf("expected error status, got %q", m.status)
	}
	if sess.Scheme().Base.TextColor != "" {
		t.Errorf("invalid value was stored: %q", sess.Scheme().Base.TextColor)
	}

	m = send(t, m, key("esc"))
	if m.editing {
		t.Error("esc should leave edit mode")
	}
}

func TestEditor_EmptyValueUnsets(t *testing.T) {
	m, sess := newTestEditor(t)
	sess.Scheme().Name = "Ink"

	m = send(t, m, key("e")) // name
	if got := m.editor.Value(); got != "Ink" {
		t.Errorf("editor prefilled with %q, want Ink", got)
	}
	m.editor.SetValue("")
	m = send(t, m, key("enter"))

	if sess.Scheme().Name != "" {
		t.Errorf("Name = %q, want cleared", sess.Scheme().Name)
	}
}

func TestEditor_ClearKey(t *testing.T) {
	m, sess := newTestEditor(t)
	sess.Scheme().Author = "someone"

	m = send(t, m, key("j")) // author
	m = send(t, m, key("x"))

	if sess.Scheme().Author != "" {
		t.Errorf("Author = %q, want cleared", sess.Scheme().Author)
	}
	if !strings.Contains(m.status, "author") {
		t.Errorf("status = %q", m.status)
	}
}

func TestEditor_TogglePlatform(t *testing.T) {
	m, sess := newTestEditor(t)

	for i, n := 0, len(m.fields); i < n; i++ {
		m = send(t, m, key("j"))
	}
	m = send(t, m, key("p"))

	if sess.Scheme().Platform != scheme.Squirrel {
		t.Fatalf("Platform = %q, want squirrel", sess.Scheme().Platform)
	}
	if len(m.fields) != len(scheme.FieldsFor(scheme.Squirrel)) {
		t.Errorf("fields not refreshed: %d", len(m.fields))
	}
	if m.cursor >= len(m.fields) {
		t.Errorf("cursor %d out of range", m.cursor)
	}

	p, err := sess.Preferences().Platform()
	if err != nil || p != scheme.Squirrel {
		t.Errorf("platform not persisted: %q, %v", p, err)
	}

	m = send(t, m, key("p"))
	if sess.Scheme().Platform != scheme.Weasel {
		t.Errorf("Platform = %q, want weasel", sess.Scheme().Platform)
	}
}

func TestEditor_Quit(t *testing.T) {
	m, _ := newTestEditor(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEditor_View(t *testing.T) {
	m, _ := newTestEditor(t)
	view := m.View()

	for _, want := range []string{"rimeskin", "scheme edit", "name", "Preview", "weasel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEditor_ViewBeforeResize(t *testing.T) {
	sess, err := session.Open(preferences.NewService(prefs.NewMemoryStore()))
	if err != nil {
		t.Fatalf("session.Open failed: %v", err)
	}
	if got := newSchemeEditorModel(sess, styles.PageColor("dark")).View(); got != "" {
		t.Errorf("expected empty view before the first resize, got %q", got)
	}
}

func TestVisibleRange_KeepsCursorVisible(t *testing.T) {
	m, _ := newTestEditor(t)
	m.cursor = len(m.fields) - 1

	start, end := m.visibleRange(5)
	if end-start != 5 {
		t.Errorf("window size = %d, want 5", end-start)
	}
	if m.cursor < start || m.cursor >= end {
		t.Errorf("cursor %d outside [%d,%d)", m.cursor, start, end)
	}
}
