package tui

import (
	"strings"

	"rimeskin/internal/color"
	"rimeskin/internal/scheme"
	"rimeskin/internal/session"
	"rimeskin/internal/tui/components"
	"rimeskin/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- Editor messages ---

type schemeSavedMsg struct{ status string }

type schemeSaveErrorMsg struct {
	err error
}

// --- Editor model ---

type schemeEditorModel struct {
	sess   *session.Session
	fields []scheme.Field
	page   color.Packed

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

func newSchemeEditorModel(sess *session.Session, page color.Packed) schemeEditorModel {
	return schemeEditorModel{
		sess:   sess,
		fields: scheme.FieldsFor(sess.Scheme().Platform),
		page:   page,
	}
}

// RunSchemeEditor starts the interactive scheme editor. Every accepted edit
// is committed to the session's preferences immediately.
func RunSchemeEditor(sess *session.Session, page color.Packed) error {
	p := tea.NewProgram(newSchemeEditorModel(sess, page), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m schemeEditorModel) Init() tea.Cmd {
	return nil
}

func (m schemeEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case schemeSavedMsg:
		m.editing = false
		m.status = msg.status
		m.isError = false
		return m, nil

	case schemeSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m schemeEditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter", "e":
		f := m.fields[m.cursor]
		ti := textinput.New()
		ti.SetValue(f.Raw(m.sess.Scheme()))
		ti.Focus()
		ti.Width = 24
		ti.Placeholder = placeholderFor(f)
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	case "x", "delete":
		f := m.fields[m.cursor]
		if err := m.sess.Scheme().Unset(f.Key); err != nil {
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		return m, m.commit(f.Key + " cleared")
	case "p":
		next := scheme.Squirrel
		if m.sess.Scheme().Platform == scheme.Squirrel {
			next = scheme.Weasel
		}
		if err := m.sess.SetPlatform(next); err != nil {
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		m.fields = scheme.FieldsFor(next)
		m.cursor = min(m.cursor, len(m.fields)-1)
		m.status = "Platform: " + string(next)
		m.isError = false
	}

	return m, nil
}

func (m schemeEditorModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		f := m.fields[m.cursor]
		value := m.editor.Value()
		if f.Kind != scheme.KindText {
			value = strings.TrimSpace(value)
		}

		var err error
		if value == "" {
			err = m.sess.Scheme().Unset(f.Key)
		} else {
			err = m.sess.Scheme().Set(f.Key, value)
		}
		if err != nil {
			// Stay in edit mode so the value can be corrected.
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		return m, m.commit(f.Key + " saved")
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m schemeEditorModel) commit(status string) tea.Cmd {
	return func() tea.Msg {
		if err := m.sess.Commit(); err != nil {
			return schemeSaveErrorMsg{err: err}
		}
		return schemeSavedMsg{status: status}
	}
}

func placeholderFor(f scheme.Field) string {
	switch f.Kind {
	case scheme.KindColor:
		return "#rrggbbaa"
	case scheme.KindFormat:
		return "argb | rgba | abgr"
	case scheme.KindColorSpace:
		return "display_p3 | srgb"
	}
	return "enter value"
}

func (m schemeEditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "scheme edit", string(m.sess.Scheme().Platform))

	var footerBindings []components.KeyBinding
	if m.editing {
		footerBindings = []components.KeyBinding{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	} else {
		footerBindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "e", Desc: "edit"},
			{Key: "x", Desc: "clear"},
			{Key: "p", Desc: "platform"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.isError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	content := m.renderContent(contentH)

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// visibleRange returns the window of fields that fits in height rows while
// keeping the cursor visible.
func (m schemeEditorModel) visibleRange(height int) (int, int) {
	rows := max(height, 1)
	if len(m.fields) <= rows {
		return 0, len(m.fields)
	}
	start := max(m.cursor-rows/2, 0)
	end := start + rows
	if end > len(m.fields) {
		end = len(m.fields)
		start = end - rows
	}
	return start, end
}

func (m schemeEditorModel) renderContent(height int) string {
	s := m.sess.Scheme()

	listWidth := min(max(m.width/2, 40), 64)
	labelWidth := 32

	// Card border and padding take four rows, the description one more.
	start, end := m.visibleRange(height - 5)

	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		f := m.fields[i]
		isSelected := i == m.cursor

		prefix := "  "
		if isSelected {
			prefix = styles.AccentText.Render("> ")
		}

		nameStyle := styles.MutedText
		if isSelected {
			nameStyle = styles.Label
		}
		nameText := nameStyle.Width(labelWidth).Render(ansi.Truncate(f.Key, labelWidth-1, "…"))

		var valueText string
		switch {
		case isSelected && m.editing:
			valueText = m.editor.View()
		case f.Kind == scheme.KindColor:
			valueText = m.renderColorValue(f, s)
		default:
			valueText = m.renderTextValue(f, s, isSelected)
		}

		rows = append(rows, prefix+nameText+valueText)

		if isSelected && !m.editing {
			desc := ansi.Truncate(f.Description, listWidth-8, "…")
			rows = append(rows, strings.Repeat(" ", 4)+styles.MutedText.Italic(true).Render(desc))
		}
	}

	card := styles.Card
	if m.editing {
		card = styles.CardActive
	}
	list := card.Width(listWidth).Render(strings.Join(rows, "\n"))
	preview := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Preview"),
		"",
		RenderPreview(s, m.page),
	)

	combined := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", preview)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}

func (m schemeEditorModel) renderColorValue(f scheme.Field, s *scheme.Scheme) string {
	eff := f.Effective(s)
	if eff == "" {
		return styles.MutedText.Render("(none)")
	}
	out := styles.Swatch(eff, m.page)
	if f.Raw(s) == "" {
		out += " " + styles.MutedText.Render("derived")
	}
	return out
}

func (m schemeEditorModel) renderTextValue(f scheme.Field, s *scheme.Scheme, selected bool) string {
	value := f.Effective(s)
	if value == "" {
		value = "(not set)"
	}
	value = ansi.Truncate(value, 24, "…")
	if selected {
		return styles.Value.Bold(true).Render(value)
	}
	return styles.MutedText.Render(value)
}

