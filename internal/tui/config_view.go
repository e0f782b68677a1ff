package tui

import (
	"fmt"
	"slices"
	"strings"

	"rimeskin/internal/config"
	"rimeskin/internal/database"
	"rimeskin/internal/scheme"
	"rimeskin/internal/tui/components"
	"rimeskin/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type configSavedMsg struct {
	status string
	db     databaseCheckMsg
}

type configSaveErrorMsg struct{ err error }

// databaseCheckMsg reports where the preferences database would live with
// the current configuration and whether that location can be written.
type databaseCheckMsg struct {
	path   string
	source string
	err    error
}

// configViewModel edits the two CLI settings. The database path is typed in;
// the preview mode is cycled in place and its effect is shown on a sample
// scheme.
type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec

	cursor  int
	editing bool
	editor  textinput.Model

	db *databaseCheckMsg

	sample *scheme.Scheme

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive config editor.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	sample := scheme.New()
	sample.Base.BackColor = "#1e1e2eff"
	sample.Base.TextColor = "#cdd6f4ff"
	sample.Base.HilitedCandidateBackColor = "#89b4faff"
	sample.Base.HilitedCandidateTextColor = "#1e1e2eff"

	return configViewModel{
		cfg:    cfg,
		keys:   config.Keys,
		sample: sample,
	}
}

func (m configViewModel) Init() tea.Cmd {
	return checkDatabase(m.cfg.DatabasePath)
}

func checkDatabase(configured string) tea.Cmd {
	return func() tea.Msg { return resolveDatabase(configured) }
}

func resolveDatabase(configured string) databaseCheckMsg {
	path, source, err := database.Resolve(configured)
	if err == nil {
		err = database.CheckWritable(path)
	}
	return databaseCheckMsg{path: path, source: source, err: err}
}

func (m configViewModel) selected() config.KeySpec { return m.keys[m.cursor] }

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)

	case databaseCheckMsg:
		m.db = &msg
		return m, nil

	case configSavedMsg:
		m.status, m.isError = msg.status, false
		m.db = &msg.db
		return m, nil

	case configSaveErrorMsg:
		m.status, m.isError = "Error: "+msg.err.Error(), true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m configViewModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.selected()

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(m.keys)-1)
	case "left", "h":
		if key.Name == config.KeyPreview {
			return m.cyclePreview(-1)
		}
	case "right", "l", " ":
		if key.Name == config.KeyPreview {
			return m.cyclePreview(1)
		}
	case "enter", "e":
		if key.Name == config.KeyPreview {
			return m.cyclePreview(1)
		}
		ti := textinput.New()
		ti.SetValue(key.Get(m.cfg))
		ti.Placeholder = "default location"
		ti.Width = 40
		ti.Focus()
		m.editor, m.editing, m.status = ti, true, ""
		return m, textinput.Blink
	case "x", "delete":
		key.Set(m.cfg, "")
		return m, m.persist(key.Name + " reset")
	}
	return m, nil
}

// cyclePreview moves the preview mode by step through PreviewModes and saves.
func (m configViewModel) cyclePreview(step int) (tea.Model, tea.Cmd) {
	modes := config.PreviewModes()
	i := slices.Index(modes, m.cfg.PreviewMode())
	next := modes[(i+step+len(modes))%len(modes)]
	m.cfg.Preview = next
	return m, m.persist("preview set to " + next)
}

func (m configViewModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		key := m.selected()
		value := strings.TrimSpace(m.editor.Value())
		if key.Validate != nil && value != "" {
			if err := key.Validate(value); err != nil {
				m.status, m.isError = "Error: "+err.Error(), true
				return m, nil
			}
		}
		key.Set(m.cfg, value)
		m.editing = false
		return m, m.persist(key.Name + " saved")
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// persist writes the config and re-runs the database check against the
// saved values.
func (m configViewModel) persist(status string) tea.Cmd {
	cfg := *m.cfg
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{status: status, db: resolveDatabase(cfg.DatabasePath)}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", "")
	footer := components.Footer(m.width, m.bindings())

	var status string
	if m.status != "" {
		status = components.StatusBar(m.width, m.status, m.isError)
	}

	bodyH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(status), 1)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSettings(),
		"  ",
		m.renderDetail(),
	)
	body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, body)

	parts := []string{header, body}
	if status != "" {
		parts = append(parts, status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(parts, footer)...)
}

func (m configViewModel) bindings() []components.KeyBinding {
	if m.editing {
		return []components.KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	}
	change := components.KeyBinding{Key: "e", Desc: "edit"}
	if m.selected().Name == config.KeyPreview {
		change = components.KeyBinding{Key: "h/l", Desc: "change"}
	}
	return []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		change,
		{Key: "x", Desc: "reset"},
		{Key: "q", Desc: "quit"},
	}
}

const settingsWidth = 44

func (m configViewModel) renderSettings() string {
	lines := []string{styles.Title.Render("Settings"), ""}
	for i, key := range m.keys {
		marker, name := "  ", styles.MutedText.Render(key.Name)
		if i == m.cursor {
			marker, name = styles.AccentText.Render("▸ "), styles.Label.Render(key.Name)
		}
		lines = append(lines, marker+name)

		value := key.Get(m.cfg)
		switch {
		case i == m.cursor && m.editing:
			value = m.editor.View()
		case key.Name == config.KeyPreview:
			value = m.renderModes()
		case value == "":
			value = styles.MutedText.Render("(default)")
		default:
			value = styles.Value.Render(ansi.Truncate(value, settingsWidth-8, "…"))
		}
		lines = append(lines, "    "+value, "")
	}
	return styles.Card.Width(settingsWidth).Render(strings.Join(lines[:len(lines)-1], "\n"))
}

// renderModes shows every preview mode with the current one highlighted.
func (m configViewModel) renderModes() string {
	current := m.cfg.PreviewMode()
	out := make([]string, 0, len(config.PreviewModes()))
	for _, mode := range config.PreviewModes() {
		if mode == current {
			out = append(out, styles.AccentText.Bold(true).Render("["+mode+"]"))
		} else {
			out = append(out, styles.MutedText.Render(" "+mode+" "))
		}
	}
	return strings.Join(out, " ")
}

func (m configViewModel) renderDetail() string {
	key := m.selected()

	lines := []string{styles.Title.Render(key.Name), styles.Subtitle.Render(key.Description), ""}
	if key.Name == config.KeyPreview {
		lines = append(lines, m.renderPreviewOutcome()...)
	} else {
		lines = append(lines, m.renderDatabaseCheck()...)
	}
	return styles.Card.Width(settingsWidth + 8).Render(strings.Join(lines, "\n"))
}

// renderPreviewOutcome shows what "scheme show" prints for the sample
// scheme with the current mode, on a terminal and when piped.
func (m configViewModel) renderPreviewOutcome() []string {
	page := styles.PageColor("light")
	show := func(on bool) string {
		var cells []string
		for _, hexa := range []string{m.sample.BackColor(), m.sample.TextColor(), m.sample.HilitedCandidateBackColor()} {
			if on {
				cells = append(cells, styles.Swatch(hexa, page))
			} else {
				cells = append(cells, hexa)
			}
		}
		return strings.Join(cells, " ")
	}

	return []string{
		styles.Label.Render("terminal"),
		"  " + show(m.cfg.PreviewEnabled(true)),
		"",
		styles.Label.Render("piped"),
		"  " + show(m.cfg.PreviewEnabled(false)),
	}
}

func (m configViewModel) renderDatabaseCheck() []string {
	if m.db == nil {
		return []string{styles.MutedText.Render("Checking location…")}
	}
	width := settingsWidth
	lines := []string{
		styles.Label.Render("path") + "    " + styles.Value.Render(ansi.Truncate(m.db.path, width, "…")),
		styles.Label.Render("source") + "  " + styles.Value.Render(m.db.source),
		"",
	}
	if m.db.err != nil {
		return append(lines, styles.ErrorText.Render(ansi.Truncate("✗ "+m.db.err.Error(), width+6, "…")))
	}
	return append(lines, styles.SuccessText.Render("✓ writable"))
}
