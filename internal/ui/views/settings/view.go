package settings

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	themedomain "studyplan/internal/modules/theme/domain"
	themedto "studyplan/internal/modules/theme/dto"
	"studyplan/internal/ui/components"
	"studyplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ThemePort interface {
	Current(ctx context.Context) (themedto.ThemeOutput, error)
	SetPreset(ctx context.Context, name string) (themedto.ThemeOutput, error)
	SetCustom(ctx context.Context, background, text string) (themedto.ThemeOutput, error)
	Reset(ctx context.Context) (themedto.ThemeOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// AppliedMsg bubbles up to the app model, which rebuilds the shared
// style set in place.
type AppliedMsg struct {
	Theme themedto.ThemeOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   ThemePort
	styles *theme.Styles

	options []string // preset names plus "custom"
	cursor  int

	editing bool
	bgInput textinput.Model
	fgInput textinput.Model
	onBg    bool

	confirm components.Confirm
	status  string
}

func New(port ThemePort, styles *theme.Styles) Model {
	bg := textinput.New()
	bg.Placeholder = "#rrggbb background"
	bg.CharLimit = 7
	fg := textinput.New()
	fg.Placeholder = "#rrggbb text"
	fg.CharLimit = 7

	return Model{
		port:    port,
		styles:  styles,
		options: append(themedomain.PresetNames(), themedomain.CustomName),
		bgInput: bg,
		fgInput: fg,
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirm.Visible() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case AppliedMsg:
		if msg.Err != nil {
			m.status = "theme: " + msg.Err.Error()
		} else {
			m.status = "theme applied: " + msg.Theme.Name
		}

	case components.ConfirmResultMsg:
		if msg.Tag == "theme-reset" && msg.Accepted {
			return m, m.resetCmd()
		}

	case tea.KeyMsg:
		if m.editing {
			return m.updateCustomForm(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			name := m.options[m.cursor]
			if name == themedomain.CustomName {
				m.editing = true
				m.onBg = true
				return m, m.bgInput.Focus()
			}
			return m, m.presetCmd(name)
		case "r":
			m.confirm.Open("theme-reset", "Reset to default theme?")
		}
	}
	return m, nil
}

func (m Model) updateCustomForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.bgInput.Blur()
		m.fgInput.Blur()
		return m, nil
	case "tab":
		m.onBg = !m.onBg
		if m.onBg {
			m.fgInput.Blur()
			return m, m.bgInput.Focus()
		}
		m.bgInput.Blur()
		return m, m.fgInput.Focus()
	case "enter":
		bg := strings.TrimSpace(m.bgInput.Value())
		fg := strings.TrimSpace(m.fgInput.Value())
		m.editing = false
		m.bgInput.Blur()
		m.fgInput.Blur()
		return m, m.customCmd(bg, fg)
	}
	var cmd tea.Cmd
	if m.onBg {
		m.bgInput, cmd = m.bgInput.Update(msg)
	} else {
		m.fgInput, cmd = m.fgInput.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Theme") + "\n\n")
	for i, name := range m.options {
		marker := "  "
		line := name
		if name == m.styles.Name {
			line += " (active)"
		}
		if i == m.cursor {
			marker = m.styles.Hot.Render("▸ ")
			line = m.styles.Title.Render(line)
		}
		sb.WriteString(marker + line + "\n")
	}

	if m.editing {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("bg   ") + m.bgInput.View() + "\n")
		sb.WriteString(m.styles.Muted.Render("text ") + m.fgInput.View() + "\n")
		sb.WriteString(m.styles.Muted.Render("enter: apply  tab: switch field  esc: cancel") + "\n")
	} else {
		sb.WriteString("\n" + m.styles.Muted.Render("enter: apply  r: reset to default") + "\n")
	}
	if m.status != "" {
		sb.WriteString(m.styles.Muted.Render(m.status) + "\n")
	}

	body := m.styles.Pane.Render(sb.String())
	if m.confirm.Visible() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.confirm.View(m.styles))
	}
	return body
}

// Typing reports whether the custom color form or the reset
// confirmation is capturing input.
func (m Model) Typing() bool { return m.editing || m.confirm.Visible() }

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) presetCmd(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.SetPreset(context.Background(), name)
		return AppliedMsg{Theme: out, Err: err}
	}
}

func (m Model) customCmd(bg, fg string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.SetCustom(context.Background(), bg, fg)
		return AppliedMsg{Theme: out, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Reset(context.Background())
		return AppliedMsg{Theme: out, Err: err}
	}
}

// ApplyPreset lets the command palette switch themes directly.
func (m Model) ApplyPreset(name string) tea.Cmd {
	return m.presetCmd(name)
}

// OpenReset opens the reset confirmation; the command palette uses it.
func (m *Model) OpenReset() {
	m.confirm.Open("theme-reset", "Reset to default theme?")
}
