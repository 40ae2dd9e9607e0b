package theme

import "github.com/charmbracelet/lipgloss"

// Styles is the resolved style set shared by every view. The app model
// rebuilds it in place when the user switches themes, so views hold a
// pointer and pick up the change on the next render.
type Styles struct {
	Name string

	Background lipgloss.Color
	Text       lipgloss.Color
	Border     lipgloss.Color

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	TodayCell  lipgloss.Style
	Marker     lipgloss.Style
	ErrorText  lipgloss.Style
	StatusBar  lipgloss.Style
}

func New(name, background, text, border string) Styles {
	bg := lipgloss.Color(background)
	fg := lipgloss.Color(text)
	bd := lipgloss.Color(border)

	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(bd).
		Foreground(fg).
		Padding(0, 1)

	return Styles{
		Name:       name,
		Background: bg,
		Text:       fg,
		Border:     bd,
		App:        lipgloss.NewStyle().Background(bg).Foreground(fg),
		Pane:       pane,
		PaneActive: pane.BorderForeground(fg),
		Title:      lipgloss.NewStyle().Foreground(fg).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(bd),
		Hot:        lipgloss.NewStyle().Foreground(fg).Bold(true).Underline(true),
		TodayCell:  lipgloss.NewStyle().Foreground(fg).Bold(true).Reverse(true),
		Marker:     lipgloss.NewStyle().Foreground(fg).Bold(true),
		ErrorText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")).Bold(true),
		StatusBar:  lipgloss.NewStyle().Background(bg).Foreground(fg),
	}
}
