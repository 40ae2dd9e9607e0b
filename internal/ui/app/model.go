package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backupdto "studyplan/internal/modules/backup/dto"
	"studyplan/internal/ui/components"
	"studyplan/internal/ui/theme"
	calendarview "studyplan/internal/ui/views/calendar"
	dashboardview "studyplan/internal/ui/views/dashboard"
	settingsview "studyplan/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Sub-view ports are defined in their own packages; the app model only
// needs backup and section persistence at this level.

type backupPort interface {
	Export(ctx context.Context, path string) (backupdto.Summary, error)
	Import(ctx context.Context, path string) (backupdto.Summary, error)
}

// sectionPort remembers the last viewed section across runs.
type sectionPort interface {
	SaveSection(ctx context.Context, name string) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabCalendar
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Calendar", "Settings"}

// SectionName maps a tab to its persisted section identifier.
func SectionName(t tabID) string {
	switch t {
	case tabCalendar:
		return "calendar"
	case tabSettings:
		return "settings"
	default:
		return "dashboard"
	}
}

func tabForSection(name string) tabID {
	switch name {
	case "calendar":
		return tabCalendar
	case "settings":
		return tabSettings
	default:
		return tabDashboard
	}
}

// ─── messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type backupDoneMsg struct {
	summary  backupdto.Summary
	imported bool
	err      error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Add     key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Add, k.Delete},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the clock in
// the status bar, the help overlay, the command palette, and backup
// confirmation. Business logic lives behind the sub-view ports.
type Model struct {
	backup   backupPort
	sections sectionPort
	styles   *theme.Styles

	dashView dashboardview.Model
	calView  calendarview.Model
	setView  settingsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	confirm   components.Confirm

	pendingImport string
	now           time.Time
	status        string
	width         int
	height        int
}

func NewModel(
	tasks dashboardview.TaskPort,
	exams calendarview.ExamPort,
	calendar calendarview.CalendarPort,
	themes settingsview.ThemePort,
	backup backupPort,
	sections sectionPort,
	styles *theme.Styles,
	weekdays []string,
	startSection string,
) Model {
	return Model{
		backup:    backup,
		sections:  sections,
		styles:    styles,
		dashView:  dashboardview.New(tasks, styles),
		calView:   calendarview.New(calendar, exams, styles, weekdays),
		setView:   settingsview.New(themes, styles),
		activeTab: tabForSection(startSection),
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.calView.Init(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}
	if m.confirm.Visible() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case components.ConfirmResultMsg:
		if msg.Tag == "backup-import" {
			if msg.Accepted && m.pendingImport != "" {
				path := m.pendingImport
				m.pendingImport = ""
				return m, m.importCmd(path)
			}
			m.pendingImport = ""
			m.status = "import cancelled"
			return m, nil
		}
		// Other confirmations belong to the views.
		break

	case backupDoneMsg:
		if msg.err != nil {
			m.status = "backup: " + msg.err.Error()
			return m, nil
		}
		if msg.imported {
			m.status = "imported " + msg.summary.Path
			// Imported slots replace everything; re-read both views.
			return m, tea.Batch(m.dashView.Init(), m.calView.Reload())
		}
		m.status = "exported " + msg.summary.Path
		return m, nil

	case settingsview.AppliedMsg:
		if msg.Err == nil {
			*m.styles = theme.New(msg.Theme.Name, msg.Theme.Background, msg.Theme.Text, msg.Theme.Border)
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.subViewTyping() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	// Propagate the message to the active tab's sub-view. Confirmation
	// answers and theme results go to their owners regardless of tab.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabCalendar:
		m.calView, tabCmd = m.calView.Update(msg)
	case tabSettings:
		m.setView, tabCmd = m.setView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) switchTab(next tabID) (tea.Model, tea.Cmd) {
	m.activeTab = next
	section := SectionName(next)
	saveCmd := func() tea.Msg {
		_ = m.sections.SaveSection(context.Background(), section)
		return nil
	}
	if next == tabCalendar {
		return m, tea.Batch(saveCmd, m.calView.Reload())
	}
	return m, saveCmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View(m.styles))
	case m.confirm.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.confirm.View(m.styles))
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabCalendar:
		return m.calView.View()
	case tabSettings:
		return m.setView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = m.styles.Hot.Render(" " + label + " ")
		} else {
			parts[i] = m.styles.Muted.Render(" " + label + " ")
		}
	}
	sep := m.styles.Muted.Render(" │ ")
	bar := "studyplan  " + strings.Join(parts, sep)
	return m.styles.StatusBar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	clock := ""
	if !m.now.IsZero() {
		clock = m.styles.Hot.Render(m.now.Format("15:04:05")) + "  "
	}
	right := m.styles.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(clock) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := clock + left + strings.Repeat(" ", gap) + right
	return "\n" + m.styles.StatusBar.Width(m.width).Render(bar)
}

// ─── palette execution ───────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "task:add":
		if len(parts) < 2 {
			m.status = "usage: task:add <text>"
			return m, nil
		}
		text := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		m.activeTab = tabDashboard
		return m, m.dashView.AddTask(text)

	case "task:del":
		if len(parts) < 2 {
			m.status = "usage: task:del <index>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			m.status = "invalid index"
			return m, nil
		}
		m.activeTab = tabDashboard
		return m, m.dashView.DeleteTask(n - 1)

	case "exam:delete":
		m.activeTab = tabCalendar
		m.calView.DeleteViewed()
		return m, nil

	case "theme:set":
		if len(parts) < 2 {
			m.status = "usage: theme:set <nord|peach|matrix>"
			return m, nil
		}
		m.activeTab = tabSettings
		return m, m.setView.ApplyPreset(parts[1])

	case "theme:reset":
		m.activeTab = tabSettings
		m.setView.OpenReset()
		return m, nil

	case "backup:export":
		if len(parts) < 2 {
			m.status = "usage: backup:export <path>"
			return m, nil
		}
		return m, m.exportCmd(parts[1])

	case "backup:import":
		if len(parts) < 2 {
			m.status = "usage: backup:import <path>"
			return m, nil
		}
		m.pendingImport = parts[1]
		m.confirm.Open("backup-import", "Overwrite all data with "+parts[1]+"?")
		return m, nil

	case "quit":
		return m, tea.Quit

	default:
		if strings.HasPrefix(parts[0], "section:") {
			return m.switchTab(tabForSection(strings.TrimPrefix(parts[0], "section:")))
		}
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewTyping reports whether the active tab is capturing free text,
// in which case global key bindings must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.Filtering()
	case tabCalendar:
		return m.calView.Typing()
	case tabSettings:
		return m.setView.Typing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.calView, _ = m.calView.Update(sz)
	m.setView, _ = m.setView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) exportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.backup.Export(context.Background(), path)
		return backupDoneMsg{summary: summary, err: err}
	}
}

func (m Model) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.backup.Import(context.Background(), path)
		return backupDoneMsg{summary: summary, imported: true, err: err}
	}
}
