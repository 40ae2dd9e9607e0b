package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	caldto "studyplan/internal/modules/calendar/dto"
	examdto "studyplan/internal/modules/exam/dto"
	apperrors "studyplan/internal/platform/errors"
	"studyplan/internal/ui/components"
	"studyplan/internal/ui/flow"
	"studyplan/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CalendarPort interface {
	CurrentMonth(ctx context.Context) (caldto.MonthOutput, error)
}

type ExamPort interface {
	Create(ctx context.Context, code, date, timeStr, notes string) (examdto.ExamOutput, error)
	Update(ctx context.Context, id int64, code, date, timeStr, notes string) (examdto.ExamOutput, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (examdto.ExamOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type MonthLoadedMsg struct {
	Month caldto.MonthOutput
	Err   error
}

type DetailLoadedMsg struct {
	Detail examdto.ExamOutput
	Err    error
}

type examSavedMsg struct {
	out examdto.ExamOutput
	err error
}

type examDeletedMsg struct {
	id  int64
	err error
}

// form field order mirrors the entry form: code, date, time, notes.
const (
	fieldCode = iota
	fieldDate
	fieldTime
	fieldNotes
	fieldCount
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	calendar CalendarPort
	exams    ExamPort
	styles   *theme.Styles
	weekdays []string

	month  caldto.MonthOutput
	loaded bool

	cursor    int // index into month.Days
	markerIdx int // which marker on the cursored day is targeted

	state   flow.State
	detail  examdto.ExamOutput
	inputs  [fieldCount]textinput.Model
	focus   int
	formErr string

	confirm components.Confirm
	status  string
	width   int
	height  int
}

func New(calendar CalendarPort, exams ExamPort, styles *theme.Styles, weekdays []string) Model {
	m := Model{calendar: calendar, exams: exams, styles: styles, weekdays: weekdays}
	placeholders := [fieldCount]string{"module code", "YYYY-MM-DD", "HH:MM", "notes"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		m.inputs[i] = ti
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.loadMonthCmd()
}

// Reload re-projects the month; the app model calls it after imports.
func (m Model) Reload() tea.Cmd {
	return m.loadMonthCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.confirm.Visible() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case MonthLoadedMsg:
		if msg.Err != nil {
			m.status = "calendar: " + msg.Err.Error()
			return m, nil
		}
		m.month = msg.Month
		m.loaded = true
		if m.cursor >= len(m.month.Days) {
			m.cursor = len(m.month.Days) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.markerIdx = 0

	case DetailLoadedMsg:
		if msg.Err != nil {
			// The selection vanished under us; drop back to Idle.
			m.state = flow.Transition(m.state, flow.Event{Kind: flow.CloseClicked})
			m.status = "detail: " + msg.Err.Error()
			return m, nil
		}
		m.detail = msg.Detail

	case examSavedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrInvalidInput) {
				// Stay in the form and surface the message.
				m.state = flow.Transition(m.state, flow.Event{Kind: flow.SubmitInvalid})
				m.formErr = msg.err.Error()
				return m, nil
			}
			m.status = "save exam: " + msg.err.Error()
			return m, nil
		}
		m.state = flow.Transition(m.state, flow.Event{Kind: flow.SubmitValid})
		m.clearForm()
		m.status = fmt.Sprintf("saved %s on %s", msg.out.Code, msg.out.Date)
		cmds = append(cmds, m.loadMonthCmd())

	case examDeletedMsg:
		if msg.err != nil {
			m.status = "delete exam: " + msg.err.Error()
			return m, nil
		}
		m.state = flow.Transition(m.state, flow.Event{Kind: flow.DeleteConfirmed})
		m.detail = examdto.ExamOutput{}
		m.status = "exam deleted"
		cmds = append(cmds, m.loadMonthCmd())

	case components.ConfirmResultMsg:
		if msg.Tag == "delete-exam" && msg.Accepted && m.state.Mode == flow.Viewing {
			cmds = append(cmds, m.deleteCmd(m.state.SelectedID))
		}

	case tea.KeyMsg:
		if m.state.Editing() {
			return m.updateForm(msg)
		}
		return m.updateGrid(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateGrid(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}
	switch msg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
			m.markerIdx = 0
		}
	case "right", "l":
		if m.cursor < len(m.month.Days)-1 {
			m.cursor++
			m.markerIdx = 0
		}
	case "up", "k":
		if m.cursor-7 >= 0 {
			m.cursor -= 7
			m.markerIdx = 0
		}
	case "down", "j":
		if m.cursor+7 < len(m.month.Days) {
			m.cursor += 7
			m.markerIdx = 0
		}
	case "enter":
		markers := m.month.Days[m.cursor].Markers
		if len(markers) == 0 {
			return m, nil
		}
		target := markers[m.markerIdx%len(markers)]
		m.state = flow.Transition(m.state, flow.Event{Kind: flow.MarkerActivated, ExamID: target.ID})
		return m, m.loadDetailCmd(target.ID)
	case "n":
		// Cycle through markers when a day carries several exams.
		markers := m.month.Days[m.cursor].Markers
		if m.state.Mode == flow.Viewing && len(markers) > 1 {
			m.markerIdx = (m.markerIdx + 1) % len(markers)
			target := markers[m.markerIdx]
			m.state = flow.Transition(m.state, flow.Event{Kind: flow.MarkerActivated, ExamID: target.ID})
			return m, m.loadDetailCmd(target.ID)
		}
	case "a":
		m.state = flow.Transition(m.state, flow.Event{Kind: flow.AddClicked})
		if m.state.Mode == flow.EditingCreate {
			m.clearForm()
			m.inputs[fieldDate].SetValue(m.month.Days[m.cursor].Key)
			m.focus = fieldCode
			return m, m.inputs[fieldCode].Focus()
		}
	case "e":
		next := flow.Transition(m.state, flow.Event{Kind: flow.EditClicked})
		if next.Mode != flow.EditingUpdate {
			return m, nil
		}
		m.state = next
		m.fillForm(m.detail)
		m.focus = fieldCode
		return m, m.inputs[fieldCode].Focus()
	case "d":
		if m.state.Mode == flow.Viewing {
			m.confirm.Open("delete-exam", fmt.Sprintf("Delete %s (%s)?", m.detail.Code, m.detail.Date))
		}
	case "esc":
		if m.state.Mode == flow.Viewing {
			m.state = flow.Transition(m.state, flow.Event{Kind: flow.CloseClicked})
			m.detail = examdto.ExamOutput{}
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = flow.Transition(m.state, flow.Event{Kind: flow.CancelClicked})
		m.clearForm()
		return m, nil
	case "tab", "down":
		return m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		return m, m.submitCmd()
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) focusField(n int) (Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = n
	return m, m.inputs[n].Focus()
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loaded {
		return m.styles.Muted.Render("Loading calendar…")
	}

	header := m.styles.Title.Render("// " + m.month.Label)
	grid := m.renderGrid()

	var panel string
	switch {
	case m.confirm.Visible():
		panel = m.confirm.View(m.styles)
	case m.state.Editing():
		panel = m.renderForm()
	case m.state.Mode == flow.Viewing:
		panel = m.renderDetail()
	default:
		panel = m.styles.Muted.Render("←↑↓→: move  enter: details  a: add exam  q: quit")
	}

	out := lipgloss.JoinVertical(lipgloss.Left, header, grid, panel)
	if m.status != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.styles.Muted.Render(m.status))
	}
	return out
}

func (m Model) renderGrid() string {
	cellW := (m.width - 2) / 7
	if cellW < 9 {
		cellW = 9
	}

	base := lipgloss.NewStyle().Width(cellW).Height(3).Padding(0, 1)
	var cells []string
	for i := 0; i < m.month.Leading; i++ {
		cells = append(cells, base.Render(""))
	}
	for i, day := range m.month.Days {
		num := fmt.Sprintf("%2d", day.Num)
		if day.Today {
			num = m.styles.TodayCell.Render(num)
		}
		lines := []string{num}
		for j, mk := range day.Markers {
			if j == 2 {
				lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("+%d more", len(day.Markers)-2)))
				break
			}
			label := mk.Code
			if mk.Time != "" {
				label += " " + mk.Time
			}
			if len(label) > cellW-2 {
				label = label[:cellW-2]
			}
			lines = append(lines, m.styles.Marker.Render(label))
		}
		style := base
		if i == m.cursor {
			style = base.Background(m.styles.Border)
		}
		cells = append(cells, style.Render(strings.Join(lines, "\n")))
	}

	var rows []string
	header := make([]string, len(m.weekdays))
	for i, wd := range m.weekdays {
		header[i] = lipgloss.NewStyle().Width(cellW).Padding(0, 1).Render(m.styles.Muted.Render(wd))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderDetail() string {
	d := m.detail
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(d.Code) + "\n")
	sb.WriteString(m.styles.Muted.Render("date:  ") + d.Date + "\n")
	sb.WriteString(m.styles.Muted.Render("time:  ") + orNone(d.Time) + "\n")
	sb.WriteString(m.styles.Muted.Render("notes: ") + orNone(d.Notes) + "\n")
	sb.WriteString(m.styles.Muted.Render("e: edit  d: delete  n: next marker  esc: close"))
	return m.styles.Pane.Render(sb.String())
}

func (m Model) renderForm() string {
	title := "New exam"
	if m.state.Mode == flow.EditingUpdate {
		title = fmt.Sprintf("Edit exam %d", m.state.SelectedID)
	}
	labels := [fieldCount]string{"code ", "date ", "time ", "notes"}
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(title) + "\n")
	for i := range m.inputs {
		sb.WriteString(m.styles.Muted.Render(labels[i]+" ") + m.inputs[i].View() + "\n")
	}
	if m.formErr != "" {
		sb.WriteString(m.styles.ErrorText.Render(m.formErr) + "\n")
	}
	sb.WriteString(m.styles.Muted.Render("enter: save  tab: next field  esc: cancel"))
	return m.styles.PaneActive.Render(sb.String())
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "none"
	}
	return s
}

// ─── form state ──────────────────────────────────────────────────────────────

func (m *Model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldCode
	m.formErr = ""
}

func (m *Model) fillForm(d examdto.ExamOutput) {
	m.inputs[fieldCode].SetValue(d.Code)
	m.inputs[fieldDate].SetValue(d.Date)
	m.inputs[fieldTime].SetValue(d.Time)
	m.inputs[fieldNotes].SetValue(d.Notes)
	m.formErr = ""
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadMonthCmd() tea.Cmd {
	return func() tea.Msg {
		month, err := m.calendar.CurrentMonth(context.Background())
		return MonthLoadedMsg{Month: month, Err: err}
	}
}

func (m Model) loadDetailCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.exams.Get(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	code := m.inputs[fieldCode].Value()
	date := m.inputs[fieldDate].Value()
	timeStr := m.inputs[fieldTime].Value()
	notes := m.inputs[fieldNotes].Value()
	state := m.state
	return func() tea.Msg {
		var out examdto.ExamOutput
		var err error
		if state.Mode == flow.EditingUpdate {
			out, err = m.exams.Update(context.Background(), state.SelectedID, code, date, timeStr, notes)
		} else {
			out, err = m.exams.Create(context.Background(), code, date, timeStr, notes)
		}
		return examSavedMsg{out: out, err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.exams.Delete(context.Background(), id)
		return examDeletedMsg{id: id, err: err}
	}
}

// DeleteViewed opens the delete confirmation for the viewed exam; the
// command palette uses it.
func (m *Model) DeleteViewed() {
	if m.state.Mode == flow.Viewing {
		m.confirm.Open("delete-exam", fmt.Sprintf("Delete %s (%s)?", m.detail.Code, m.detail.Date))
	}
}

// Typing reports whether the form or the delete confirmation is
// capturing input.
func (m Model) Typing() bool {
	return m.state.Editing() || m.confirm.Visible()
}
