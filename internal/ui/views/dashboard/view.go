package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	taskdto "studyplan/internal/modules/task/dto"
	"studyplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TaskPort interface {
	Append(ctx context.Context, text string) (taskdto.AppendOutput, error)
	DeleteAt(ctx context.Context, index int) error
	List(ctx context.Context) ([]string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TasksLoadedMsg struct {
	Tasks []string
	Err   error
}

type taskAddedMsg struct {
	out taskdto.AppendOutput
	err error
}

type taskDeletedMsg struct {
	index int
	err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type taskItem struct {
	index int
	text  string
}

func (i taskItem) Title() string       { return i.text }
func (i taskItem) Description() string { return fmt.Sprintf("#%d", i.index+1) }
func (i taskItem) FilterValue() string { return i.text }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   TaskPort
	styles *theme.Styles
	list   list.Model
	input  textinput.Model
	adding bool
	status string
	width  int
	height int
}

func New(port TaskPort, styles *theme.Styles) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Text).BorderForeground(styles.Text)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Border).BorderForeground(styles.Text)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tasks"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "new task…"
	ti.CharLimit = 200

	return Model{port: port, styles: styles, list: l, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-3)

	case TasksLoadedMsg:
		if msg.Err != nil {
			m.status = "load tasks: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Tasks))
		for i, t := range msg.Tasks {
			items[i] = taskItem{index: i, text: t}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case taskAddedMsg:
		switch {
		case msg.err != nil:
			m.status = "add task: " + msg.err.Error()
		case !msg.out.Added:
			m.status = "empty task ignored"
		default:
			m.status = fmt.Sprintf("added (%d total)", msg.out.Count)
		}
		cmds = append(cmds, m.loadCmd())

	case taskDeletedMsg:
		if msg.err != nil {
			m.status = "delete task: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("deleted #%d", msg.index+1)
		}
		cmds = append(cmds, m.loadCmd())

	case tea.KeyMsg:
		if m.adding {
			switch msg.String() {
			case "enter":
				text := m.input.Value()
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				return m, m.appendCmd(text)
			case "esc":
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "a":
				m.adding = true
				return m, m.input.Focus()
			case "x", "d":
				if item, ok := m.list.SelectedItem().(taskItem); ok {
					return m, m.deleteCmd(item.index)
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var input string
	if m.adding {
		input = m.styles.Pane.Render("> " + m.input.View())
	} else {
		input = m.styles.Muted.Render("a: add task  x: delete  /: filter")
	}
	footer := input
	if m.status != "" {
		footer += "  " + m.styles.Muted.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

// Filtering reports whether the list's search filter is active, so the
// app model yields global keys while the user types.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering || m.adding
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.port.List(context.Background())
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (m Model) appendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Append(context.Background(), text)
		return taskAddedMsg{out: out, err: err}
	}
}

func (m Model) deleteCmd(index int) tea.Cmd {
	return func() tea.Msg {
		err := m.port.DeleteAt(context.Background(), index)
		return taskDeletedMsg{index: index, err: err}
	}
}

// AddTask lets the command palette add a task without opening the input.
func (m Model) AddTask(text string) tea.Cmd {
	return m.appendCmd(text)
}

// DeleteTask lets the command palette delete by one-based index.
func (m Model) DeleteTask(index int) tea.Cmd {
	return m.deleteCmd(index)
}
