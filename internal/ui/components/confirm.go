package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"studyplan/internal/ui/theme"
)

// ConfirmResultMsg reports the user's answer. Tag identifies which
// pending action the answer belongs to.
type ConfirmResultMsg struct {
	Tag      string
	Accepted bool
}

// Confirm is a modal yes/no prompt guarding destructive actions.
// Declining leaves state unchanged.
type Confirm struct {
	prompt  string
	tag     string
	visible bool
}

func (c Confirm) Visible() bool { return c.visible }

// Open shows the prompt for the action identified by tag.
func (c *Confirm) Open(tag, prompt string) {
	c.tag = tag
	c.prompt = prompt
	c.visible = true
}

func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.visible {
		return c, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		c.visible = false
		tag := c.tag
		return c, func() tea.Msg { return ConfirmResultMsg{Tag: tag, Accepted: true} }
	case "n", "N", "esc":
		c.visible = false
		tag := c.tag
		return c, func() tea.Msg { return ConfirmResultMsg{Tag: tag, Accepted: false} }
	}
	return c, nil
}

func (c Confirm) View(styles *theme.Styles) string {
	if !c.visible {
		return ""
	}
	body := styles.Title.Render(c.prompt) + "\n" + styles.Muted.Render("y: confirm   n: cancel")
	return styles.PaneActive.Render(body)
}
