package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("⚖️  Lexbot - UK Legal Assistant"))
	b.WriteString("\n\n")

	if m.SessionID != "" {
		b.WriteString(InfoStyle.Render("Session: " + m.SessionID))
		b.WriteString("\n\n")
	}

	for _, line := range m.Lines {
		if line.FromUser {
			b.WriteString(UserStyle.Render("You: "))
			b.WriteString(line.Text)
		} else {
			b.WriteString(AssistantStyle.Render("Lexbot: " + line.Text))
		}
		b.WriteString("\n\n")
	}

	if m.Waiting {
		b.WriteString(InfoStyle.Render("Searching UK legal sources..."))
		b.WriteString("\n\n")
	}

	if m.Err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
		b.WriteString("\n\n")
	}

	b.WriteString(PromptStyle.Render("> "))
	b.WriteString(m.Input)
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Enter to send | Esc or Ctrl+C to quit"))

	return b.String()
}
