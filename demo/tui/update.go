package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ReplyMsg:
		return m.handleReply(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		text := strings.TrimSpace(m.Input)
		if text == "" || m.Waiting {
			return m, nil
		}
		m.Lines = append(m.Lines, ChatLine{FromUser: true, Text: text})
		m.Input = ""
		m.Waiting = true
		m.Err = nil
		return m, sendMessage(m.Client, text, m.SessionID)
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			runes := []rune(m.Input)
			m.Input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
	}
	return m, nil
}

// handleReply processes the API response for one chat turn
func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.Waiting = false
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.SessionID = msg.Reply.SessionID
	m.Lines = append(m.Lines, ChatLine{FromUser: false, Text: msg.Reply.Response})
	return m, nil
}
