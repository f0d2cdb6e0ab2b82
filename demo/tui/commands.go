package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// sendMessage submits a chat turn to the API in the background
func sendMessage(client *ChatClient, message, sessionID string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.Send(message, sessionID)
		return ReplyMsg{Reply: reply, Err: err}
	}
}
