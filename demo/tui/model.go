package tui

// ChatLine is one rendered line of the conversation
type ChatLine struct {
	FromUser bool
	Text     string
}

// Model represents the chat TUI state (thin client over the HTTP API)
type Model struct {
	Client *ChatClient

	SessionID string
	Lines     []ChatLine
	Input     string
	Waiting   bool
	Err       error
}

// NewModel creates a new TUI model
func NewModel(client *ChatClient) Model {
	return Model{
		Client: client,
		Lines:  []ChatLine{},
	}
}
