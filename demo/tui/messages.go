package tui

// ReplyMsg carries the outcome of one chat turn
type ReplyMsg struct {
	Reply *ChatResponse
	Err   error
}
