package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ChatClient is a thin HTTP client for the lexbot API
type ChatClient struct {
	baseURL string
	userID  string
	client  *http.Client
}

// NewChatClient creates a new chat client
func NewChatClient(baseURL, userID string) *ChatClient {
	return &ChatClient{
		baseURL: baseURL,
		userID:  userID,
		client: &http.Client{
			// Generous timeout: one turn includes retrieval plus the LLM call
			Timeout: 120 * time.Second,
		},
	}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse mirrors the server's chat payload
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
}

// Send submits one chat message, continuing the given session when
// sessionID is non-empty.
func (c *ChatClient) Send(message, sessionID string) (*ChatResponse, error) {
	body, err := json.Marshal(chatRequest{Message: message, SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", c.userID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}
