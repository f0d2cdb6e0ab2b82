package chatbot

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// apologyReply is the fixed user-facing answer when generation fails. The
// underlying cause is logged, never shown to the user.
const apologyReply = "I apologize, but I'm experiencing technical difficulties. Please try again."

const generateTimeout = 60 * time.Second

// Generator produces an answer for a fully composed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CohereGenerator implements Generator using the Cohere chat API.
type CohereGenerator struct {
	client *cohereclient.Client
	model  string
}

// NewCohereGenerator creates a generator for the given API key and model.
func NewCohereGenerator(apiKey, model string) *CohereGenerator {
	// Force HTTP/1.1 to avoid intermittent HTTP/2 protocol errors against
	// the Cohere endpoint
	httpClient := &http.Client{
		Timeout: generateTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereGenerator{client: client, model: model}
}

func (g *CohereGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	resp, err := g.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &g.model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", errors.New("cohere chat returned empty response")
	}
	return resp.Text, nil
}
