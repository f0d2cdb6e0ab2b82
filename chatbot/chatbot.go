package chatbot

import (
	"context"
	"log"

	"lexbot/config"
	"lexbot/events"
	"lexbot/session"
	"lexbot/types"
)

const maxTitleLength = 50

// ContextRetriever supplies retrieved legal context for a query. Deepen may
// replace the snippets of up to n results with fuller page excerpts.
type ContextRetriever interface {
	FetchContext(ctx context.Context, query string) []types.SearchResult
	Deepen(results []types.SearchResult, n int)
}

// Chatbot ties the session store, retriever, and generator into the chat
// flow. Construct once and share; all state lives in the injected store.
type Chatbot struct {
	store     *session.Store
	retriever ContextRetriever
	generator Generator
	publisher *events.Publisher
}

// AskResult is the outcome of one chat turn.
type AskResult struct {
	Reply     string
	SessionID string
	MessageID string
}

// New creates a chatbot. publisher may be nil when event publishing is not
// configured.
func New(store *session.Store, retriever ContextRetriever, generator Generator, publisher *events.Publisher) *Chatbot {
	return &Chatbot{
		store:     store,
		retriever: retriever,
		generator: generator,
		publisher: publisher,
	}
}

// Ask runs one chat turn for a user: resolve or create the session, store
// the user message, retrieve context, generate a reply, and store it.
//
// No transaction spans these steps: a crash after the user message is stored
// but before the reply leaves the session with only the user message.
func (c *Chatbot) Ask(ctx context.Context, userID, sessionID, message string) (*AskResult, error) {
	if sessionID != "" {
		if _, err := c.store.GetSession(sessionID, userID); err != nil {
			return nil, err
		}
	} else {
		title := message
		if len(title) > maxTitleLength {
			title = title[:maxTitleLength] + "..."
		}
		sessionID = c.store.CreateSession(userID, title)
	}

	history := c.store.History(sessionID, config.HistoryFetchLimit)

	userMsgID, err := c.store.AddMessage(sessionID, message, types.RoleUser)
	if err != nil {
		return nil, err
	}
	c.publisher.MessageStored(sessionID, userMsgID, userID, types.RoleUser)

	results := c.retriever.FetchContext(ctx, message)
	if !IsGreeting(message) {
		c.retriever.Deepen(results, 2)
	}

	prompt := Compose(message, results, history)

	reply, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Generator call failed: %v", err)
		reply = apologyReply
	}

	replyID, err := c.store.AddMessage(sessionID, reply, types.RoleAssistant)
	if err != nil {
		return nil, err
	}
	c.publisher.MessageStored(sessionID, replyID, userID, types.RoleAssistant)

	return &AskResult{
		Reply:     reply,
		SessionID: sessionID,
		MessageID: replyID,
	}, nil
}
