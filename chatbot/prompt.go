package chatbot

import (
	"fmt"
	"strings"

	"lexbot/config"
	"lexbot/types"
)

// systemPersona is embedded in every prompt variant so the model keeps a
// consistent voice across greeting and substantive turns.
const systemPersona = `You are Lexbot, a helpful, friendly, and knowledgeable legal assistant specializing in UK law.

**IMPORTANT CONVERSATION RULES:**
- Only greet the user with "Hello!" or similar if this is the very first message of the conversation
- For continuing conversations, respond naturally without repetitive greetings
- Build on previous conversation context when relevant
- Be conversational and helpful

**Conversation Style:**
- Be warm, approachable, and professional
- For casual greetings, respond naturally and ask how you can help
- For legal questions, provide comprehensive, professional answers
- Remember what was discussed earlier in the conversation

**Legal Expertise:**
You have access to current UK legislation, government guidance, legal case law, and professional legal practice guidance.

**When responding to legal questions:**
- Reference previous conversation context when relevant
- Prioritize recent legislation and official sources
- Cite specific Acts, sections, or statutory instruments when relevant
- Always cite your sources with URLs; if you cannot cite a source, give the link to the UK government website where the user can find the information themselves.`

var greetingKeywords = []string{
	"hello", "hi", "hey",
	"good morning", "good afternoon", "good evening",
	"how are you",
}

// IsGreeting classifies a query as a simple greeting: it contains one of the
// greeting keywords (case-insensitive) and has at most 3 tokens. This check
// alone decides which of the three prompt templates is used.
func IsGreeting(query string) bool {
	if len(strings.Fields(query)) > 3 {
		return false
	}
	lower := strings.ToLower(query)
	for _, kw := range greetingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Compose builds the generation prompt for a query given retrieved context
// and the session's recent history.
func Compose(query string, context []types.SearchResult, history []types.ChatMessage) string {
	if IsGreeting(query) {
		if len(history) == 0 {
			return firstContactPrompt(query)
		}
		return continuationPrompt(query, history)
	}
	return substantivePrompt(query, context, history)
}

func firstContactPrompt(query string) string {
	var b strings.Builder
	b.WriteString(systemPersona)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Current user message: %q\n\n", query)
	b.WriteString("This is the user's first message and it's a greeting. Welcome them warmly to Lexbot and ask how you can help with their legal questions today.")
	return b.String()
}

func continuationPrompt(query string, history []types.ChatMessage) string {
	var b strings.Builder
	b.WriteString(systemPersona)
	b.WriteString("\n\n")
	b.WriteString(historyBlock(history))
	fmt.Fprintf(&b, "\nCurrent user message: %q\n\n", query)
	b.WriteString("This is a casual greeting in an ongoing conversation. Respond naturally and ask what you can help with next, referencing our previous discussion if appropriate.")
	return b.String()
}

func substantivePrompt(query string, context []types.SearchResult, history []types.ChatMessage) string {
	var b strings.Builder
	b.WriteString(systemPersona)
	b.WriteString("\n\n")
	if h := historyBlock(history); h != "" {
		b.WriteString(h)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Current user question: %q\n", query)

	cb := contextBlock(context)
	if cb != "" {
		b.WriteString("\n")
		b.WriteString(cb)
		b.WriteString("\n")
	}

	b.WriteString("\nPlease provide a comprehensive answer. Build on our previous conversation where relevant. ")
	if cb != "" {
		b.WriteString("Include specific source citations when using the legal context above.")
	} else {
		b.WriteString("Provide helpful guidance based on your legal knowledge, and point the user to official UK sources where they can verify it.")
	}
	return b.String()
}

// historyBlock formats the most recent turns, capped at the history window.
func historyBlock(history []types.ChatMessage) string {
	if len(history) == 0 {
		return ""
	}
	recent := history
	if len(recent) > config.HistoryWindow {
		recent = recent[len(recent)-config.HistoryWindow:]
	}

	var b strings.Builder
	b.WriteString("**Previous conversation:**\n")
	for _, msg := range recent {
		role := "User"
		if msg.Role == types.RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, msg.Content)
	}
	return b.String()
}

// contextBlock formats retrieved records, capped at MaxContextItems. The
// no-results sentinel is filtered out so a total retrieval miss takes the
// general-knowledge path instead of being quoted as a source.
func contextBlock(context []types.SearchResult) string {
	var items []types.SearchResult
	for _, item := range context {
		if types.IsSentinel(item) {
			continue
		}
		items = append(items, item)
		if len(items) == config.MaxContextItems {
			break
		}
	}
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("[%s] %s\n%s\n(Source: %s)", item.Site, item.Title, item.Snippet, item.URL))
	}
	return "Available legal context:\n---\n" + strings.Join(parts, "\n\n") + "\n---"
}
