package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lexbot/session"
	"lexbot/types"
)

type stubRetriever struct {
	results  []types.SearchResult
	deepened bool
}

func (s *stubRetriever) FetchContext(ctx context.Context, query string) []types.SearchResult {
	if s.results == nil {
		return []types.SearchResult{types.Sentinel()}
	}
	return s.results
}

func (s *stubRetriever) Deepen(results []types.SearchResult, n int) {
	s.deepened = true
}

type stubGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestAskCreatesSessionAndStoresTurn(t *testing.T) {
	store := session.NewStore()
	gen := &stubGenerator{reply: "The limitation period is six years."}
	bot := New(store, &stubRetriever{}, gen, nil)

	result, err := bot.Ask(context.Background(), "user-1", "", "what is the limitation period for breach of contract")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if result.Reply != gen.reply {
		t.Errorf("reply = %q; want %q", result.Reply, gen.reply)
	}
	if result.SessionID == "" || result.MessageID == "" {
		t.Fatal("Ask returned empty ids")
	}

	history := store.History(result.SessionID, 20)
	if len(history) != 2 {
		t.Fatalf("history length = %d; want 2 (user + assistant)", len(history))
	}
	if history[0].Role != types.RoleUser || history[1].Role != types.RoleAssistant {
		t.Errorf("history roles = %s,%s; want user,assistant", history[0].Role, history[1].Role)
	}
	if history[1].ID != result.MessageID {
		t.Error("returned message id is not the stored assistant message")
	}
}

func TestAskUnknownSession(t *testing.T) {
	store := session.NewStore()
	bot := New(store, &stubRetriever{}, &stubGenerator{reply: "x"}, nil)

	if _, err := bot.Ask(context.Background(), "user-1", "nope", "hi"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("Ask with unknown session = %v; want ErrSessionNotFound", err)
	}
}

func TestAskForeignSession(t *testing.T) {
	store := session.NewStore()
	id := store.CreateSession("user-1", "mine")
	bot := New(store, &stubRetriever{}, &stubGenerator{reply: "x"}, nil)

	if _, err := bot.Ask(context.Background(), "user-2", id, "hi"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("Ask with foreign session = %v; want ErrSessionNotFound", err)
	}
}

func TestAskGeneratorFailureYieldsApology(t *testing.T) {
	store := session.NewStore()
	bot := New(store, &stubRetriever{}, &stubGenerator{err: errors.New("api down")}, nil)

	result, err := bot.Ask(context.Background(), "user-1", "", "hello")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if result.Reply != apologyReply {
		t.Errorf("reply = %q; want fixed apology", result.Reply)
	}

	// The apology is stored like any other assistant turn
	history := store.History(result.SessionID, 20)
	if len(history) != 2 || history[1].Content != apologyReply {
		t.Error("apology reply was not stored in the session")
	}
}

func TestAskTruncatesTitle(t *testing.T) {
	store := session.NewStore()
	bot := New(store, &stubRetriever{}, &stubGenerator{reply: "x"}, nil)

	long := strings.Repeat("a", 80)
	result, err := bot.Ask(context.Background(), "user-1", "", long)
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}

	sess, err := store.GetSession(result.SessionID, "user-1")
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	want := strings.Repeat("a", 50) + "..."
	if sess.Title != want {
		t.Errorf("title = %q (len %d); want 50 chars + ellipsis", sess.Title, len(sess.Title))
	}
}

func TestAskDeepensOnlySubstantiveQueries(t *testing.T) {
	store := session.NewStore()

	greetRet := &stubRetriever{}
	bot := New(store, greetRet, &stubGenerator{reply: "x"}, nil)
	if _, err := bot.Ask(context.Background(), "user-1", "", "hi"); err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if greetRet.deepened {
		t.Error("greeting turn should not deepen context")
	}

	subRet := &stubRetriever{}
	bot = New(store, subRet, &stubGenerator{reply: "x"}, nil)
	if _, err := bot.Ask(context.Background(), "user-1", "", "is a verbal contract binding"); err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if !subRet.deepened {
		t.Error("substantive turn should deepen context")
	}
}

func TestAskContinuesExistingSession(t *testing.T) {
	store := session.NewStore()
	gen := &stubGenerator{reply: "x"}
	bot := New(store, &stubRetriever{}, gen, nil)

	first, err := bot.Ask(context.Background(), "user-1", "", "what is probate")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if _, err := bot.Ask(context.Background(), "user-1", first.SessionID, "and how long does it take"); err != nil {
		t.Fatalf("Ask error: %v", err)
	}

	if len(store.History(first.SessionID, 20)) != 4 {
		t.Error("second turn did not append to the same session")
	}
	if !strings.Contains(gen.lastPrompt, "what is probate") {
		t.Error("second prompt missing prior turn from history")
	}
}
