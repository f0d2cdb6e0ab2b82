package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"lexbot/types"

	"github.com/google/uuid"
)

// ErrSessionNotFound covers unknown sessions, deactivated sessions, and
// sessions owned by a different user. The three cases are deliberately
// indistinguishable so callers cannot enumerate other users' sessions.
var ErrSessionNotFound = errors.New("session not found")

// sessionState pairs a session's data with the mutex that serializes
// mutations of that one session. Distinct sessions mutate independently.
type sessionState struct {
	mu   sync.Mutex
	data types.ChatSession
}

// Store is an in-memory registry of chat sessions and their message
// histories. State lives for the process lifetime only: restarts lose all
// sessions. Safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	sessions     map[string]*sessionState
	userSessions map[string][]string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions:     make(map[string]*sessionState),
		userSessions: make(map[string][]string),
	}
}

// CreateSession registers a new active session for the user and returns its
// id. Ids are uuids and are never reused.
func (s *Store) CreateSession(userID, title string) string {
	id := uuid.NewString()
	now := time.Now()

	st := &sessionState{
		data: types.ChatSession{
			ID:        id,
			UserID:    userID,
			Title:     title,
			Messages:  []types.ChatMessage{},
			CreatedAt: now,
			UpdatedAt: now,
			IsActive:  true,
		},
	}

	s.mu.Lock()
	s.sessions[id] = st
	s.userSessions[userID] = append(s.userSessions[userID], id)
	s.mu.Unlock()

	return id
}

// GetSession returns a copy of the session, but only if it exists, belongs
// to userID, and is active.
func (s *Store) GetSession(sessionID, userID string) (*types.ChatSession, error) {
	st := s.lookup(sessionID)
	if st == nil {
		return nil, ErrSessionNotFound
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.data.UserID != userID || !st.data.IsActive {
		return nil, ErrSessionNotFound
	}
	sess := copySession(&st.data)
	return &sess, nil
}

// AddMessage appends a message to the session and bumps its UpdatedAt.
// Unknown sessions fail with ErrSessionNotFound; callers must create the
// session first.
func (s *Store) AddMessage(sessionID, content string, role types.Role) (string, error) {
	st := s.lookup(sessionID)
	if st == nil {
		return "", ErrSessionNotFound
	}

	now := time.Now()
	msg := types.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Content:   content,
		Role:      role,
		CreatedAt: now,
	}

	st.mu.Lock()
	st.data.Messages = append(st.data.Messages, msg)
	st.data.UpdatedAt = now
	st.mu.Unlock()

	return msg.ID, nil
}

// History returns the most recent limit messages in chronological order.
// Unknown sessions yield an empty slice.
func (s *Store) History(sessionID string, limit int) []types.ChatMessage {
	st := s.lookup(sessionID)
	if st == nil {
		return []types.ChatMessage{}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	msgs := st.data.Messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]types.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// ListSessions returns up to limit active sessions for the user, most
// recently updated first.
func (s *Store) ListSessions(userID string, limit int) []*types.ChatSession {
	s.mu.RLock()
	ids := make([]string, len(s.userSessions[userID]))
	copy(ids, s.userSessions[userID])
	s.mu.RUnlock()

	var out []*types.ChatSession
	for _, id := range ids {
		st := s.lookup(id)
		if st == nil {
			continue
		}
		st.mu.Lock()
		if st.data.IsActive {
			sess := copySession(&st.data)
			out = append(out, &sess)
		}
		st.mu.Unlock()
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DeactivateSession soft-deletes a session. Deactivated sessions are
// excluded from all reads but never physically removed.
func (s *Store) DeactivateSession(sessionID, userID string) error {
	st := s.lookup(sessionID)
	if st == nil {
		return ErrSessionNotFound
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.data.UserID != userID || !st.data.IsActive {
		return ErrSessionNotFound
	}
	st.data.IsActive = false
	st.data.UpdatedAt = time.Now()
	return nil
}

func (s *Store) lookup(sessionID string) *sessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID]
}

// copySession snapshots a session, including its message slice, so internal
// state never escapes the store's locks.
func copySession(src *types.ChatSession) types.ChatSession {
	sess := *src
	sess.Messages = make([]types.ChatMessage, len(src.Messages))
	copy(sess.Messages, src.Messages)
	return sess
}
