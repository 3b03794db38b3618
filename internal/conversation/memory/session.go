package memory

import (
	"context"

	"github.com/google/uuid"

	"learning-activity-agent/internal/conversation"
)

func (s *implStore) GetOrCreateSession(ctx context.Context, userID string) (conversation.Session, error) {
	if userID == "" {
		return conversation.Session{}, conversation.ErrEmptyUserID
	}

	s.mu.RLock()
	if id, ok := s.current[userID]; ok {
		entry := s.sessions[id]
		s.mu.RUnlock()
		return entry.snapshot(), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have created it between the locks.
	if id, ok := s.current[userID]; ok {
		return s.sessions[id].snapshot(), nil
	}
	return s.createLocked(userID, ""), nil
}

func (s *implStore) CreateSession(ctx context.Context, userID, name string) (conversation.Session, error) {
	if userID == "" {
		return conversation.Session{}, conversation.ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(userID, name), nil
}

func (s *implStore) GetSession(ctx context.Context, sessionID string) (conversation.Session, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return conversation.Session{}, err
	}
	return entry.snapshot(), nil
}

func (s *implStore) ListSessions(ctx context.Context, userID string) ([]conversation.Session, error) {
	s.mu.RLock()
	ids := s.byUser[userID]
	entries := make([]*sessionEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, s.sessions[id])
	}
	s.mu.RUnlock()

	out := make([]conversation.Session, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.snapshot())
	}
	return out, nil
}

// createLocked must be called with s.mu held for writing.
func (s *implStore) createLocked(userID, name string) conversation.Session {
	id := uuid.NewString()
	if name == "" {
		name = id
	}
	now := s.now()
	entry := &sessionEntry{
		session: conversation.Session{
			ID:        id,
			UserID:    userID,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	s.sessions[id] = entry
	s.current[userID] = id
	s.byUser[userID] = append(s.byUser[userID], id)
	return entry.session
}

func (s *implStore) entry(sessionID string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, conversation.ErrSessionNotFound
	}
	return entry, nil
}

func (e *sessionEntry) snapshot() conversation.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}
