package conversation

import "context"

// Store is the per-user conversation ledger.
type Store interface {
	// GetOrCreateSession returns the user's current session, creating one on first use.
	GetOrCreateSession(ctx context.Context, userID string) (Session, error)
	// CreateSession always starts a fresh session, which becomes the user's current one.
	CreateSession(ctx context.Context, userID, name string) (Session, error)
	GetSession(ctx context.Context, sessionID string) (Session, error)
	ListSessions(ctx context.Context, userID string) ([]Session, error)

	AddMessage(ctx context.Context, input AddMessageInput) (Message, error)
	GetHistory(ctx context.Context, sessionID string) ([]Message, error)
	FuzzySearch(ctx context.Context, sessionID, term string) ([]Message, error)
	SemanticSearch(ctx context.Context, sessionID string, query []float64, topK int) ([]ScoredMessage, error)
}
