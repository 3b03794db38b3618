package memory

import (
	"sync"
	"time"

	"learning-activity-agent/internal/conversation"
)

const defaultTopK = 5

type sessionEntry struct {
	mu       sync.Mutex
	session  conversation.Session
	messages []conversation.Message
}

type implStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	current  map[string]string   // userID -> sessionID
	byUser   map[string][]string // userID -> sessionIDs in creation order
	now      func() time.Time
}

// Option customizes the store.
type Option func(*implStore)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *implStore) { s.now = now }
}

// New creates an in-memory conversation store. Sessions and messages live for
// the lifetime of the process; there is no eviction.
func New(opts ...Option) conversation.Store {
	s := &implStore{
		sessions: make(map[string]*sessionEntry),
		current:  make(map[string]string),
		byUser:   make(map[string][]string),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
