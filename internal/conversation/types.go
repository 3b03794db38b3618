package conversation

import "time"

// Role is the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Session is one user's conversation.
type Session struct {
	ID        string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message belongs to exactly one Session and is never mutated after append.
type Message struct {
	ID        string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Embedding []float64 `json:"embedding,omitempty"`
	Intent    string    `json:"intent,omitempty"`
	Topic     string    `json:"topic,omitempty"`
}

// AddMessageInput is the input for Store.AddMessage.
type AddMessageInput struct {
	SessionID string
	Role      Role
	Content   string
	Intent    string
	Topic     string
	Embedding []float64
}

// ScoredMessage is a semantic search hit.
type ScoredMessage struct {
	Message Message `json:"message"`
	Score   float64 `json:"score"`
}
