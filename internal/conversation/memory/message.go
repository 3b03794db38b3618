package memory

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"learning-activity-agent/internal/conversation"
)

func (s *implStore) AddMessage(ctx context.Context, input conversation.AddMessageInput) (conversation.Message, error) {
	if !input.Role.Valid() {
		return conversation.Message{}, conversation.ErrInvalidRole
	}
	entry, err := s.entry(input.SessionID)
	if err != nil {
		return conversation.Message{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	ts := s.now()
	// Keep timestamps non-decreasing even if the clock steps backwards.
	if n := len(entry.messages); n > 0 && ts.Before(entry.messages[n-1].Timestamp) {
		ts = entry.messages[n-1].Timestamp
	}

	msg := conversation.Message{
		ID:        uuid.NewString(),
		SessionID: input.SessionID,
		Role:      input.Role,
		Content:   input.Content,
		Timestamp: ts,
		Intent:    input.Intent,
		Topic:     input.Topic,
	}
	if len(input.Embedding) > 0 {
		msg.Embedding = append([]float64(nil), input.Embedding...)
	}

	entry.messages = append(entry.messages, msg)
	entry.session.UpdatedAt = ts
	return msg, nil
}

func (s *implStore) GetHistory(ctx context.Context, sessionID string) ([]conversation.Message, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return append([]conversation.Message(nil), entry.messages...), nil
}

// FuzzySearch returns messages whose content contains term, ignoring case.
func (s *implStore) FuzzySearch(ctx context.Context, sessionID, term string) ([]conversation.Message, error) {
	history, err := s.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var out []conversation.Message
	for _, m := range history {
		if strings.Contains(strings.ToLower(m.Content), needle) {
			out = append(out, m)
		}
	}
	return out, nil
}

// SemanticSearch ranks embedded messages by cosine similarity to query.
func (s *implStore) SemanticSearch(ctx context.Context, sessionID string, query []float64, topK int) ([]conversation.ScoredMessage, error) {
	history, err := s.GetHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	var results []conversation.ScoredMessage
	for _, m := range history {
		if len(m.Embedding) == 0 || len(m.Embedding) != len(query) {
			continue
		}
		results = append(results, conversation.ScoredMessage{Message: m, Score: cosine(query, m.Embedding)})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return dot / (math.Sqrt(na)*math.Sqrt(nb) + 1e-8)
}
