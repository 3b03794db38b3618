package http

import (
	"context"

	"learning-activity-agent/internal/conversation"
	"learning-activity-agent/pkg/log"
)

// Embedder turns texts into vectors. *llmprovider.Manager satisfies it.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}

type handler struct {
	l        log.Logger
	store    conversation.Store
	embedder Embedder
}

// New creates the HTTP handler for conversation memory. embedder may be nil,
// in which case messages are stored without vectors and semantic search is
// unavailable.
func New(l log.Logger, store conversation.Store, embedder Embedder) *handler {
	return &handler{
		l:        l,
		store:    store,
		embedder: embedder,
	}
}
