package router

import (
	"context"

	"learning-activity-agent/internal/gateway"
	"learning-activity-agent/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, message string, conversationHistory []string) (Classification, error)
}

// SemanticRouter classifies user intent using the LLM gateway
type SemanticRouter struct {
	llm        gateway.Gateway
	spellCheck bool
	l          log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm gateway.Gateway, spellCheck bool, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm:        llm,
		spellCheck: spellCheck,
		l:          l,
	}
}
