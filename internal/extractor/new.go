package extractor

import (
	"context"

	"learning-activity-agent/internal/gateway"
	"learning-activity-agent/pkg/log"
)

// Extractor turns an utterance into per-intent slots. It never fails: model
// errors degrade to a best-effort result built from the raw text.
type Extractor interface {
	ExtractStart(ctx context.Context, text string) StartSlots
	ExtractCreate(ctx context.Context, text string) CreateSlots
	ExtractListFilters(ctx context.Context, text string) ListFilters
}

type implExtractor struct {
	llm gateway.Gateway
	l   log.Logger
}

var _ Extractor = (*implExtractor)(nil)

func New(llm gateway.Gateway, l log.Logger) Extractor {
	return &implExtractor{llm: llm, l: l}
}
