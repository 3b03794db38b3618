package usecase

import (
	"learning-activity-agent/internal/evaluation"
	"learning-activity-agent/internal/gateway"
	"learning-activity-agent/pkg/log"
)

type implUseCase struct {
	llm gateway.Gateway
	l   log.Logger
}

var _ evaluation.Evaluator = (*implUseCase)(nil)

// New creates an LLM-backed evaluator.
func New(llm gateway.Gateway, l log.Logger) evaluation.Evaluator {
	return &implUseCase{llm: llm, l: l}
}
