package gateway

import (
	"context"

	"learning-activity-agent/pkg/llmprovider"
)

// Gateway is the single entry point for model completions used by the
// routing pipeline.
type Gateway interface {
	Complete(ctx context.Context, input Input) (Completion, error)
}

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
