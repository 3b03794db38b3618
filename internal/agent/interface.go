package agent

import "context"

// Agent runs the classify, extract, resolve and dispatch pipeline for one turn.
type Agent interface {
	RunAgent(ctx context.Context, req Request) (Response, error)
}
