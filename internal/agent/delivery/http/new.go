package http

import (
	"learning-activity-agent/internal/agent"
	"learning-activity-agent/pkg/log"
)

type handler struct {
	l     log.Logger
	agent agent.Agent
}

// New creates the HTTP handler for the agent chat endpoint.
func New(l log.Logger, a agent.Agent) *handler {
	return &handler{
		l:     l,
		agent: a,
	}
}
