package gateway

import (
	"time"

	"learning-activity-agent/pkg/log"
)

type implGateway struct {
	gen     Generator
	timeout time.Duration
	l       log.Logger
}

var _ Gateway = (*implGateway)(nil)

// New creates a Gateway. A non-positive timeout falls back to DefaultTimeout.
func New(gen Generator, timeout time.Duration, l log.Logger) Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implGateway{
		gen:     gen,
		timeout: timeout,
		l:       l,
	}
}
