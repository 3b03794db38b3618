package middleware

import (
	"learning-activity-agent/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the middleware set. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(ratePerMin),
	}
}
