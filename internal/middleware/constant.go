package middleware

import "time"

const (
	// HeaderUserID identifies the caller for rate limiting when present.
	HeaderUserID = "X-User-ID"

	// ContextKeyToken holds the bearer token extracted by Token.
	ContextKeyToken = "auth_token"

	bearerPrefix = "Bearer "

	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute
)
