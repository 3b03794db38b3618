package gemini

import "time"

const (
	// DefaultModel is used when the config leaves Model empty.
	DefaultModel = "gemini-2.5-flash"

	// DefaultEmbeddingModel is used by Embed when no model is configured.
	DefaultEmbeddingModel = "text-embedding-004"

	// DefaultAPIURL is the Generative Language API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

const (
	RoleUser  = "user"
	RoleModel = "model"

	mimeTypeJSON = "application/json"
	apiKeyHeader = "x-goog-api-key"
)
