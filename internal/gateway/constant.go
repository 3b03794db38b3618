package gateway

import "time"

const (
	LogPrefixComplete = "internal.gateway.Complete"
)

const (
	// FallbackTextKey holds the raw model output when JSON parsing failed.
	FallbackTextKey = "text"

	DefaultTimeout = 10 * time.Second

	PromptJSONOnly = "You are a backend service. Respond with a single valid JSON object only. Do not wrap it in markdown and do not add any text before or after it."
)
