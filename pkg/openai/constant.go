package openai

import "time"

const (
	// DefaultBaseURL is the public OpenAI endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when the config leaves Model empty.
	DefaultModel = "gpt-4o-mini"

	// DefaultEmbeddingModel is used by Embed when no model is configured.
	DefaultEmbeddingModel = "text-embedding-3-small"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultAzureAPIVersion is the Azure OpenAI REST API version.
	DefaultAzureAPIVersion = "2024-06-01"
)

// Well-known OpenAI-compatible endpoints.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	responseFormatJSON = "json_object"
)
