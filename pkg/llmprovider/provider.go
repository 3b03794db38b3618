package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "azure")
	Name() string

	// Model returns the model being used
	Model() string
}

// Embedder is implemented by providers that can produce text embeddings.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}

// Request represents a normalized LLM generation request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool // ask the provider for a JSON object response
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text returns the response text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return r.Content.Content
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
