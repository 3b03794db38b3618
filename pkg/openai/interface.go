package openai

import "context"

// IOpenAI is an OpenAI-compatible chat and embeddings client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// GenerateContent sends a chat completion request.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Embed returns one embedding per input, in input order.
	Embed(ctx context.Context, inputs []string) ([][]float64, error)

	// Model returns the chat model being used.
	Model() string
}

// New creates a new client with the given configuration.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
