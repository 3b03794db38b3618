package gemini

import "context"

// IGemini is a Gemini chat and embeddings client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Embed returns one embedding per input, in input order.
	Embed(ctx context.Context, inputs []string) ([][]float64, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Gemini client with the given configuration.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
