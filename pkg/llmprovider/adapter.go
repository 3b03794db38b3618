package llmprovider

import (
	"context"
	"strings"

	"learning-activity-agent/pkg/gemini"
	"learning-activity-agent/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. The same client
// serves every OpenAI-compatible backend, so name is carried separately.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reporting itself as name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      Message{Role: openai.RoleAssistant, Content: resp.Content},
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Embed implements Embedder.
func (a *OpenAIAdapter) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	vecs, err := a.client.Embed(ctx, inputs)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	return vecs, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the Provider interface. System messages
// are folded into the system instruction and assistant turns become model turns.
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter.
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	var system []string
	msgs := make([]gemini.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case openai.RoleSystem:
			system = append(system, m.Content)
		case openai.RoleAssistant:
			msgs = append(msgs, gemini.Message{Role: gemini.RoleModel, Text: m.Content})
		default:
			msgs = append(msgs, gemini.Message{Role: gemini.RoleUser, Text: m.Content})
		}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      strings.Join(system, "\n\n"),
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: openai.RoleAssistant, Content: resp.Text},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Embed implements Embedder.
func (a *GeminiAdapter) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	vecs, err := a.client.Embed(ctx, inputs)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	return vecs, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
