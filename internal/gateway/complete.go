package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"learning-activity-agent/pkg/llmprovider"
	"learning-activity-agent/pkg/openai"
)

// Complete sends one request through the provider manager. Transport errors
// are returned as is; retries happen inside the manager. A blank text reply is
// ErrEmptyResponse, while in JSON mode it takes the {"text": raw} fallback.
func (g *implGateway) Complete(ctx context.Context, input Input) (Completion, error) {
	msgs := input.Messages
	if len(msgs) == 0 {
		if strings.TrimSpace(input.Prompt) == "" {
			return Completion{}, ErrEmptyInput
		}
		msgs = []llmprovider.Message{{Role: openai.RoleUser, Content: input.Prompt}}
	}
	if input.JSONMode {
		msgs = append([]llmprovider.Message{{Role: openai.RoleSystem, Content: PromptJSONOnly}}, msgs...)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.gen.GenerateContent(ctx, &llmprovider.Request{
		Messages:    msgs,
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
		JSONMode:    input.JSONMode,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("%s: %w", LogPrefixComplete, err)
	}

	raw := resp.Text()
	if !input.JSONMode {
		if strings.TrimSpace(raw) == "" {
			return Completion{}, ErrEmptyResponse
		}
		return Completion{Raw: raw}, nil
	}
	return parseJSON(raw), nil
}

// parseJSON never fails: unparseable output is wrapped as {"text": raw}.
func parseJSON(raw string) Completion {
	cleaned := sanitizeJSONResponse(raw)
	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil || obj == nil {
		return Completion{
			Raw:  raw,
			JSON: map[string]any{FallbackTextKey: raw},
		}
	}
	return Completion{Raw: raw, JSON: obj, Parsed: true}
}
