package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"learning-activity-agent/pkg/retry"
)

type client struct {
	cfg Config
}

func newClient(cfg Config) *client {
	return &client{cfg: cfg}
}

// GenerateContent sends a chat completion request.
func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body := chatRequest{
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if !c.cfg.Azure {
		body.Model = c.cfg.Model
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: responseFormatJSON}
	}

	var out chatResponse
	if err := c.post(ctx, c.endpoint("chat/completions", c.cfg.Model), body, &out); err != nil {
		return nil, err
	}

	resp := &Response{
		Model: out.Model,
		Usage: Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}
	if len(out.Choices) > 0 {
		resp.Content = out.Choices[0].Message.Content
		resp.FinishReason = out.Choices[0].FinishReason
	}
	if resp.Model == "" {
		resp.Model = c.cfg.Model
	}
	return resp, nil
}

// Embed returns one embedding per input.
func (c *client) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	body := embeddingRequest{Input: inputs}
	if !c.cfg.Azure {
		body.Model = c.cfg.EmbeddingModel
	}

	var out embeddingResponse
	if err := c.post(ctx, c.endpoint("embeddings", c.cfg.EmbeddingModel), body, &out); err != nil {
		return nil, err
	}
	if len(out.Data) != len(inputs) {
		return nil, fmt.Errorf("openai: expected %d embeddings, got %d", len(inputs), len(out.Data))
	}

	sort.Slice(out.Data, func(i, j int) bool { return out.Data[i].Index < out.Data[j].Index })
	vectors := make([][]float64, len(out.Data))
	for i, d := range out.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

// Model returns the chat model being used.
func (c *client) Model() string {
	return c.cfg.Model
}

func (c *client) endpoint(path, deployment string) string {
	if !c.cfg.Azure {
		return c.cfg.BaseURL + "/" + path
	}
	q := url.Values{}
	q.Set("api-version", c.cfg.AzureAPIVersion)
	return fmt.Sprintf("%s/openai/deployments/%s/%s?%s",
		c.cfg.BaseURL, url.PathEscape(deployment), path, q.Encode())
}

func (c *client) post(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.Azure {
		httpReq.Header.Set("api-key", c.cfg.APIKey)
	} else {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(raw)
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return fmt.Errorf("openai: %w", &retry.StatusError{StatusCode: resp.StatusCode, Body: msg})
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("openai: failed to decode response: %w", err)
	}
	return nil
}
