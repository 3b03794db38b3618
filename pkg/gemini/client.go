package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"learning-activity-agent/pkg/retry"
)

type client struct {
	cfg Config
}

func newClient(cfg Config) *client {
	return &client{cfg: cfg}
}

// GenerateContent sends a generateContent request.
func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body := generateRequest{Contents: make([]content, 0, len(req.Messages))}
	if req.System != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.System}}}
	}
	for _, m := range req.Messages {
		body.Contents = append(body.Contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 || req.JSONMode {
		body.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
		if req.JSONMode {
			body.GenerationConfig.ResponseMimeType = mimeTypeJSON
		}
	}

	var out generateResponse
	if err := c.post(ctx, c.modelURL(c.cfg.Model, "generateContent"), body, &out); err != nil {
		return nil, err
	}

	resp := &Response{
		Usage: Usage{
			InputTokens:  out.UsageMetadata.PromptTokenCount,
			OutputTokens: out.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  out.UsageMetadata.TotalTokenCount,
		},
	}
	if len(out.Candidates) > 0 {
		var sb strings.Builder
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
		resp.Text = sb.String()
		resp.FinishReason = out.Candidates[0].FinishReason
	}
	return resp, nil
}

// Embed calls batchEmbedContents with one request per input.
func (c *client) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	model := "models/" + c.cfg.EmbeddingModel
	body := batchEmbedRequest{Requests: make([]embedRequest, len(inputs))}
	for i, in := range inputs {
		body.Requests[i] = embedRequest{Model: model, Content: content{Parts: []part{{Text: in}}}}
	}

	var out batchEmbedResponse
	if err := c.post(ctx, c.modelURL(c.cfg.EmbeddingModel, "batchEmbedContents"), body, &out); err != nil {
		return nil, err
	}
	if len(out.Embeddings) != len(inputs) {
		return nil, fmt.Errorf("gemini: expected %d embeddings, got %d", len(inputs), len(out.Embeddings))
	}

	vectors := make([][]float64, len(out.Embeddings))
	for i, e := range out.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

// Model returns the model being used.
func (c *client) Model() string {
	return c.cfg.Model
}

func (c *client) modelURL(model, method string) string {
	return fmt.Sprintf("%s/models/%s:%s", c.cfg.APIURL, model, method)
}

func (c *client) post(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.cfg.APIKey)

	resp, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gemini: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(raw)
		var errResp errorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return fmt.Errorf("gemini: %w", &retry.StatusError{StatusCode: resp.StatusCode, Body: msg})
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return nil
}
