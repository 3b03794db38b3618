package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"learning-activity-agent/pkg/openai"
	"learning-activity-agent/pkg/retry"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer auth")
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-test",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"intent":"greetings"}`}, "finish_reason": "stop"},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	defer ts.Close()

	c, err := openai.New(openai.Config{APIKey: "test-key", Model: "gpt-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: openai.RoleUser, Content: "hi"}},
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Content != `{"intent":"greetings"}` {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
	rf, ok := got["response_format"].(map[string]any)
	if !ok || rf["type"] != "json_object" {
		t.Errorf("expected json_object response_format, got %v", got["response_format"])
	}
	if got["model"] != "gpt-test" {
		t.Errorf("expected model in body, got %v", got["model"])
	}
}

func TestGenerateContent_StatusErrorIsClassified(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer ts.Close()

	c, _ := openai.New(openai.Config{APIKey: "k", BaseURL: ts.URL})
	_, err := c.GenerateContent(context.Background(), &openai.Request{})

	var se *retry.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusTooManyRequests || se.Body != "slow down" {
		t.Errorf("unexpected status error %+v", se)
	}
	if !retry.DefaultPolicy().IsTransient(err) {
		t.Errorf("429 should be transient")
	}
}

func TestAzureRouting(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/deployments/my-deploy/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api-version") == "" {
			t.Errorf("missing api-version")
		}
		if r.Header.Get("api-key") != "azure-key" {
			t.Errorf("missing api-key header")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	}))
	defer ts.Close()

	c, err := openai.New(openai.Config{APIKey: "azure-key", Model: "my-deploy", BaseURL: ts.URL, Azure: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp, err := c.GenerateContent(context.Background(), &openai.Request{})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Content != "ok" || resp.Model != "my-deploy" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestEmbed_ReordersByIndex(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 1, "embedding": []float64{0, 1}},
				{"index": 0, "embedding": []float64{1, 0}},
			},
		})
	}))
	defer ts.Close()

	c, _ := openai.New(openai.Config{APIKey: "k", BaseURL: ts.URL})
	vecs, err := c.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if vecs[0][0] != 1 || vecs[1][1] != 1 {
		t.Errorf("embeddings not ordered by index: %v", vecs)
	}
}

func TestConfigValidate(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := openai.New(openai.Config{APIKey: "k", Azure: true}); err == nil {
		t.Error("expected error for azure without base url")
	}
}
