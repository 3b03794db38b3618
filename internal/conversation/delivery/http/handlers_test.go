package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"learning-activity-agent/internal/conversation"
	"learning-activity-agent/internal/conversation/memory"
	"learning-activity-agent/internal/middleware"
	"learning-activity-agent/pkg/log"
)

// mockEmbedder maps known texts to fixed vectors.
type mockEmbedder struct {
	vectors map[string][]float64
	err     error
}

func (m *mockEmbedder) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float64, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, m.vectors[in])
	}
	return out, nil
}

func setup(store conversation.Store, emb Embedder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), store, emb), middleware.New(log.NewNop(), 0))
	return r
}

func call(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, w.Body.String())
	}
	return resp.Data
}

func TestSessionLifecycle(t *testing.T) {
	store := memory.New()
	r := setup(store, nil)

	w := call(r, http.MethodPost, "/api/v1/conversations/sessions", `{"user_id":"u1","name":"math"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	s := decode[sessionResp](t, w)
	if s.ID == "" || s.UserID != "u1" {
		t.Fatalf("unexpected session: %+v", s)
	}

	w = call(r, http.MethodPost, "/api/v1/conversations/sessions/"+s.ID+"/messages", `{"role":"user","content":"Start Poem Reading"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	call(r, http.MethodPost, "/api/v1/conversations/sessions/"+s.ID+"/messages", `{"role":"assistant","content":"Starting the quiz"}`)

	w = call(r, http.MethodGet, "/api/v1/conversations/sessions/"+s.ID+"/messages", "")
	h := decode[historyResp](t, w)
	if len(h.Messages) != 2 || h.Messages[0].Role != "user" || h.Messages[1].Role != "assistant" {
		t.Fatalf("unexpected history: %+v", h.Messages)
	}

	w = call(r, http.MethodGet, "/api/v1/conversations/sessions/"+s.ID+"/search?q=poem", "")
	h = decode[historyResp](t, w)
	if len(h.Messages) != 1 || h.Messages[0].Content != "Start Poem Reading" {
		t.Fatalf("unexpected search hits: %+v", h.Messages)
	}

	w = call(r, http.MethodGet, "/api/v1/conversations/sessions?user_id=u1", "")
	l := decode[listSessionsResp](t, w)
	if len(l.Sessions) != 1 || l.Sessions[0].ID != s.ID {
		t.Fatalf("unexpected sessions: %+v", l.Sessions)
	}
}

func TestAddMessageValidation(t *testing.T) {
	store := memory.New()
	s, _ := store.CreateSession(context.Background(), "u1", "")
	r := setup(store, nil)

	w := call(r, http.MethodPost, "/api/v1/conversations/sessions/"+s.ID+"/messages", `{"role":"system","content":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid role: expected 400, got %d", w.Code)
	}

	w = call(r, http.MethodPost, "/api/v1/conversations/sessions/missing/messages", `{"role":"user","content":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session: expected 404, got %d", w.Code)
	}
}

func TestHistoryUnknownSession(t *testing.T) {
	r := setup(memory.New(), nil)

	w := call(r, http.MethodGet, "/api/v1/conversations/sessions/nope/messages", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSemanticSearch(t *testing.T) {
	store := memory.New()
	s, _ := store.CreateSession(context.Background(), "u1", "")
	emb := &mockEmbedder{vectors: map[string][]float64{
		"quiz about poems": {1, 0},
		"weather today":    {0, 1},
		"poetry":           {0.9, 0.1},
	}}
	r := setup(store, emb)

	for _, content := range []string{"quiz about poems", "weather today"} {
		w := call(r, http.MethodPost, "/api/v1/conversations/sessions/"+s.ID+"/messages",
			`{"role":"user","content":"`+content+`","embed":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("add %q: %d", content, w.Code)
		}
		if m := decode[messageResp](t, w); !m.Embedded {
			t.Fatalf("expected %q to be embedded", content)
		}
	}

	w := call(r, http.MethodGet, "/api/v1/conversations/sessions/"+s.ID+"/semantic?q=poetry&top_k=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	res := decode[semanticResp](t, w)
	if len(res.Results) != 1 || res.Results[0].Message.Content != "quiz about poems" {
		t.Fatalf("unexpected results: %+v", res.Results)
	}
}

func TestSemanticSearchWithoutEmbedder(t *testing.T) {
	store := memory.New()
	s, _ := store.CreateSession(context.Background(), "u1", "")
	r := setup(store, nil)

	w := call(r, http.MethodGet, "/api/v1/conversations/sessions/"+s.ID+"/semantic?q=poetry", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestAddMessageEmbedFailureStillStores(t *testing.T) {
	store := memory.New()
	s, _ := store.CreateSession(context.Background(), "u1", "")
	r := setup(store, &mockEmbedder{err: errors.New("provider down")})

	w := call(r, http.MethodPost, "/api/v1/conversations/sessions/"+s.ID+"/messages", `{"role":"user","content":"hi","embed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if m := decode[messageResp](t, w); m.Embedded {
		t.Error("message should be stored without a vector")
	}
}
