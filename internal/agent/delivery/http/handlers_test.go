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

	"learning-activity-agent/internal/agent"
	"learning-activity-agent/internal/middleware"
	"learning-activity-agent/pkg/log"
	"learning-activity-agent/pkg/response"
)

type mockAgent struct {
	got  agent.Request
	resp agent.Response
	err  error
}

func (m *mockAgent) RunAgent(ctx context.Context, req agent.Request) (agent.Response, error) {
	m.got = req
	return m.resp, m.err
}

func setup(a agent.Agent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), a), middleware.New(log.NewNop(), 0))
	return r
}

func post(r *gin.Engine, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	m := &mockAgent{resp: agent.Response{
		SessionID:  "s1",
		Intent:     "start-activity",
		Confidence: 0.9,
		Result:     map[string]any{"message": "Starting Poem Reading"},
	}}
	r := setup(m)

	w := post(r, `{"prompt":"start poem reading","user_id":"u1","details":{"level":"easy"}}`,
		map[string]string{"Authorization": "Bearer tok"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if m.got.UserID != "u1" || m.got.Prompt != "start poem reading" {
		t.Errorf("unexpected request forwarded: %+v", m.got)
	}
	if m.got.Token != "tok" {
		t.Errorf("expected bearer token to be forwarded, got %q", m.got.Token)
	}
	if m.got.Details["level"] != "easy" {
		t.Errorf("expected details to be forwarded, got %v", m.got.Details)
	}

	var resp struct {
		ErrorCode int      `json:"error_code"`
		Data      chatResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.SessionID != "s1" || resp.Data.Intent != "start-activity" {
		t.Errorf("unexpected response: %+v", resp.Data)
	}
	if resp.Data.Result["message"] != "Starting Poem Reading" {
		t.Errorf("unexpected result: %v", resp.Data.Result)
	}
}

func TestChatMissingUserID(t *testing.T) {
	r := setup(&mockAgent{err: agent.ErrMissingUserID})

	w := post(r, `{"prompt":"hello"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != agent.ErrMissingUserID.Error() {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestChatInvalidBody(t *testing.T) {
	m := &mockAgent{}
	r := setup(m)

	w := post(r, `{"user_id":"u1"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if m.got.UserID != "" {
		t.Error("agent should not be called for an invalid body")
	}
}

func TestChatInternalError(t *testing.T) {
	r := setup(&mockAgent{err: errors.New("boom")})

	w := post(r, `{"prompt":"hi","user_id":"u1"}`, nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
