package http

import (
	"learning-activity-agent/internal/conversation"
	"learning-activity-agent/pkg/response"
)

const (
	defaultTopK = 5
	maxTopK     = 50
)

// --- Request DTOs ---

type createSessionReq struct {
	UserID string `json:"user_id" binding:"required,max=255"`
	Name   string `json:"name"    binding:"max=255"`
}

type listSessionsReq struct {
	UserID string `form:"user_id" binding:"required"`
}

type addMessageReq struct {
	SessionID string `json:"-"`
	Role      string `json:"role"    binding:"required,oneof=user assistant"`
	Content   string `json:"content" binding:"required"`
	Intent    string `json:"intent"`
	Topic     string `json:"topic"`
	Embed     bool   `json:"embed"`
}

func (r addMessageReq) toInput(embedding []float64) conversation.AddMessageInput {
	return conversation.AddMessageInput{
		SessionID: r.SessionID,
		Role:      conversation.Role(r.Role),
		Content:   r.Content,
		Intent:    r.Intent,
		Topic:     r.Topic,
		Embedding: embedding,
	}
}

type searchReq struct {
	SessionID string `form:"-"`
	Query     string `form:"q"     binding:"required"`
	TopK      int    `form:"top_k"`
}

func (r searchReq) topK() int {
	if r.TopK <= 0 {
		return defaultTopK
	}
	if r.TopK > maxTopK {
		return maxTopK
	}
	return r.TopK
}

// --- Response DTOs ---

type sessionResp struct {
	ID        string            `json:"session_id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newSessionResp(s conversation.Session) sessionResp {
	return sessionResp{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.Name,
		CreatedAt: response.DateTime(s.CreatedAt),
		UpdatedAt: response.DateTime(s.UpdatedAt),
	}
}

type messageResp struct {
	ID        string            `json:"message_id"`
	SessionID string            `json:"session_id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Intent    string            `json:"intent,omitempty"`
	Topic     string            `json:"topic,omitempty"`
	Embedded  bool              `json:"embedded"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newMessageResp(m conversation.Message) messageResp {
	return messageResp{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      string(m.Role),
		Content:   m.Content,
		Intent:    m.Intent,
		Topic:     m.Topic,
		Embedded:  len(m.Embedding) > 0,
		Timestamp: response.DateTime(m.Timestamp),
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
}

func newHistoryResp(msgs []conversation.Message) historyResp {
	out := make([]messageResp, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, newMessageResp(m))
	}
	return historyResp{Messages: out}
}

type scoredMessageResp struct {
	Message messageResp `json:"message"`
	Score   float64     `json:"score"`
}

type semanticResp struct {
	Results []scoredMessageResp `json:"results"`
}
