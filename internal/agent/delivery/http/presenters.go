package http

import (
	"learning-activity-agent/internal/agent"
)

// --- Request DTOs ---

type chatReq struct {
	Prompt  string         `json:"prompt"  binding:"required,max=4000"`
	Details map[string]any `json:"details"`
	UserID  string         `json:"user_id" binding:"max=255"`
}

func (r chatReq) toInput(token string) agent.Request {
	return agent.Request{
		Prompt:  r.Prompt,
		Details: r.Details,
		UserID:  r.UserID,
		Token:   token,
	}
}

// --- Response DTOs ---

type chatResp struct {
	SessionID     string         `json:"session_id"`
	Intent        string         `json:"intent"`
	Confidence    float64        `json:"confidence"`
	CorrectedText string         `json:"corrected_text,omitempty"`
	Result        map[string]any `json:"result"`
	Error         string         `json:"error,omitempty"`
}

func (h *handler) newChatResp(o agent.Response) chatResp {
	return chatResp{
		SessionID:     o.SessionID,
		Intent:        o.Intent,
		Confidence:    o.Confidence,
		CorrectedText: o.CorrectedText,
		Result:        o.Result,
		Error:         o.Error,
	}
}
