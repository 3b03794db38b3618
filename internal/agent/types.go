package agent

// Request is one user turn. Token is forwarded opaque to the Activity service.
type Request struct {
	Prompt  string         `json:"prompt"`
	Details map[string]any `json:"details,omitempty"`
	UserID  string         `json:"user_id"`
	Token   string         `json:"-"`
}

// Response is the outcome of one turn. Failures inside a handler surface as
// Result["error"], never as a Go error.
type Response struct {
	SessionID     string         `json:"session_id"`
	Intent        string         `json:"intent"`
	Confidence    float64        `json:"confidence"`
	CorrectedText string         `json:"corrected_text,omitempty"`
	Result        map[string]any `json:"result"`
	Error         string         `json:"error,omitempty"`
}
