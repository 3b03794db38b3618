package evaluation

import "learning-activity-agent/internal/conversation"

// Input is what the evaluator sees about a learner.
type Input struct {
	UserID       string
	SessionID    string
	ActivityID   string
	ActivityName string
	History      []conversation.Message
}

// Output is a structured performance report. Scores are percentages.
type Output struct {
	OverallScore    int            `json:"overall_score"`
	Scores          map[string]int `json:"scores,omitempty"`
	Strengths       []string       `json:"strengths"`
	Recommendations []string       `json:"recommendations"`
	Summary         string         `json:"summary"`
}
