package resolver

import "learning-activity-agent/internal/activity"

// Status is the outcome of a resolution. Exactly one applies per Result.
type Status string

const (
	StatusResolved           Status = "resolved"
	StatusNeedsClarification Status = "need_clarification"
	StatusNotFound           Status = "not_found"
)

// Query is what the resolver knows about the activity the user means.
type Query struct {
	ActivityName    string
	CategoryName    string
	SubcategoryName string
	Utterance       string
}

// Candidate is a scored catalog entry. Score is within [0,100].
type Candidate struct {
	Entry activity.CatalogEntry `json:"-"`
	Name  string                `json:"name"`
	Score int                   `json:"score"`
}

// Result holds either Entry with corroborating Candidates (resolved) or
// Suggestions (clarification / not found), never both.
type Result struct {
	Status           Status
	Entry            activity.CatalogEntry
	Candidates       []Candidate
	Suggestions      []string
	Message          string
	InferredCategory string
	MatchedBy        string // "name" or "description" when resolved
}

// Resolved reports whether a confident single match was found.
func (r Result) Resolved() bool {
	return r.Status == StatusResolved
}
