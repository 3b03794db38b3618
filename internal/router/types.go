package router

import "strings"

// Intent is the user's intention. The set is closed; anything else is IntentUnknown.
type Intent string

const (
	IntentCreateActivity      Intent = "create-activity"
	IntentEditActivity        Intent = "edit-activity"
	IntentDeleteActivity      Intent = "delete-activity"
	IntentListActivities      Intent = "list-activities"
	IntentStartActivity       Intent = "start-activity"
	IntentGenerateActivity    Intent = "generate-activity"
	IntentGreetings           Intent = "greetings"
	IntentCapabilities        Intent = "capabilities"
	IntentEvaluatePerformance Intent = "evaluate-performance"
	IntentUnknown             Intent = "unknown"
)

// Intents lists the closed set in prompt order.
var Intents = []Intent{
	IntentCreateActivity,
	IntentEditActivity,
	IntentDeleteActivity,
	IntentListActivities,
	IntentStartActivity,
	IntentGenerateActivity,
	IntentGreetings,
	IntentCapabilities,
	IntentEvaluatePerformance,
	IntentUnknown,
}

// ParseIntent normalizes s and maps anything outside the closed set to IntentUnknown.
func ParseIntent(s string) Intent {
	in := Intent(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Intents {
		if in == known {
			return in
		}
	}
	return IntentUnknown
}

// Operation is the intent with the "-activity" suffix dropped;
// list-activities maps to "list".
func (i Intent) Operation() string {
	if i == IntentListActivities {
		return "list"
	}
	return strings.TrimSuffix(string(i), "-activity")
}

// Classification is the structured response of the classifier.
type Classification struct {
	Intent        Intent  `json:"intent"`
	Confidence    float64 `json:"confidence"` // 0..1
	Operation     string  `json:"operation"`
	CorrectedText string  `json:"corrected_text,omitempty"`
	Reasoning     string  `json:"reasoning,omitempty"`
}

// SpellCheck is the result of the spelling pre-pass.
type SpellCheck struct {
	HasErrors     bool     `json:"has_errors"`
	CorrectedText string   `json:"corrected_text"`
	Corrections   []string `json:"corrections"`
}
