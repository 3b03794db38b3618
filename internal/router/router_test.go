package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"learning-activity-agent/internal/gateway"
	"learning-activity-agent/pkg/log"
)

// mockGateway replays completions in order and records the prompts it saw.
type mockGateway struct {
	replies []gateway.Completion
	errs    []error
	prompts []string
}

func (m *mockGateway) Complete(ctx context.Context, in gateway.Input) (gateway.Completion, error) {
	i := len(m.prompts)
	m.prompts = append(m.prompts, in.Prompt)
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	if err != nil {
		return gateway.Completion{}, err
	}
	if i < len(m.replies) {
		return m.replies[i], nil
	}
	return gateway.Completion{}, nil
}

func jsonReply(obj map[string]any) gateway.Completion {
	return gateway.Completion{Raw: "{}", JSON: obj, Parsed: true}
}

func textReply(raw string) gateway.Completion {
	return gateway.Completion{Raw: raw, JSON: map[string]any{"text": raw}}
}

func TestClassify_JSONResponse(t *testing.T) {
	gw := &mockGateway{replies: []gateway.Completion{
		jsonReply(map[string]any{"intent": "list-activities", "confidence": 0.92, "reasoning": "wants to browse"}),
	}}
	r := New(gw, false, log.NewNop())

	got, err := r.Classify(context.Background(), "show me all activities", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != IntentListActivities || got.Operation != "list" {
		t.Errorf("unexpected classification %+v", got)
	}
	if got.Confidence != 0.92 {
		t.Errorf("confidence = %v", got.Confidence)
	}
}

func TestClassify_NonJSONFallsBackToKeywords(t *testing.T) {
	// Scenario: the model answers in prose; keywords run on the user's text only.
	gw := &mockGateway{replies: []gateway.Completion{textReply("Hello, how can I help?")}}
	r := New(gw, false, log.NewNop())

	got, err := r.Classify(context.Background(), "qwerty zxcv", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intent != IntentUnknown {
		t.Errorf("expected unknown, got %s", got.Intent)
	}
	if got.Confidence != 0.5 {
		t.Errorf("expected fallback confidence 0.5, got %v", got.Confidence)
	}
	if got.Operation != "unknown" {
		t.Errorf("expected operation unknown, got %s", got.Operation)
	}
}

func TestClassify_KeywordFallbackDetectsIntent(t *testing.T) {
	gw := &mockGateway{replies: []gateway.Completion{textReply("sure")}}
	r := New(gw, false, log.NewNop())

	got, _ := r.Classify(context.Background(), "please delete activity 42", nil)
	if got.Intent != IntentDeleteActivity || got.Operation != "delete" || got.Confidence != 0.5 {
		t.Errorf("unexpected classification %+v", got)
	}
}

func TestClassify_OutOfSetIntentBecomesUnknown(t *testing.T) {
	for _, intent := range []any{"book-flight", "", nil, 12.0, "CREATE_TASK"} {
		gw := &mockGateway{replies: []gateway.Completion{
			jsonReply(map[string]any{"intent": intent, "confidence": 0.9}),
		}}
		got, err := New(gw, false, log.NewNop()).Classify(context.Background(), "x", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Intent != IntentUnknown {
			t.Errorf("intent %v: expected unknown, got %s", intent, got.Intent)
		}
	}
}

func TestClassify_ConfidenceNormalized(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{0.7, 0.7},
		{85.0, 0.85},
		{250.0, 1},
		{-1.0, 0},
		{"0.4", 0.4},
		{"90%", 0.9},
		{"high", 0},
		{nil, 0},
	}
	for _, tt := range tests {
		if got := normalizeConfidence(tt.in); got != tt.want {
			t.Errorf("normalizeConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassify_LLMErrorReturned(t *testing.T) {
	sentinel := errors.New("provider down")
	gw := &mockGateway{errs: []error{sentinel}}

	_, err := New(gw, false, log.NewNop()).Classify(context.Background(), "hi", nil)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected provider error, got %v", err)
	}
}

func TestClassify_SpellCheckCorrectsBeforeClassifying(t *testing.T) {
	gw := &mockGateway{replies: []gateway.Completion{
		jsonReply(map[string]any{"has_errors": true, "corrected_text": "start the algebra quiz", "corrections": []any{"algbra -> algebra"}}),
		jsonReply(map[string]any{"intent": "start-activity", "confidence": 0.95}),
	}}
	r := New(gw, true, log.NewNop())

	got, err := r.Classify(context.Background(), "start the algbra quiz", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CorrectedText != "start the algebra quiz" {
		t.Errorf("expected corrected text, got %q", got.CorrectedText)
	}
	if !strings.Contains(gw.prompts[1], "start the algebra quiz") {
		t.Errorf("classifier should see the corrected text: %s", gw.prompts[1])
	}
}

func TestClassify_SpellCheckIgnoresCaseOnlyAndErrors(t *testing.T) {
	t.Run("case only", func(t *testing.T) {
		gw := &mockGateway{replies: []gateway.Completion{
			jsonReply(map[string]any{"has_errors": true, "corrected_text": "Hello There"}),
			jsonReply(map[string]any{"intent": "greetings", "confidence": 1.0}),
		}}
		got, _ := New(gw, true, log.NewNop()).Classify(context.Background(), "hello there", nil)
		if got.CorrectedText != "" {
			t.Errorf("case-only change must be ignored, got %q", got.CorrectedText)
		}
	})

	t.Run("spell pass fails", func(t *testing.T) {
		gw := &mockGateway{
			errs:    []error{errors.New("timeout"), nil},
			replies: []gateway.Completion{{}, jsonReply(map[string]any{"intent": "greetings", "confidence": 1.0})},
		}
		got, err := New(gw, true, log.NewNop()).Classify(context.Background(), "hello", nil)
		if err != nil {
			t.Fatalf("spell pass errors must be swallowed, got %v", err)
		}
		if got.Intent != IntentGreetings {
			t.Errorf("unexpected intent %s", got.Intent)
		}
	})
}

func TestClassify_HistoryPrefix(t *testing.T) {
	gw := &mockGateway{replies: []gateway.Completion{jsonReply(map[string]any{"intent": "greetings"})}}
	New(gw, false, log.NewNop()).Classify(context.Background(), "hi", []string{"user: earlier", "assistant: reply"})

	if !strings.HasPrefix(gw.prompts[0], PromptHistoryPrefix+"1. user: earlier\n2. assistant: reply\n") {
		t.Errorf("history prefix missing: %q", gw.prompts[0])
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		gw := &mockGateway{replies: []gateway.Completion{textReply("nope")}}
		got, _ := New(gw, false, log.NewNop()).Classify(context.Background(), "list my quizzes", nil)
		if got.Intent != IntentListActivities {
			t.Fatalf("run %d: expected list-activities, got %s", i, got.Intent)
		}
	}
}

func TestIntentOperation(t *testing.T) {
	tests := []struct {
		in   Intent
		want string
	}{
		{IntentCreateActivity, "create"},
		{IntentEditActivity, "edit"},
		{IntentDeleteActivity, "delete"},
		{IntentListActivities, "list"},
		{IntentStartActivity, "start"},
		{IntentGenerateActivity, "generate"},
		{IntentGreetings, "greetings"},
		{IntentUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.Operation(); got != tt.want {
			t.Errorf("%s.Operation() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeywordIntent(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
	}{
		{"Hi there!", IntentGreetings},
		{"this is nothing", IntentUnknown},
		{"What can you do?", IntentCapabilities},
		{"start the algebra quiz", IntentStartActivity},
		{"Create a new quiz about fractions", IntentCreateActivity},
		{"generate a reading exercise", IntentGenerateActivity},
		{"update the title", IntentEditActivity},
		{"remove that one", IntentDeleteActivity},
		{"evaluate my performance", IntentEvaluatePerformance},
		{"Hello, how can I help?", IntentGreetings},
	}
	for _, tt := range tests {
		if got := keywordIntent(tt.in); got != tt.want {
			t.Errorf("keywordIntent(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
