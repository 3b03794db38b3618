package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"learning-activity-agent/internal/evaluation"
	"learning-activity-agent/internal/gateway"
	"learning-activity-agent/pkg/llmprovider"
)

// Evaluate asks the model for a report over the session history.
func (uc *implUseCase) Evaluate(ctx context.Context, input evaluation.Input) (evaluation.Output, error) {
	if len(input.History) == 0 {
		return evaluation.Output{}, evaluation.ErrNoHistory
	}

	msgs := make([]llmprovider.Message, 0, len(input.History)+1)
	msgs = append(msgs, llmprovider.Message{Role: "system", Content: buildSystemPrompt(input)})
	for _, m := range input.History {
		msgs = append(msgs, llmprovider.Message{Role: string(m.Role), Content: m.Content})
	}

	resp, err := uc.llm.Complete(ctx, gateway.Input{
		Messages:    msgs,
		JSONMode:    true,
		Temperature: EvaluateTemperature,
		MaxTokens:   EvaluateMaxTokens,
	})
	if err != nil {
		return evaluation.Output{}, fmt.Errorf("%s: %w", LogPrefixEvaluate, err)
	}
	if !resp.Parsed {
		uc.l.Warnf(ctx, "%s: non-JSON report: %q", LogPrefixEvaluate, resp.Raw)
		return evaluation.Output{}, evaluation.ErrMalformedReport
	}

	out := evaluation.Output{
		Scores:          toScores(resp.JSON["scores"]),
		Strengths:       toStrings(resp.JSON["strengths"]),
		Recommendations: toStrings(resp.JSON["recommendations"]),
		Summary:         resp.String("summary"),
	}
	if v, ok := resp.JSON["overall_score"].(float64); ok {
		out.OverallScore = clampScore(v)
	} else {
		out.OverallScore = average(out.Scores)
	}

	uc.l.Infof(ctx, "%s: user=%s activity=%s overall=%d", LogPrefixEvaluate, input.UserID, input.ActivityID, out.OverallScore)
	return out, nil
}

// buildSystemPrompt picks metrics by what the history talks about.
func buildSystemPrompt(input evaluation.Input) string {
	var quiz, reading bool
	for _, m := range input.History {
		c := strings.ToLower(m.Content)
		quiz = quiz || strings.Contains(c, "quiz") || strings.Contains(c, "test")
		reading = reading || strings.Contains(c, "read") || strings.Contains(c, "book")
	}

	var metrics []string
	if quiz {
		metrics = append(metrics, metricQuiz)
	}
	if reading {
		metrics = append(metrics, metricReading)
	}
	if len(metrics) == 0 {
		metrics = append(metrics, metricGeneral)
	}
	if input.ActivityName != "" {
		metrics = append(metrics, fmt.Sprintf(promptActivityFocus, input.ActivityName))
	}
	return fmt.Sprintf(PromptEvaluateSystem, strings.Join(metrics, "\n"))
}

func toStrings(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := strings.TrimSpace(gateway.AsString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toScores(v any) map[string]int {
	m, _ := v.(map[string]any)
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, raw := range m {
		if f, ok := raw.(float64); ok {
			out[k] = clampScore(f)
		}
	}
	return out
}

func average(scores map[string]int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func clampScore(f float64) int {
	n := int(math.Round(f))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
