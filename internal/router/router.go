package router

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"learning-activity-agent/internal/gateway"
)

// Classify determines user intent from message. Only a failing model call is
// returned as an error; malformed output degrades to the keyword heuristic.
func (r *SemanticRouter) Classify(ctx context.Context, message string, conversationHistory []string) (Classification, error) {
	text := message
	corrected := ""
	if r.spellCheck {
		if fixed, ok := r.correctSpelling(ctx, message); ok {
			text, corrected = fixed, fixed
		}
	}

	historyContext := ""
	if len(conversationHistory) > 0 {
		historyContext = PromptHistoryPrefix
		for i, msg := range conversationHistory {
			historyContext += fmt.Sprintf("%d. %s\n", i+1, msg)
		}
		historyContext += "\n"
	}

	resp, err := r.llm.Complete(ctx, gateway.Input{
		Prompt:      historyContext + fmt.Sprintf(PromptRouterSystem, text),
		JSONMode:    true,
		Temperature: RouterTemperature,
		MaxTokens:   RouterMaxTokens,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	var out Classification
	if !resp.Parsed {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgJSONParseFailed, resp.Raw)
		out = Classification{
			Intent:     keywordIntent(text),
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonKeywordFallback,
		}
	} else {
		out = Classification{
			Intent:     ParseIntent(resp.String("intent")),
			Confidence: normalizeConfidence(resp.JSON["confidence"]),
			Reasoning:  resp.String("reasoning"),
		}
	}
	out.Operation = out.Intent.Operation()
	out.CorrectedText = corrected

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %.2f)", LogPrefixClassify, out.Intent, out.Confidence)
	return out, nil
}

// normalizeConfidence accepts 0..1 or 0..100 and clamps to [0,1].
func normalizeConfidence(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(t), "%"), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f > 1 {
		f /= 100
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
