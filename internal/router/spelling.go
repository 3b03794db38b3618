package router

import (
	"context"
	"fmt"
	"strings"

	"learning-activity-agent/internal/gateway"
)

// correctSpelling returns the corrected text when the model reports a
// spelling error. Failures are logged and swallowed.
func (r *SemanticRouter) correctSpelling(ctx context.Context, message string) (string, bool) {
	resp, err := r.llm.Complete(ctx, gateway.Input{
		Prompt:      fmt.Sprintf(PromptSpellCheck, message),
		JSONMode:    true,
		Temperature: 0,
		MaxTokens:   RouterMaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: spell check skipped: %v", LogPrefixSpellCheck, err)
		return "", false
	}
	if !resp.Parsed {
		return "", false
	}

	hasErrors, _ := resp.JSON["has_errors"].(bool)
	fixed := strings.TrimSpace(resp.String("corrected_text"))
	if !hasErrors || fixed == "" || strings.EqualFold(fixed, strings.TrimSpace(message)) {
		return "", false
	}

	r.l.Infof(ctx, "%s: corrected %q -> %q", LogPrefixSpellCheck, message, fixed)
	return fixed, true
}
