package extractor

import (
	"context"
	"fmt"
	"strings"

	"learning-activity-agent/internal/gateway"
)

func (e *implExtractor) ExtractStart(ctx context.Context, text string) StartSlots {
	resp, ok := e.complete(ctx, LogPrefixExtractStart, PromptStart, text)
	if !ok {
		return StartSlots{ActivityName: strings.TrimSpace(text), AdditionalDetails: map[string]any{}}
	}

	details, _ := resp.JSON["additional_details"].(map[string]any)
	if details == nil {
		details = map[string]any{}
	}
	return StartSlots{
		ActivityName:      str(resp, "activity_name"),
		CategoryName:      str(resp, "category_name"),
		SubcategoryName:   str(resp, "subcategory_name"),
		AdditionalDetails: details,
	}
}

func (e *implExtractor) ExtractCreate(ctx context.Context, text string) CreateSlots {
	resp, ok := e.complete(ctx, LogPrefixExtractCreate, PromptCreate, text)
	if !ok {
		return CreateSlots{
			Name:            strings.TrimSpace(text),
			Description:     strings.TrimSpace(text),
			DifficultyLevel: DefaultDifficulty,
		}
	}

	slots := CreateSlots{
		Name:            str(resp, "name"),
		Description:     str(resp, "description"),
		CategoryName:    str(resp, "category_name"),
		SubcategoryName: str(resp, "subcategory_name"),
		DifficultyLevel: normalizeDifficulty(str(resp, "difficulty_level")),
	}
	if slots.Name == "" {
		slots.Name = strings.TrimSpace(text)
	}
	if slots.Description == "" {
		slots.Description = strings.TrimSpace(text)
	}
	return slots
}

func (e *implExtractor) ExtractListFilters(ctx context.Context, text string) ListFilters {
	resp, ok := e.complete(ctx, LogPrefixExtractList, PromptListFilters, text)
	if !ok {
		return ListFilters{}
	}
	return ListFilters{
		ActivityName:    str(resp, "activity_name"),
		CategoryName:    str(resp, "category_name"),
		SubcategoryName: str(resp, "subcategory_name"),
	}
}

func (e *implExtractor) complete(ctx context.Context, prefix, tmpl, text string) (gateway.Completion, bool) {
	resp, err := e.llm.Complete(ctx, gateway.Input{
		Prompt:      fmt.Sprintf(tmpl, text),
		JSONMode:    true,
		Temperature: ExtractTemperature,
		MaxTokens:   ExtractMaxTokens,
	})
	if err != nil {
		e.l.Warnf(ctx, "%s: extraction failed, degrading: %v", prefix, err)
		return gateway.Completion{}, false
	}
	if !resp.Parsed {
		e.l.Warnf(ctx, "%s: non-JSON response, degrading: %q", prefix, resp.Raw)
		return gateway.Completion{}, false
	}
	return resp, true
}

// str treats the literal strings "null" and "none" as missing.
func str(c gateway.Completion, key string) string {
	v := strings.TrimSpace(c.String(key))
	switch strings.ToLower(v) {
	case "null", "none", "n/a":
		return ""
	}
	return v
}

func normalizeDifficulty(s string) string {
	switch strings.ToLower(s) {
	case "intermediate", "medium":
		return "Intermediate"
	case "advanced", "hard":
		return "Advanced"
	default:
		return DefaultDifficulty
	}
}
