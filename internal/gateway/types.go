package gateway

import (
	"fmt"

	"learning-activity-agent/pkg/llmprovider"
)

// Input is a single completion request. Either Prompt or Messages is set;
// Messages wins when both are present.
type Input struct {
	Prompt      string
	Messages    []llmprovider.Message
	JSONMode    bool
	Temperature float64
	MaxTokens   int
}

// Completion is the gateway result. In JSON mode JSON always holds an
// object: the parsed model output, or {"text": raw} when parsing failed.
type Completion struct {
	Raw    string
	JSON   map[string]any
	Parsed bool
}

// Text returns the raw model text.
func (c Completion) Text() string {
	return c.Raw
}

// Object returns the parsed object and whether the model produced valid JSON.
func (c Completion) Object() (map[string]any, bool) {
	if c.JSON == nil {
		return map[string]any{FallbackTextKey: c.Raw}, false
	}
	return c.JSON, c.Parsed
}

// String reads key from the parsed object as a trimmed string. Non-string
// scalars are formatted; null and missing keys yield "".
func (c Completion) String(key string) string {
	if !c.Parsed {
		return ""
	}
	return AsString(c.JSON[key])
}

// AsString converts a decoded JSON value to a string.
func AsString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}
