package dispatcher

import (
	"strings"

	"learning-activity-agent/internal/gateway"
)

// detailString reads a scalar detail as a trimmed string.
func detailString(details map[string]any, key string) string {
	v, ok := details[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(gateway.AsString(v))
}

// activityID reads "id", falling back to "activity_id".
func activityID(details map[string]any) string {
	return firstNonEmpty(detailString(details, "id"), detailString(details, "activity_id"))
}

func withoutKeys(details map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(details))
	for k, v := range details {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
