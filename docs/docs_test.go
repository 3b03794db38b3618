package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if parsed.Info.Title != SwaggerInfo.Title {
		t.Errorf("title = %q, want %q", parsed.Info.Title, SwaggerInfo.Title)
	}
	if _, ok := parsed.Paths["/health"]; !ok {
		t.Errorf("expected /health in paths")
	}
}
