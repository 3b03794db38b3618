package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"learning-activity-agent/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, GetToken(c))
	})...)
	return r
}

func do(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 6/min gives a burst of one request per caller.
	mw := New(log.NewNop(), 6)
	r := newEngine(mw, mw.RateLimit())

	if w := do(r, map[string]string{HeaderUserID: "u1"}); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := do(r, map[string]string{HeaderUserID: "u1"}); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
	if w := do(r, map[string]string{HeaderUserID: "u2"}); w.Code != http.StatusOK {
		t.Fatalf("other user: expected 200, got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		if w := do(r, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestToken(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.Token())

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc", "abc"},
		{"lowercase scheme", "bearer xyz", "xyz"},
		{"basic ignored", "Basic abc", ""},
		{"missing", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := map[string]string{}
			if tt.header != "" {
				h["Authorization"] = tt.header
			}
			w := do(r, h)
			if got := w.Body.String(); got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
