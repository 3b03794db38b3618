package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/internal/activity/repository/service"
	"learning-activity-agent/pkg/log"
	"learning-activity-agent/pkg/retry"
)

func fastPolicy() retry.Policy {
	p := retry.DefaultPolicy()
	p.InitialDelay = time.Millisecond
	p.MaxDelay = 5 * time.Millisecond
	return p
}

func TestActivityClient(t *testing.T) {
	var lastAuth, lastQuery string
	var lastBody map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/activities/", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		lastQuery = r.URL.RawQuery
		lastBody = nil
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&lastBody)
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/activities/":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"id": "a1", "name": lastBody["name"]})
		case r.Method == http.MethodGet && r.URL.Path == "/activities/":
			json.NewEncoder(w).Encode([]map[string]any{{"id": "a1"}})
		case r.Method == http.MethodPut && r.URL.Path == "/activities/a1":
			json.NewEncoder(w).Encode(map[string]any{"id": "a1", "name": lastBody["name"]})
		case r.Method == http.MethodDelete && r.URL.Path == "/activities/a1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"not found"}`))
		}
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := service.NewClient(ts.URL+"/activities", time.Second, fastPolicy(), log.NewNop())
	ctx := context.Background()

	t.Run("Create forwards token and body", func(t *testing.T) {
		res, err := client.Create(ctx, "tok", activity.Payload{"name": "Quiz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastAuth != "Bearer tok" {
			t.Errorf("Authorization = %q", lastAuth)
		}
		if m, _ := res.(map[string]any); m["name"] != "Quiz" {
			t.Errorf("unexpected result %v", res)
		}
	})

	t.Run("List whitelists query params", func(t *testing.T) {
		res, err := client.List(ctx, "", activity.ListQuery{
			"category_name": "Math",
			"limit":         10,
			"token":         "secret",
			"activity_name": nil,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastQuery != "category_name=Math&limit=10" {
			t.Errorf("query = %q", lastQuery)
		}
		if lastAuth != "" {
			t.Errorf("no Authorization header expected without token")
		}
		if items, _ := res.([]any); len(items) != 1 {
			t.Errorf("unexpected result %v", res)
		}
	})

	t.Run("Edit", func(t *testing.T) {
		res, err := client.Edit(ctx, "tok", "a1", activity.Payload{"name": "Renamed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m, _ := res.(map[string]any); m["name"] != "Renamed" {
			t.Errorf("unexpected result %v", res)
		}
	})

	t.Run("Delete with empty body", func(t *testing.T) {
		res, err := client.Delete(ctx, "tok", "a1")
		if err != nil || res != nil {
			t.Errorf("expected nil result and error, got %v, %v", res, err)
		}
	})

	t.Run("Missing id", func(t *testing.T) {
		if _, err := client.Delete(ctx, "", ""); !errors.Is(err, activity.ErrMissingID) {
			t.Errorf("expected ErrMissingID, got %v", err)
		}
	})

	t.Run("Not found is not retried", func(t *testing.T) {
		_, err := client.Edit(ctx, "", "zzz", activity.Payload{})
		var se *retry.StatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 StatusError, got %v", err)
		}
	})
}

func TestActivityClient_RetriesTransientOnList(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := service.NewClient(ts.URL, time.Second, fastPolicy(), log.NewNop())
	if _, err := client.List(context.Background(), "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestActivityClient_CreateNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := service.NewClient(ts.URL, time.Second, fastPolicy(), log.NewNop())
	if _, err := client.Create(context.Background(), "", activity.Payload{"name": "x"}); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected a single call, got %d", calls)
	}
}
