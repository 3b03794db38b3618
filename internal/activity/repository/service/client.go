package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/pkg/retry"
)

const (
	LogPrefixCreate = "internal.activity.repository.service.Create"
	LogPrefixList   = "internal.activity.repository.service.List"
	LogPrefixEdit   = "internal.activity.repository.service.Edit"
	LogPrefixDelete = "internal.activity.repository.service.Delete"
)

// Create posts a new activity. It is not retried because POST is not idempotent.
func (c *Client) Create(ctx context.Context, token string, payload activity.Payload) (any, error) {
	out, err := c.do(ctx, http.MethodPost, c.baseURL+"/", token, payload)
	if err != nil {
		c.l.Errorf(ctx, "%s: %v", LogPrefixCreate, err)
		return nil, err
	}
	return out, nil
}

// List fetches activities. Only activity.ListQueryKeys are sent as query parameters.
func (c *Client) List(ctx context.Context, token string, query activity.ListQuery) (any, error) {
	params := url.Values{}
	for _, k := range activity.ListQueryKeys {
		v, ok := query[k]
		if !ok || v == nil {
			continue
		}
		params.Set(k, fmt.Sprint(v))
	}
	u := c.baseURL + "/"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var out any
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		var callErr error
		out, callErr = c.do(ctx, http.MethodGet, u, token, nil)
		return callErr
	})
	if err != nil {
		c.l.Errorf(ctx, "%s: %v", LogPrefixList, err)
		return nil, err
	}
	return out, nil
}

// Edit replaces the activity with the given id.
func (c *Client) Edit(ctx context.Context, token, id string, payload activity.Payload) (any, error) {
	if id == "" {
		return nil, activity.ErrMissingID
	}
	var out any
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		var callErr error
		out, callErr = c.do(ctx, http.MethodPut, c.baseURL+"/"+url.PathEscape(id), token, payload)
		return callErr
	})
	if err != nil {
		c.l.Errorf(ctx, "%s: id=%s: %v", LogPrefixEdit, id, err)
		return nil, err
	}
	return out, nil
}

// Delete removes the activity with the given id.
func (c *Client) Delete(ctx context.Context, token, id string) (any, error) {
	if id == "" {
		return nil, activity.ErrMissingID
	}
	var out any
	err := c.retry.Do(ctx, func(ctx context.Context) error {
		var callErr error
		out, callErr = c.do(ctx, http.MethodDelete, c.baseURL+"/"+url.PathEscape(id), token, nil)
		return callErr
	})
	if err != nil {
		c.l.Errorf(ctx, "%s: id=%s: %v", LogPrefixDelete, id, err)
		return nil, err
	}
	return out, nil
}

// do sends one request. Non-2xx responses become *retry.StatusError; an empty
// body decodes to nil.
func (c *Client) do(ctx context.Context, method, u, token string, payload activity.Payload) (any, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal activity payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build activity request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call activity service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity service response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("activity service %s error: %w", method, &retry.StatusError{StatusCode: resp.StatusCode, Body: string(raw)})
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode activity service response: %w", err)
	}
	return out, nil
}
