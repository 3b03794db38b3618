package service

import (
	"net/http"
	"strings"
	"time"

	"learning-activity-agent/internal/activity"
	"learning-activity-agent/pkg/log"
	"learning-activity-agent/pkg/retry"
)

const DefaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the Activity CRUD service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      retry.Policy
	l          log.Logger
}

var _ activity.CRUD = (*Client)(nil)

// NewClient creates a new Activity service client. baseURL is the collection
// URL, e.g. http://host/activities.
func NewClient(baseURL string, timeout time.Duration, policy retry.Policy, l log.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retry:      policy,
		l:          l,
	}
}
