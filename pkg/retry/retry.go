package retry

import (
	"context"
	"errors"
	"net"
	"time"
)

// ErrTransient marks an error as worth retrying. Wrap it with %w.
var ErrTransient = errors.New("transient error")

// StatusError carries an upstream HTTP status so the policy can classify it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "upstream status " + httpStatusText(e.StatusCode) + ": " + e.Body
}

// Policy is an exponential backoff retry policy.
type Policy struct {
	MaxAttempts   int           // total attempts including the first
	InitialDelay  time.Duration // delay before the second attempt
	MaxDelay      time.Duration // cap for a single delay
	BackoffFactor float64       // delay multiplier per attempt
	RetryStatuses []int         // statuses considered transient
}

// DefaultPolicy mirrors what the upstream services tolerate: 3 tries, 1s, x2, 10s cap.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   3,
		InitialDelay:  time.Second,
		MaxDelay:      10 * time.Second,
		BackoffFactor: 2,
		RetryStatuses: []int{429, 500, 502, 503, 504},
	}
}

// Do runs fn until it succeeds, returns a non-transient error, attempts are
// exhausted or ctx is done. The last error is returned unchanged.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.InitialDelay

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay = p.next(delay)
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !p.IsTransient(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// IsTransient reports whether err should be retried under this policy.
func (p Policy) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransient) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		for _, s := range p.RetryStatuses {
			if se.StatusCode == s {
				return true
			}
		}
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

func (p Policy) next(d time.Duration) time.Duration {
	factor := p.BackoffFactor
	if factor <= 0 {
		factor = 1
	}
	n := time.Duration(float64(d) * factor)
	if p.MaxDelay > 0 && n > p.MaxDelay {
		return p.MaxDelay
	}
	return n
}
