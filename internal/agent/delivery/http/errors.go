package http

import (
	"errors"
	"net/http"

	"learning-activity-agent/internal/agent"
)

// mapError translates agent errors into an HTTP status. ok is false for
// errors that should be reported as internal.
func (h *handler) mapError(err error) (status int, ok bool) {
	switch {
	case errors.Is(err, agent.ErrMissingUserID):
		return http.StatusBadRequest, true
	default:
		return http.StatusInternalServerError, false
	}
}
