package http

import (
	"errors"
	"net/http"

	"learning-activity-agent/internal/conversation"
)

var (
	errEmbeddingUnavailable = errors.New("semantic search is not available")
	errEmptyEmbedding       = errors.New("embedding provider returned no vectors")
)

// mapError translates store errors into an HTTP status. ok is false for
// errors that should be reported as internal.
func (h *handler) mapError(err error) (status int, ok bool) {
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, conversation.ErrEmptyUserID),
		errors.Is(err, conversation.ErrInvalidRole):
		return http.StatusBadRequest, true
	case errors.Is(err, errEmbeddingUnavailable):
		return http.StatusServiceUnavailable, true
	default:
		return http.StatusInternalServerError, false
	}
}
