package conversation

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyUserID     = errors.New("user id is empty")
	ErrInvalidRole     = errors.New("role must be user or assistant")
)
