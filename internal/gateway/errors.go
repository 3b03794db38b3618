package gateway

import "errors"

var (
	ErrEmptyInput    = errors.New("gateway: prompt and messages are both empty")
	ErrEmptyResponse = errors.New("gateway: empty response from model")
)
