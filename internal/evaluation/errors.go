package evaluation

import "errors"

var (
	ErrNoHistory       = errors.New("no conversation history to evaluate")
	ErrMalformedReport = errors.New("evaluator returned a malformed report")
)
