package evaluation

import "context"

// Evaluator scores a learner's performance from their conversation history.
type Evaluator interface {
	Evaluate(ctx context.Context, input Input) (Output, error)
}
