package resolver

// Resolver matches extracted slots against the activity catalog.
type Resolver struct {
	threshold int
}

// New creates a Resolver. Thresholds outside 1..100 fall back to DefaultThreshold.
func New(threshold int) *Resolver {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}
	return &Resolver{threshold: threshold}
}

// Threshold is the inclusive confidence cutoff.
func (r *Resolver) Threshold() int {
	return r.threshold
}
