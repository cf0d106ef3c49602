package search

// Options configures Solve.
//
//   - Selector: the brancher's cell-selection policy. Defaults to
//     RowMajorSelector{}, a deterministic choice; the reference
//     implementation's random policy is available via WithRandomSeed.
type Options struct {
	Selector Selector
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the Options Solve uses when no Option is
// supplied: a deterministic, row-major selection policy.
func DefaultOptions() Options {
	return Options{Selector: RowMajorSelector{}}
}

// WithSelector overrides the brancher's cell-selection policy.
func WithSelector(s Selector) Option {
	return func(o *Options) {
		o.Selector = s
	}
}

// WithRandomSeed switches to the reference implementation's random
// selection policy, seeded deterministically for reproducible runs.
// Passing seed==0 uses a fixed default seed (see NewRandomSelector).
func WithRandomSeed(seed int64) Option {
	return func(o *Options) {
		o.Selector = NewRandomSelector(seed)
	}
}
