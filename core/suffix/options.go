package suffix

import "fmt"

// Algorithm selects how the suffix order is computed. Every algorithm yields
// the same permutation.
type Algorithm int

const (
	// Doubling ranks suffixes by prefixes of length 1, 2, 4, ... until all
	// ranks are distinct.
	Doubling Algorithm = iota
	// Naive sorts offsets with a direct suffix comparator.
	Naive
)

func (a Algorithm) String() string {
	switch a {
	case Doubling:
		return "doubling"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a CLI name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "doubling", "":
		return Doubling, nil
	case "naive":
		return Naive, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, s)
}

type options struct {
	algorithm Algorithm
	workers   int
}

// Option configures Build.
type Option func(*options)

// WithAlgorithm selects the construction algorithm (default Doubling).
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithWorkers sets how many goroutines sort in parallel.
// Values below 2 keep construction on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}
