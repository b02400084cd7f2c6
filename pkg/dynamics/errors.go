package dynamics

import "errors"

var (
	// ErrBadMeasure indicates a length-functional selector outside the two
	// defined options.
	ErrBadMeasure = errors.New("dynamics: unsupported length functional")

	// ErrNoConvergence is returned as a warning alongside the best entropy
	// estimate when the iteration cap is reached before the estimate
	// stabilizes.
	ErrNoConvergence = errors.New("dynamics: entropy estimate did not converge")

	// ErrIterCount indicates a non-positive iteration count.
	ErrIterCount = errors.New("dynamics: iteration count must be positive")
)
