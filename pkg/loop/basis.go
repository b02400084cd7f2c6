package loop

import (
	"fmt"

	"github.com/topodyn/braidkit/pkg/numeric"
)

// Basis selects a canonical loop family used for equality testing and the
// complexity metric. The default family is the nested generating set with
// the basepoint puncture on the right; the left-canonical and Dehornoy
// families anchor the basepoint on the left (the equality engine transforms
// the braid word accordingly); the boundary-punctured family appends one
// extra puncture, giving n+1 effective strands.
type Basis int

const (
	// BasisDefault is the right-basepoint generating set: a = 0, b = -1.
	BasisDefault Basis = iota
	// BasisLeft is the left-basepoint generating set: a = 0, b = +1.
	BasisLeft
	// BasisDehornoy is the left-basepoint set combined with Dehornoy's
	// mirrored generator convention; the coordinate pattern equals BasisLeft.
	BasisDehornoy
	// BasisBoundary is the default pattern widened by one boundary
	// puncture: a loop built for n strands has strand count n+1.
	BasisBoundary
)

// String returns the configuration name of the basis.
func (bs Basis) String() string {
	switch bs {
	case BasisDefault:
		return "default"
	case BasisLeft:
		return "left"
	case BasisDehornoy:
		return "dehornoy"
	case BasisBoundary:
		return "bp"
	}
	return fmt.Sprintf("Basis(%d)", int(bs))
}

// ParseBasis converts a configuration string into a Basis. Recognized values
// are "default", "left", "dehornoy" and "bp" (or "boundary").
func ParseBasis(s string) (Basis, error) {
	switch s {
	case "default", "":
		return BasisDefault, nil
	case "left":
		return BasisLeft, nil
	case "dehornoy":
		return BasisDehornoy, nil
	case "bp", "boundary":
		return BasisBoundary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadBasis, s)
}

// Canonical builds the canonical basis loop for n strands under the given
// basis. For n=4 the default basis has coordinates (0,0,0,-1,-1,-1).
// BasisBoundary returns a loop with strand count n+1. n must be at least 2.
func Canonical(n int, basis Basis, kind numeric.Kind) (*Loop, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoCoordinates, n)
	}
	width := n - 1
	fill := int64(-1)
	switch basis {
	case BasisDefault:
	case BasisLeft, BasisDehornoy:
		fill = 1
	case BasisBoundary:
		width = n
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadBasis, basis)
	}
	a := make([]int64, width)
	b := make([]int64, width)
	for i := range b {
		b[i] = fill
	}
	return FromAB(a, b, kind)
}
