package dynamics

import (
	"errors"
	"math"

	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

// ComplexityOptions select the scalar representation, length functional and
// logarithm base for the complexity functional. Base 0 means natural log.
type ComplexityOptions struct {
	Kind    numeric.Kind
	Measure Measure
	Base    float64
}

// Complexity computes the geometric complexity of the word,
//
//	C(b) = log m(b·E) − log m(E),
//
// where E is the canonical basis loop widened by one boundary puncture. With
// the axis-intersection functional, n−1 is subtracted from each raw count to
// discount the arcs around the boundary puncture, which never cross the
// reference axis; the minimal-length functional needs no correction. Any
// overflow in the coordinate update or the measures is returned as a warning
// alongside the best-effort value.
func Complexity(w braid.Word, opts ComplexityOptions) (float64, error) {
	n := w.Strands()
	ref, err := loop.Canonical(n, loop.BasisBoundary, opts.Kind)
	if err != nil {
		return 0, err
	}
	acted, warn := ref.Apply(w)
	if warn != nil && !errors.Is(warn, numeric.ErrOverflow) {
		return 0, warn
	}

	m0, err := measureLoop(ref, opts.Measure)
	if err != nil {
		if !errors.Is(err, numeric.ErrOverflow) {
			return 0, err
		}
		if warn == nil {
			warn = err
		}
	}
	m1, err := measureLoop(acted, opts.Measure)
	if err != nil {
		if !errors.Is(err, numeric.ErrOverflow) {
			return 0, err
		}
		if warn == nil {
			warn = err
		}
	}

	corr := 0.0
	if opts.Measure == MeasureIntAxis {
		corr = float64(n - 1)
	}
	c := math.Log(m1.Float64()-corr) - math.Log(m0.Float64()-corr)
	if opts.Base > 0 {
		c /= math.Log(opts.Base)
	}
	return c, warn
}
