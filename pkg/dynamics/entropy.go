package dynamics

import (
	"math"

	"github.com/topodyn/braidkit/internal/dynnikov"
	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

// Iterative entropy defaults.
const (
	DefaultEntropyTol     = 1e-8
	DefaultEntropyMaxIter = 300
	DefaultEntropyConvReq = 3
)

// EntropyOptions tune the iterative entropy estimate. Zero values select the
// package defaults.
type EntropyOptions struct {
	// Tol is the convergence tolerance on the per-iteration estimate.
	Tol float64
	// MaxIter caps the number of iterations.
	MaxIter int
	// ConvReq is the number of consecutive in-tolerance iterations required
	// before the estimate is accepted.
	ConvReq int
}

func (o EntropyOptions) withDefaults() EntropyOptions {
	if o.Tol <= 0 {
		o.Tol = DefaultEntropyTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultEntropyMaxIter
	}
	if o.ConvReq <= 0 {
		o.ConvReq = DefaultEntropyConvReq
	}
	return o
}

// EntropyResult carries the iterative estimate together with its
// convergence record.
type EntropyResult struct {
	Entropy    float64
	Iterations int
	Converged  bool
}

// Entropy estimates the topological entropy of the word by power iteration
// on floating-point loop coordinates: the canonical basis loop is normalized
// to unit Euclidean length, the word is applied, and the log of the resulting
// length is the per-iteration estimate. The estimate is accepted once it
// stays within tolerance for the required number of consecutive iterations.
// If the iteration cap is reached first, the best estimate is returned with
// ErrNoConvergence.
func Entropy(w braid.Word, opts EntropyOptions) (EntropyResult, error) {
	opts = opts.withDefaults()
	if w.Strands() < 2 || w.IsIdentity() {
		return EntropyResult{Converged: true}, nil
	}

	base, err := loop.Canonical(w.Strands(), loop.BasisDefault, numeric.Float)
	if err != nil {
		return EntropyResult{}, err
	}
	be := base.Backend()
	a, b := base.A(), base.B()
	gens := w.Gens()

	res := EntropyResult{}
	prev := math.Inf(1)
	nconv := 0
	for it := 1; it <= opts.MaxIter; it++ {
		res.Iterations = it
		norm := math.Sqrt(l2norm2(a, b))
		rescale(a, 1/norm)
		rescale(b, 1/norm)

		// The float representation never overflows, so the update cannot
		// fail.
		_ = dynnikov.Apply(be, a, b, gens)

		res.Entropy = 0.5 * math.Log(l2norm2(a, b))
		if math.Abs(res.Entropy-prev) < opts.Tol {
			nconv++
			if nconv >= opts.ConvReq {
				res.Converged = true
				return res, nil
			}
		} else {
			nconv = 0
		}
		prev = res.Entropy
	}
	return res, ErrNoConvergence
}

// FiniteOptions select the scalar representation and length functional for
// the finite entropy estimate.
type FiniteOptions struct {
	Kind    numeric.Kind
	Measure Measure
}

// EntropyFinite estimates entropy after a fixed number of iterations as
// log(measure(bᴺ·l) / measure(l)) / N on the canonical basis loop. Unlike
// the coordinate comparisons, an overflow here is fatal: the estimate is a
// ratio of exact measures and a wrapped value would corrupt it silently.
// Coordinate growth is exponential in N, so any fixed-width representation
// overflows for large enough N; callers hitting that should switch to the
// arbitrary-precision representation or to Entropy.
func EntropyFinite(w braid.Word, iters int, opts FiniteOptions) (float64, error) {
	if iters <= 0 {
		return 0, ErrIterCount
	}
	if w.Strands() < 2 {
		return 0, nil
	}
	l, err := loop.Canonical(w.Strands(), loop.BasisDefault, opts.Kind)
	if err != nil {
		return 0, err
	}
	m0, err := measureLoop(l, opts.Measure)
	if err != nil {
		return 0, err
	}
	for i := 0; i < iters; i++ {
		l, err = l.Apply(w)
		if err != nil {
			return 0, err
		}
	}
	m1, err := measureLoop(l, opts.Measure)
	if err != nil {
		return 0, err
	}
	return (math.Log(m1.Float64()) - math.Log(m0.Float64())) / float64(iters), nil
}

func l2norm2(a, b []numeric.Value) float64 {
	sum := 0.0
	for _, v := range a {
		f := v.Float64()
		sum += f * f
	}
	for _, v := range b {
		f := v.Float64()
		sum += f * f
	}
	return sum
}

func rescale(vs []numeric.Value, by float64) {
	for i, v := range vs {
		vs[i] = numeric.FromFloat64(v.Float64() * by)
	}
}
