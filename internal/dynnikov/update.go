// Package dynnikov implements the piecewise-linear action of braid
// generators on Dynnikov coordinates.
//
// A coordinate pair (a, b) of length K describes a multicurve on K+2
// punctures, the last of which is the basepoint. Generator magnitudes from 1
// through K+1 are meaningful at this layer; the public loop API restricts
// words to magnitudes below the loop's strand count, while the equality
// engine drives the shifted variants that reach the top boundary.
//
// The update is exactly invertible: applying g then -g restores the
// coordinates entry for entry. Arithmetic goes through a numeric.Backend so
// fixed-width overflow is detected at every step; on overflow the update
// keeps going with the backend's wrapped result and reports the first
// overflow to the caller.
package dynnikov

import (
	"fmt"

	"github.com/topodyn/braidkit/pkg/numeric"
)

// Apply acts with the signed generators on the coordinate slices in place.
// a and b must have equal length K >= 1 and every |g| must lie in [1, K+1].
// The returned error, if non-nil, wraps numeric.ErrOverflow and refers to
// the first overflowing step; a and b then hold the best-effort result.
func Apply(be numeric.Backend, a, b []numeric.Value, gens []int) error {
	k := len(a)
	if len(b) != k {
		panic("dynnikov: coordinate slices differ in length")
	}
	st := state{be: be, zero: be.Zero()}

	for _, g := range gens {
		i := g
		if i < 0 {
			i = -i
		}
		if i < 1 || i > k+1 {
			panic(fmt.Sprintf("dynnikov: generator %d outside [1, %d]", g, k+1))
		}
		switch {
		case i == 1:
			st.boundaryLow(a, b, g > 0)
		case i == k+1:
			st.boundaryHigh(a, b, g > 0)
		default:
			st.interior(a, b, i, g > 0)
		}
	}
	return st.err
}

// state carries the backend and the first overflow seen, so the update
// formulas read like the algebra they implement.
type state struct {
	be   numeric.Backend
	zero numeric.Value
	err  error
}

func (s *state) note(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *state) add(x, y numeric.Value) numeric.Value {
	v, err := s.be.Add(x, y)
	s.note(err)
	return v
}

func (s *state) sub(x, y numeric.Value) numeric.Value {
	v, err := s.be.Sub(x, y)
	s.note(err)
	return v
}

func (s *state) neg(x numeric.Value) numeric.Value {
	v, err := s.be.Neg(x)
	s.note(err)
	return v
}

// pos is the positive part max(x, 0).
func (s *state) pos(x numeric.Value) numeric.Value { return s.be.Max(x, s.zero) }

// npart is the negative part min(x, 0).
func (s *state) npart(x numeric.Value) numeric.Value { return s.be.Min(x, s.zero) }

// boundaryLow updates the entries next to the first puncture.
func (s *state) boundaryLow(a, b []numeric.Value, positive bool) {
	if positive {
		nb := s.add(a[0], s.pos(b[0]))
		a[0] = s.add(s.neg(b[0]), s.pos(nb))
		b[0] = nb
		return
	}
	nb := s.add(s.neg(a[0]), s.pos(b[0]))
	a[0] = s.sub(b[0], s.pos(nb))
	b[0] = nb
}

// boundaryHigh updates the entries next to the basepoint puncture.
func (s *state) boundaryHigh(a, b []numeric.Value, positive bool) {
	k := len(a) - 1
	if positive {
		nb := s.add(a[k], s.npart(b[k]))
		a[k] = s.add(s.neg(b[k]), s.npart(nb))
		b[k] = nb
		return
	}
	nb := s.add(s.neg(a[k]), s.npart(b[k]))
	a[k] = s.sub(b[k], s.npart(nb))
	b[k] = nb
}

// interior updates the two coordinate pairs flanking puncture i, 1 < i < K+1.
func (s *state) interior(a, b []numeric.Value, i int, positive bool) {
	l, r := i-2, i-1 // 0-based indices of the left and right pairs

	if positive {
		c := s.add(s.sub(a[l], a[r]), s.sub(s.npart(b[l]), s.pos(b[r])))
		na1 := s.sub(s.sub(a[l], s.pos(b[l])), s.pos(s.add(s.pos(b[r]), c)))
		nb1 := s.add(b[r], s.npart(c))
		na2 := s.sub(s.sub(a[r], s.npart(b[r])), s.npart(s.sub(s.npart(b[l]), c)))
		nb2 := s.sub(b[l], s.npart(c))
		a[l], b[l], a[r], b[r] = na1, nb1, na2, nb2
		return
	}

	d := s.add(s.sub(a[l], a[r]), s.sub(s.pos(b[r]), s.npart(b[l])))
	na1 := s.add(s.add(a[l], s.pos(b[l])), s.pos(s.sub(s.pos(b[r]), d)))
	nb1 := s.sub(b[r], s.pos(d))
	na2 := s.add(s.add(a[r], s.npart(b[r])), s.npart(s.add(s.npart(b[l]), d)))
	nb2 := s.add(b[l], s.pos(d))
	a[l], b[l], a[r], b[r] = na1, nb1, na2, nb2
}
