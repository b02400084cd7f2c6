// Package dynamics decides braid equality and estimates stretching metrics
// through the action on loop coordinates.
//
// Two braid words that differ syntactically can represent the same mapping
// class; comparing their action on a canonical basis loop is a complete
// decision procedure for isotopy equality. The same action, iterated, yields
// the braid's topological entropy and its geometric complexity.
package dynamics

import (
	"github.com/topodyn/braidkit/internal/dynnikov"
	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

// Options select the canonical loop basis and the scalar representation used
// by the coordinate-based operations. The zero value uses the default basis
// and the default (checked 64-bit) representation.
type Options struct {
	Basis loop.Basis
	Kind  numeric.Kind
}

// Eq reports whether two braid words represent the same mapping class: equal
// strand count and identical action on the canonical basis loop. A non-nil
// error alongside the result is an overflow warning from the coordinate
// update; the comparison may then be unreliable and should be retried with a
// wider representation.
func Eq(b1, b2 braid.Word, opts Options) (bool, error) {
	if b1.Strands() != b2.Strands() {
		return false, nil
	}
	if b1.Strands() < 2 {
		// Only the identity word exists on fewer than two strands.
		return true, nil
	}
	r1, err := actOnBasis(b1, opts)
	if err != nil {
		return false, err
	}
	r2, err := actOnBasis(b2, opts)
	if err != nil {
		return false, err
	}
	warn := r1.warn
	if warn == nil {
		warn = r2.warn
	}
	for i := range r1.a {
		if r1.be.Cmp(r1.a[i], r2.a[i]) != 0 || r1.be.Cmp(r1.b[i], r2.b[i]) != 0 {
			return false, warn
		}
	}
	return true, warn
}

// LexEq reports strictly syntactic equality of two words: equal strand
// count, equal length and entrywise-equal generators.
func LexEq(b1, b2 braid.Word) bool { return b1.LexEq(b2) }

type basisAction struct {
	a, b []numeric.Value
	be   numeric.Backend
	warn error
}

// actOnBasis applies the word, rewritten per the basis convention, to the
// canonical basis loop. The rewritten generators may touch the puncture
// reserved for the basepoint, so the update kernel is invoked directly on
// the coordinate slices.
func actOnBasis(w braid.Word, opts Options) (*basisAction, error) {
	base, err := loop.Canonical(w.Strands(), opts.Basis, opts.Kind)
	if err != nil {
		return nil, err
	}
	act := &basisAction{a: base.A(), b: base.B(), be: base.Backend()}
	act.warn = dynnikov.Apply(act.be, act.a, act.b, basisGens(w, opts.Basis))
	return act, nil
}

// basisGens rewrites the generator sequence for the chosen basis. The
// default and boundary bases act with the word as given; the left basis
// shifts every generator index up by one, and the Dehornoy basis
// additionally mirrors the sign.
func basisGens(w braid.Word, basis loop.Basis) []int {
	gens := w.Gens()
	switch basis {
	case loop.BasisLeft:
		for i, g := range gens {
			gens[i] = shift(g)
		}
	case loop.BasisDehornoy:
		for i, g := range gens {
			gens[i] = -shift(g)
		}
	}
	return gens
}

func shift(g int) int {
	if g > 0 {
		return g + 1
	}
	return g - 1
}
