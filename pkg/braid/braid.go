// Package braid implements braid-group words: immutable sequences of signed
// Artin generators together with a strand count.
//
// A word is pure sequence algebra — composition, inversion and powers never
// touch loop coordinates. The geometric action of a word on a multicurve
// lives in package loop; isotopy equality and the entropy/complexity metrics
// derived from that action live in package dynamics.
//
// Generators are signed integers: +i is the crossing of strands i and i+1
// with strand i passing in front, -i its inverse. Every magnitude must be
// strictly less than the strand count.
package braid

import (
	"fmt"
	"strings"
)

// Word is an immutable braid word. The zero value is the identity braid on
// one strand. All operations return new values; a Word is never mutated.
type Word struct {
	n    int
	gens []int
}

// New builds a word on n strands from signed generators. It fails when
// n < 1 or any |g| is outside [1, n-1].
func New(n int, gens ...int) (Word, error) {
	if n < 1 {
		return Word{}, fmt.Errorf("%w: n=%d", ErrStrandCount, n)
	}
	for _, g := range gens {
		if g == 0 || g >= n || -g >= n {
			return Word{}, fmt.Errorf("%w: generator %d on %d strands", ErrGeneratorRange, g, n)
		}
	}
	w := Word{n: n, gens: make([]int, len(gens))}
	copy(w.gens, gens)
	return w, nil
}

// FromGens builds a word on the minimal strand count consistent with the
// generators: max|g|+1, or 1 for the empty word. A zero generator fails.
func FromGens(gens []int) (Word, error) {
	n := 1
	for _, g := range gens {
		if g == 0 {
			return Word{}, fmt.Errorf("%w: generator 0", ErrGeneratorRange)
		}
		m := g
		if m < 0 {
			m = -m
		}
		if m+1 > n {
			n = m + 1
		}
	}
	return New(n, gens...)
}

// Strands returns the strand count.
func (w Word) Strands() int {
	if w.n == 0 {
		return 1 // zero value is the identity on one strand
	}
	return w.n
}

// Gens returns a copy of the generator sequence.
func (w Word) Gens() []int {
	out := make([]int, len(w.gens))
	copy(out, w.gens)
	return out
}

// Len returns the number of generators.
func (w Word) Len() int { return len(w.gens) }

// IsIdentity reports whether the word is empty.
func (w Word) IsIdentity() bool { return len(w.gens) == 0 }

// WithStrands returns a copy of the word on n strands. The count can only
// be raised: lowering it below what the word needs fails.
func (w Word) WithStrands(n int) (Word, error) {
	if n < w.minStrands() {
		return Word{}, fmt.Errorf("%w: n=%d below word requirement %d", ErrStrandCount, n, w.minStrands())
	}
	return New(n, w.gens...)
}

func (w Word) minStrands() int {
	n := 1
	for _, g := range w.gens {
		m := g
		if m < 0 {
			m = -m
		}
		if m+1 > n {
			n = m + 1
		}
	}
	return n
}

// Compose concatenates two words. The result acts as w first, then o, and
// lives on max(w.Strands(), o.Strands()) strands.
func (w Word) Compose(o Word) Word {
	n := w.Strands()
	if o.Strands() > n {
		n = o.Strands()
	}
	gens := make([]int, 0, len(w.gens)+len(o.gens))
	gens = append(gens, w.gens...)
	gens = append(gens, o.gens...)
	return Word{n: n, gens: gens}
}

// Inverse returns the group inverse: the reversed word with every generator
// negated.
func (w Word) Inverse() Word {
	gens := make([]int, len(w.gens))
	for i, g := range w.gens {
		gens[len(w.gens)-1-i] = -g
	}
	return Word{n: w.Strands(), gens: gens}
}

// Power returns the m-th power: m repetitions of the word for m > 0, |m|
// repetitions of the inverse for m < 0, and the identity for m = 0.
func (w Word) Power(m int) Word {
	base := w
	if m < 0 {
		base = w.Inverse()
		m = -m
	}
	gens := make([]int, 0, m*len(base.gens))
	for i := 0; i < m; i++ {
		gens = append(gens, base.gens...)
	}
	return Word{n: w.Strands(), gens: gens}
}

// LexEq reports syntactic equality: same strand count, same length and
// entrywise-equal generators. Words that are isotopic but spelled
// differently compare unequal here; use dynamics.Eq for isotopy equality.
func (w Word) LexEq(o Word) bool {
	if w.Strands() != o.Strands() || len(w.gens) != len(o.gens) {
		return false
	}
	for i, g := range w.gens {
		if o.gens[i] != g {
			return false
		}
	}
	return true
}

// String renders the word in the angle-bracket form used throughout braid
// literature: the identity is "< e >", otherwise the signed generator list,
// e.g. "< 1 -2 3 >".
func (w Word) String() string {
	if w.IsIdentity() {
		return "< e >"
	}
	parts := make([]string, len(w.gens))
	for i, g := range w.gens {
		parts[i] = fmt.Sprintf("%d", g)
	}
	return "< " + strings.Join(parts, " ") + " >"
}
