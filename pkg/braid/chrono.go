package braid

import (
	"fmt"
	"sort"
)

// Chrono is a braid word whose crossings carry real-valued times, one per
// generator and positionally aligned. It wraps a plain Word rather than
// extending it: operations that assume a braid has no temporal structure
// (Power, Inverse, cyclic permutation, raw entropy) are deliberately absent
// from this type — see ErrTimestamped for the boundary error used where a
// caller asks for one anyway.
type Chrono struct {
	word  Word
	times []float64
}

// NewChrono pairs a word with crossing times. Times must have exactly one
// entry per generator and be monotonically non-decreasing; a nil slice
// defaults to 1, 2, ..., Len.
func NewChrono(w Word, times []float64) (Chrono, error) {
	if times == nil {
		times = make([]float64, w.Len())
		for i := range times {
			times[i] = float64(i + 1)
		}
		return Chrono{word: w, times: times}, nil
	}
	if len(times) != w.Len() {
		return Chrono{}, fmt.Errorf("%w: %d times for %d generators", ErrTimeCount, len(times), w.Len())
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return Chrono{}, fmt.Errorf("%w: t[%d]=%g after t[%d]=%g", ErrTimeOrder, i, times[i], i-1, times[i-1])
		}
	}
	ts := make([]float64, len(times))
	copy(ts, times)
	return Chrono{word: w, times: ts}, nil
}

// Word returns the underlying plain braid word.
func (c Chrono) Word() Word { return c.word }

// Times returns a copy of the crossing-time sequence.
func (c Chrono) Times() []float64 {
	out := make([]float64, len(c.times))
	copy(out, c.times)
	return out
}

// Len returns the number of crossings.
func (c Chrono) Len() int { return c.word.Len() }

// Strands returns the strand count of the underlying word.
func (c Chrono) Strands() int { return c.word.Strands() }

// Compose concatenates two time-stamped braids. Concatenation is permitted
// only when c ends no later than o begins; otherwise ErrChronology.
func (c Chrono) Compose(o Chrono) (Chrono, error) {
	if c.Len() > 0 && o.Len() > 0 && c.times[c.Len()-1] > o.times[0] {
		return Chrono{}, fmt.Errorf("%w: left ends at %g, right starts at %g",
			ErrChronology, c.times[c.Len()-1], o.times[0])
	}
	times := make([]float64, 0, c.Len()+o.Len())
	times = append(times, c.times...)
	times = append(times, o.times...)
	return Chrono{word: c.word.Compose(o.word), times: times}, nil
}

// Equal reports equality of two time-stamped braids: the time sequences must
// be entrywise identical, and the words must compare equal lexicographically
// after canonicalization. Crossings that share a timestamp happened
// simultaneously, which is only physically possible when they commute, so
// each equal-time run is stably reordered by ascending generator magnitude
// before comparison.
func (c Chrono) Equal(o Chrono) bool {
	if c.Len() != o.Len() {
		return false
	}
	for i, t := range c.times {
		if o.times[i] != t {
			return false
		}
	}
	return c.canonicalWord().LexEq(o.canonicalWord())
}

// canonicalWord stably sorts each run of generators sharing a timestamp by
// ascending magnitude.
func (c Chrono) canonicalWord() Word {
	gens := c.word.Gens()
	for lo := 0; lo < len(gens); {
		hi := lo + 1
		for hi < len(gens) && c.times[hi] == c.times[lo] {
			hi++
		}
		if hi-lo > 1 {
			run := gens[lo:hi]
			sort.SliceStable(run, func(a, b int) bool {
				return abs(run[a]) < abs(run[b])
			})
		}
		lo = hi
	}
	w, _ := New(c.word.Strands(), gens...) // gens came from a valid word
	return w
}

// Sub projects the braid onto a strand subset, carrying over only the
// crossing times of the generators retained by the projection.
func (c Chrono) Sub(strands []int) (Chrono, error) {
	sub, kept, err := c.word.Sub(strands)
	if err != nil {
		return Chrono{}, err
	}
	times := make([]float64, len(kept))
	for i, j := range kept {
		times[i] = c.times[j]
	}
	return Chrono{word: sub, times: times}, nil
}

// String renders the word followed by its time sequence.
func (c Chrono) String() string {
	return fmt.Sprintf("%s @ %v", c.word, c.times)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
