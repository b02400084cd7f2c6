package loop

import (
	"sync"

	"github.com/topodyn/braidkit/pkg/braid"
)

// Orientation records how a batch of loops is stacked when viewed as a
// coordinate matrix: one loop per row or one loop per column. Transposition
// flips the orientation without reordering members.
type Orientation int

const (
	// Rows stacks one loop per matrix row.
	Rows Orientation = iota
	// Cols stacks one loop per matrix column.
	Cols
)

// Batch is an ordered collection of independent loops sharing one strand
// count and one numeric backend. Batch members are independent multicurves:
// braid action applies to each member separately, and members may be updated
// concurrently, while each member's own generator sequence stays strictly in
// word order.
type Batch struct {
	n      int
	orient Orientation
	loops  []*Loop
}

// NewBatch collects loops into a batch. All loops must share strand count
// and backend kind.
func NewBatch(loops []*Loop, orient Orientation) (*Batch, error) {
	if len(loops) == 0 {
		return nil, ErrNoCoordinates
	}
	n, kind := loops[0].Strands(), loops[0].Kind()
	for _, l := range loops[1:] {
		if l.Strands() != n || l.Kind() != kind {
			return nil, ErrMixedBatch
		}
	}
	out := &Batch{n: n, orient: orient, loops: make([]*Loop, len(loops))}
	copy(out.loops, loops)
	return out, nil
}

// Strands returns the shared strand count.
func (t *Batch) Strands() int { return t.n }

// Len returns the number of batch members.
func (t *Batch) Len() int { return len(t.loops) }

// Orientation reports the current stacking orientation.
func (t *Batch) Orientation() Orientation { return t.orient }

// Loops returns the members in order. The order is independent of the
// stacking orientation.
func (t *Batch) Loops() []*Loop {
	out := make([]*Loop, len(t.loops))
	copy(out, t.loops)
	return out
}

// Transpose returns the batch with the opposite stacking orientation. The
// member loops and their order are unchanged.
func (t *Batch) Transpose() *Batch {
	flipped := Rows
	if t.orient == Rows {
		flipped = Cols
	}
	out := &Batch{n: t.n, orient: flipped, loops: make([]*Loop, len(t.loops))}
	copy(out.loops, t.loops)
	return out
}

// Apply acts with the word on every member concurrently and returns a new
// batch in the same order and orientation. If any member's update overflows,
// the first such warning is returned with the best-effort batch; a generator
// out of range fails the whole batch before any work starts.
func (t *Batch) Apply(w braid.Word) (*Batch, error) {
	for _, g := range w.Gens() {
		if g >= t.n || -g >= t.n {
			return nil, ErrGeneratorRange
		}
	}

	out := &Batch{n: t.n, orient: t.orient, loops: make([]*Loop, len(t.loops))}
	errs := make([]error, len(t.loops))

	var wg sync.WaitGroup
	for i, l := range t.loops {
		wg.Add(1)
		go func(i int, l *Loop) {
			defer wg.Done()
			out.loops[i], errs[i] = l.Apply(w)
		}(i, l)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return out, err
		}
	}
	return out, nil
}
