package loop

import (
	"fmt"

	"github.com/topodyn/braidkit/internal/dynnikov"
	"github.com/topodyn/braidkit/pkg/braid"
)

// Apply acts with the braid word on the loop, generator by generator from
// left to right, and returns the resulting loop. The input loop is not
// modified.
//
// Every generator magnitude must be strictly below the loop's strand count;
// otherwise Apply fails with ErrGeneratorRange before any update is applied.
//
// On a fixed-width backend an intermediate step may overflow. Apply then
// still returns the backend's best-effort result together with a non-nil
// error wrapping numeric.ErrOverflow: callers comparing coordinates may
// proceed at their own risk, callers needing exact values must treat the
// error as fatal.
func (l *Loop) Apply(w braid.Word) (*Loop, error) {
	gens := w.Gens()
	for _, g := range gens {
		if g >= l.n || -g >= l.n {
			return nil, fmt.Errorf("%w: generator %d on a loop with %d strands",
				ErrGeneratorRange, g, l.n)
		}
	}
	out := l.clone()
	err := dynnikov.Apply(out.be, out.a, out.b, gens)
	return out, err
}
