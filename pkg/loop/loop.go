// Package loop implements Dynnikov coordinates for multicurves on the
// punctured disk and the action of braid words on them.
//
// A Loop with strand count n holds two parallel coordinate slices a, b of
// length n-1; geometrically it is a multicurve on n+1 punctures, the last of
// which serves as the basepoint. Coordinates are exact integers carried by a
// numeric.Backend so arithmetic overflow under braid action is detected
// rather than wrapped silently.
//
// Loops are immutable: constructors and Apply return new values.
package loop

import (
	"fmt"
	"strings"

	"github.com/topodyn/braidkit/pkg/numeric"
)

// Loop is a Dynnikov coordinate vector describing a single multicurve.
type Loop struct {
	n  int
	be numeric.Backend
	a  []numeric.Value
	b  []numeric.Value
}

// FromCoords builds a loop from a flat coordinate sequence laid out as the
// a-half followed by the b-half. The sequence must be non-empty and of even
// length; the strand count is len/2 + 1.
func FromCoords(coords []int64, kind numeric.Kind) (*Loop, error) {
	if len(coords) == 0 {
		return nil, ErrNoCoordinates
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d entries", ErrOddLength, len(coords))
	}
	half := len(coords) / 2
	return FromAB(coords[:half], coords[half:], kind)
}

// FromAB builds a loop from explicit a and b sequences of equal, non-zero
// length. The strand count is len(a) + 1.
func FromAB(a, b []int64, kind numeric.Kind) (*Loop, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return nil, ErrNoCoordinates
	}
	be, err := numeric.New(kind)
	if err != nil {
		return nil, err
	}
	l := &Loop{n: len(a) + 1, be: be,
		a: make([]numeric.Value, len(a)),
		b: make([]numeric.Value, len(b))}
	for i := range a {
		if !numeric.Fits(kind, a[i]) || !numeric.Fits(kind, b[i]) {
			return nil, fmt.Errorf("loop: coordinate pair (%d, %d) not representable as %s: %w",
				a[i], b[i], kind, numeric.ErrOverflow)
		}
		l.a[i] = be.FromInt64(a[i])
		l.b[i] = be.FromInt64(b[i])
	}
	return l, nil
}

// Strands returns the loop's strand count n; the coordinate slices have
// length n-1.
func (l *Loop) Strands() int { return l.n }

// Backend returns the numeric backend shared by all coordinate entries.
func (l *Loop) Backend() numeric.Backend { return l.be }

// Kind returns the numeric representation of the coordinates.
func (l *Loop) Kind() numeric.Kind { return l.be.Kind() }

// A returns a copy of the a-coordinates.
func (l *Loop) A() []numeric.Value {
	out := make([]numeric.Value, len(l.a))
	copy(out, l.a)
	return out
}

// B returns a copy of the b-coordinates.
func (l *Loop) B() []numeric.Value {
	out := make([]numeric.Value, len(l.b))
	copy(out, l.b)
	return out
}

// Coords returns a copy of the flat coordinate sequence, a-half then b-half.
func (l *Loop) Coords() []numeric.Value {
	out := make([]numeric.Value, 0, 2*len(l.a))
	out = append(out, l.a...)
	out = append(out, l.b...)
	return out
}

// Int64Coords returns the flat coordinates as int64 where exactly
// representable; the second result is false when any entry is not.
func (l *Loop) Int64Coords() ([]int64, bool) {
	out := make([]int64, 0, 2*len(l.a))
	ok := true
	for _, v := range l.Coords() {
		i, exact := v.Int64()
		if !exact {
			ok = false
		}
		out = append(out, i)
	}
	return out, ok
}

// Equal reports entrywise equality under the shared backend's comparison.
// Loops of different strand count or representation compare unequal.
func (l *Loop) Equal(o *Loop) bool {
	if l.n != o.n || l.Kind() != o.Kind() {
		return false
	}
	for i := range l.a {
		if l.be.Cmp(l.a[i], o.a[i]) != 0 || l.be.Cmp(l.b[i], o.b[i]) != 0 {
			return false
		}
	}
	return true
}

// clone copies the loop so Apply can mutate the copy's coordinates.
func (l *Loop) clone() *Loop {
	return &Loop{n: l.n, be: l.be, a: l.A(), b: l.B()}
}

// String renders the flat coordinates in double-parenthesis loop notation,
// e.g. "(( 0 0 0 -1 -1 -1 ))".
func (l *Loop) String() string {
	parts := make([]string, 0, 2*len(l.a))
	for _, v := range l.Coords() {
		parts = append(parts, v.String())
	}
	return "(( " + strings.Join(parts, " ") + " ))"
}
