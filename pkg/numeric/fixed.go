package numeric

import "math"

// fixedBackend implements checked fixed-width integer arithmetic. Values are
// held in an int64 payload; Fixed32 additionally range-checks against the
// int32 bounds and wraps through int32 conversion on overflow.
type fixedBackend struct {
	kind   Kind
	lo, hi int64
}

func newFixed(kind Kind) fixedBackend {
	if kind == Fixed32 {
		return fixedBackend{kind: kind, lo: math.MinInt32, hi: math.MaxInt32}
	}
	return fixedBackend{kind: Fixed64, lo: math.MinInt64, hi: math.MaxInt64}
}

func (be fixedBackend) Kind() Kind  { return be.kind }
func (be fixedBackend) Zero() Value { return Value{kind: be.kind} }

func (be fixedBackend) FromInt64(v int64) Value {
	if v < be.lo || v > be.hi {
		panic("numeric: literal out of range for " + be.kind.String())
	}
	return Value{kind: be.kind, i: v}
}

// wrap folds an out-of-range intermediate back into the representation so a
// best-effort result is always available alongside the overflow error.
func (be fixedBackend) wrap(v int64) Value {
	if be.kind == Fixed32 {
		return Value{kind: be.kind, i: int64(int32(v))}
	}
	return Value{kind: be.kind, i: v}
}

func (be fixedBackend) Add(x, y Value) (Value, error) {
	checkKind(x, be.kind)
	checkKind(y, be.kind)
	r := x.i + y.i
	if (y.i > 0 && r < x.i) || (y.i < 0 && r > x.i) || r < be.lo || r > be.hi {
		return be.wrap(r), &OverflowError{Op: "add", Kind: be.kind, X: x, Y: y}
	}
	return Value{kind: be.kind, i: r}, nil
}

func (be fixedBackend) Sub(x, y Value) (Value, error) {
	checkKind(x, be.kind)
	checkKind(y, be.kind)
	r := x.i - y.i
	if (y.i > 0 && r > x.i) || (y.i < 0 && r < x.i) || r < be.lo || r > be.hi {
		return be.wrap(r), &OverflowError{Op: "sub", Kind: be.kind, X: x, Y: y}
	}
	return Value{kind: be.kind, i: r}, nil
}

func (be fixedBackend) Neg(x Value) (Value, error) {
	checkKind(x, be.kind)
	if x.i == be.lo {
		return be.wrap(x.i), &OverflowError{Op: "neg", Kind: be.kind, X: x}
	}
	return Value{kind: be.kind, i: -x.i}, nil
}

func (be fixedBackend) Abs(x Value) (Value, error) {
	checkKind(x, be.kind)
	if x.i >= 0 {
		return x, nil
	}
	if x.i == be.lo {
		return be.wrap(x.i), &OverflowError{Op: "abs", Kind: be.kind, X: x}
	}
	return Value{kind: be.kind, i: -x.i}, nil
}

func (be fixedBackend) Max(x, y Value) Value {
	checkKind(x, be.kind)
	checkKind(y, be.kind)
	if x.i >= y.i {
		return x
	}
	return y
}

func (be fixedBackend) Min(x, y Value) Value {
	checkKind(x, be.kind)
	checkKind(y, be.kind)
	if x.i <= y.i {
		return x
	}
	return y
}

func (be fixedBackend) Cmp(x, y Value) int {
	checkKind(x, be.kind)
	checkKind(y, be.kind)
	switch {
	case x.i < y.i:
		return -1
	case x.i > y.i:
		return 1
	}
	return 0
}

func (be fixedBackend) Sign(x Value) int {
	checkKind(x, be.kind)
	switch {
	case x.i < 0:
		return -1
	case x.i > 0:
		return 1
	}
	return 0
}

// Ensure fixedBackend implements Backend.
var _ Backend = fixedBackend{}
