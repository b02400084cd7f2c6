package numeric

// floatBackend implements float64 approximation arithmetic. It never signals
// overflow (values saturate to ±Inf per IEEE 754) and must not be used where
// exact coordinate comparison is required; its purpose is the normalized
// entropy iteration, where only growth ratios matter.
type floatBackend struct{}

func (floatBackend) Kind() Kind  { return Float }
func (floatBackend) Zero() Value { return Value{kind: Float} }

func (floatBackend) FromInt64(v int64) Value {
	return Value{kind: Float, f: float64(v)}
}

// FromFloat64 converts a float64 directly; used by the entropy iteration to
// rebuild coordinates after normalization.
func (floatBackend) FromFloat64(v float64) Value {
	return Value{kind: Float, f: v}
}

func (floatBackend) Add(x, y Value) (Value, error) {
	checkKind(x, Float)
	checkKind(y, Float)
	return Value{kind: Float, f: x.f + y.f}, nil
}

func (floatBackend) Sub(x, y Value) (Value, error) {
	checkKind(x, Float)
	checkKind(y, Float)
	return Value{kind: Float, f: x.f - y.f}, nil
}

func (floatBackend) Neg(x Value) (Value, error) {
	checkKind(x, Float)
	return Value{kind: Float, f: -x.f}, nil
}

func (floatBackend) Abs(x Value) (Value, error) {
	checkKind(x, Float)
	if x.f < 0 {
		return Value{kind: Float, f: -x.f}, nil
	}
	return x, nil
}

func (floatBackend) Max(x, y Value) Value {
	checkKind(x, Float)
	checkKind(y, Float)
	if x.f >= y.f {
		return x
	}
	return y
}

func (floatBackend) Min(x, y Value) Value {
	checkKind(x, Float)
	checkKind(y, Float)
	if x.f <= y.f {
		return x
	}
	return y
}

func (floatBackend) Cmp(x, y Value) int {
	checkKind(x, Float)
	checkKind(y, Float)
	switch {
	case x.f < y.f:
		return -1
	case x.f > y.f:
		return 1
	}
	return 0
}

func (floatBackend) Sign(x Value) int {
	switch {
	case x.f < 0:
		return -1
	case x.f > 0:
		return 1
	}
	return 0
}

// FromFloat64 converts a float64 into a Float value. It is a free function
// because only the Float backend can represent non-integral scalars.
func FromFloat64(v float64) Value {
	return Value{kind: Float, f: v}
}

// Ensure floatBackend implements Backend.
var _ Backend = floatBackend{}
