package numeric

// Backend performs arithmetic over scalars of one representation. Operations
// that can overflow return the wrapped best-effort value together with a
// non-nil *OverflowError; Max, Min, Cmp and Sign never fail.
//
// Both operands of a binary operation must come from the same backend;
// mixing representations is a programmer error and panics.
type Backend interface {
	// Kind reports the representation this backend operates on.
	Kind() Kind

	// Zero returns the additive identity.
	Zero() Value

	// FromInt64 converts an int64 into a backend value. For Fixed32 the
	// input must fit in 32 bits; out-of-range inputs panic since basis
	// loops and user coordinates are validated before conversion.
	FromInt64(v int64) Value

	// Add returns x+y.
	Add(x, y Value) (Value, error)

	// Sub returns x-y.
	Sub(x, y Value) (Value, error)

	// Neg returns -x.
	Neg(x Value) (Value, error)

	// Abs returns |x|.
	Abs(x Value) (Value, error)

	// Max returns the larger of x and y.
	Max(x, y Value) Value

	// Min returns the smaller of x and y.
	Min(x, y Value) Value

	// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
	Cmp(x, y Value) int

	// Sign returns -1, 0 or +1 as x is negative, zero or positive.
	Sign(x Value) int
}

// New returns the backend for the given kind.
func New(kind Kind) (Backend, error) {
	switch kind {
	case Fixed32, Fixed64:
		return newFixed(kind), nil
	case Big:
		return bigBackend{}, nil
	case Float:
		return floatBackend{}, nil
	}
	return nil, ErrUnknownKind
}

// MustNew is New for statically known kinds; it panics on unknown kinds.
func MustNew(kind Kind) Backend {
	be, err := New(kind)
	if err != nil {
		panic(err)
	}
	return be
}

// checkKind panics when v was produced by a different representation.
func checkKind(v Value, k Kind) {
	if v.kind != k {
		panic("numeric: mixed value representations: " + v.kind.String() + " used with " + k.String())
	}
}
