package numeric

import "math/big"

// bigBackend implements arbitrary-precision integer arithmetic. Its
// operations never overflow and therefore never return an error. Values are
// treated as immutable: every operation allocates a fresh big.Int.
type bigBackend struct{}

func (bigBackend) Kind() Kind  { return Big }
func (bigBackend) Zero() Value { return Value{kind: Big, b: new(big.Int)} }

func (bigBackend) FromInt64(v int64) Value {
	return Value{kind: Big, b: big.NewInt(v)}
}

func (bigBackend) Add(x, y Value) (Value, error) {
	checkKind(x, Big)
	checkKind(y, Big)
	return Value{kind: Big, b: new(big.Int).Add(x.b, y.b)}, nil
}

func (bigBackend) Sub(x, y Value) (Value, error) {
	checkKind(x, Big)
	checkKind(y, Big)
	return Value{kind: Big, b: new(big.Int).Sub(x.b, y.b)}, nil
}

func (bigBackend) Neg(x Value) (Value, error) {
	checkKind(x, Big)
	return Value{kind: Big, b: new(big.Int).Neg(x.b)}, nil
}

func (bigBackend) Abs(x Value) (Value, error) {
	checkKind(x, Big)
	return Value{kind: Big, b: new(big.Int).Abs(x.b)}, nil
}

func (be bigBackend) Max(x, y Value) Value {
	if be.Cmp(x, y) >= 0 {
		return x
	}
	return y
}

func (be bigBackend) Min(x, y Value) Value {
	if be.Cmp(x, y) <= 0 {
		return x
	}
	return y
}

func (bigBackend) Cmp(x, y Value) int {
	checkKind(x, Big)
	checkKind(y, Big)
	return x.b.Cmp(y.b)
}

func (bigBackend) Sign(x Value) int {
	checkKind(x, Big)
	return x.b.Sign()
}

// Ensure bigBackend implements Backend.
var _ Backend = bigBackend{}
