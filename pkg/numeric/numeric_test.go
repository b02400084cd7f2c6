package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topodyn/braidkit/pkg/numeric"
)

// TestParseKind covers the configuration names and the default.
func TestParseKind(t *testing.T) {
	for name, want := range map[string]numeric.Kind{
		"":        numeric.Fixed64,
		"fixed64": numeric.Fixed64,
		"fixed32": numeric.Fixed32,
		"big":     numeric.Big,
		"float":   numeric.Float,
	} {
		got, err := numeric.ParseKind(name)
		require.NoError(t, err, "ParseKind(%q)", name)
		assert.Equal(t, want, got, "ParseKind(%q)", name)
	}

	_, err := numeric.ParseKind("decimal")
	require.ErrorIs(t, err, numeric.ErrUnknownKind)
}

// TestKindZeroValue guards the convention that the zero Kind is the default.
func TestKindZeroValue(t *testing.T) {
	var k numeric.Kind
	assert.Equal(t, numeric.DefaultKind, k)
	assert.Equal(t, "fixed64", k.String())
}

// TestNewUnknownKind checks that New rejects selectors outside the enum.
func TestNewUnknownKind(t *testing.T) {
	_, err := numeric.New(numeric.Kind(42))
	require.ErrorIs(t, err, numeric.ErrUnknownKind)
}

// TestFixed64Overflow exercises the checked boundaries of the 64-bit
// representation. Overflow must return both the wrapped best-effort value
// and an error matching the sentinel.
func TestFixed64Overflow(t *testing.T) {
	be := numeric.MustNew(numeric.Fixed64)
	maxv := be.FromInt64(math.MaxInt64)
	minv := be.FromInt64(math.MinInt64)
	one := be.FromInt64(1)

	_, err := be.Add(maxv, one)
	require.ErrorIs(t, err, numeric.ErrOverflow)
	var oe *numeric.OverflowError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "add", oe.Op)

	_, err = be.Sub(minv, one)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = be.Neg(minv)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = be.Abs(minv)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	// One below the boundary is fine.
	v, err := be.Add(be.FromInt64(math.MaxInt64-1), one)
	require.NoError(t, err)
	i, exact := v.Int64()
	require.True(t, exact)
	assert.Equal(t, int64(math.MaxInt64), i)
}

// TestFixed32Overflow checks that the 32-bit representation overflows at the
// int32 bounds even though the payload is wider.
func TestFixed32Overflow(t *testing.T) {
	be := numeric.MustNew(numeric.Fixed32)
	maxv := be.FromInt64(math.MaxInt32)
	one := be.FromInt64(1)

	wrapped, err := be.Add(maxv, one)
	require.ErrorIs(t, err, numeric.ErrOverflow)
	i, exact := wrapped.Int64()
	require.True(t, exact)
	assert.Equal(t, int64(math.MinInt32), i, "best-effort value folds through int32")

	v, err := be.Sub(maxv, one)
	require.NoError(t, err)
	i, _ = v.Int64()
	assert.Equal(t, int64(math.MaxInt32-1), i)
}

// TestBigNeverOverflows iterates far past the int64 range.
func TestBigNeverOverflows(t *testing.T) {
	be := numeric.MustNew(numeric.Big)
	v := be.FromInt64(math.MaxInt64)
	for i := 0; i < 10; i++ {
		var err error
		v, err = be.Add(v, v)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, be.Sign(v))
	_, exact := v.Int64()
	assert.False(t, exact, "value should exceed int64")
}

// TestFloatBackend checks that the approximate representation never signals
// and orders values as expected.
func TestFloatBackend(t *testing.T) {
	be := numeric.MustNew(numeric.Float)
	huge := numeric.FromFloat64(math.MaxFloat64)
	sum, err := be.Add(huge, huge)
	require.NoError(t, err, "float arithmetic never signals")
	assert.True(t, math.IsInf(sum.Float64(), 1))

	assert.Equal(t, -1, be.Cmp(be.FromInt64(-3), be.Zero()))
	assert.Equal(t, 0, be.Cmp(numeric.FromFloat64(2.5), numeric.FromFloat64(2.5)))
}

// TestComparisons covers Max, Min, Cmp and Sign on the default backend.
func TestComparisons(t *testing.T) {
	be := numeric.MustNew(numeric.Fixed64)
	a, b := be.FromInt64(-7), be.FromInt64(3)

	assert.Equal(t, 0, be.Cmp(be.Max(a, b), b))
	assert.Equal(t, 0, be.Cmp(be.Min(a, b), a))
	assert.Equal(t, -1, be.Cmp(a, b))
	assert.Equal(t, 1, be.Cmp(b, a))
	assert.Equal(t, -1, be.Sign(a))
	assert.Equal(t, 1, be.Sign(b))
	assert.Equal(t, 0, be.Sign(be.Zero()))
}

// TestFits checks the representability helper used by loop constructors.
func TestFits(t *testing.T) {
	assert.True(t, numeric.Fits(numeric.Fixed64, math.MaxInt64))
	assert.True(t, numeric.Fits(numeric.Fixed32, math.MaxInt32))
	assert.False(t, numeric.Fits(numeric.Fixed32, math.MaxInt32+1))
	assert.False(t, numeric.Fits(numeric.Fixed32, math.MinInt32-1))
	assert.True(t, numeric.Fits(numeric.Big, math.MinInt64))
}

// TestMixedRepresentationsPanic guards the backends against accidental
// cross-representation arithmetic.
func TestMixedRepresentationsPanic(t *testing.T) {
	f64 := numeric.MustNew(numeric.Fixed64)
	f32 := numeric.MustNew(numeric.Fixed32)
	assert.Panics(t, func() {
		_, _ = f64.Add(f64.FromInt64(1), f32.FromInt64(1))
	})
}

// TestValueString covers the representation-tagged rendering.
func TestValueString(t *testing.T) {
	be := numeric.MustNew(numeric.Fixed64)
	assert.Equal(t, "-12", be.FromInt64(-12).String())
	big := numeric.MustNew(numeric.Big)
	assert.Equal(t, "7", big.FromInt64(7).String())
}
