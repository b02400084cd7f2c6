package loop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

func mustWord(t *testing.T, n int, gens ...int) braid.Word {
	t.Helper()
	w, err := braid.New(n, gens...)
	require.NoError(t, err)
	return w
}

// TestFromCoordsShape rejects odd-length and empty coordinate sequences.
func TestFromCoordsShape(t *testing.T) {
	_, err := loop.FromCoords([]int64{1, 2, 3}, numeric.Fixed64)
	require.ErrorIs(t, err, loop.ErrOddLength)

	_, err = loop.FromCoords(nil, numeric.Fixed64)
	require.ErrorIs(t, err, loop.ErrNoCoordinates)

	l, err := loop.FromCoords([]int64{0, 0, -1, -1}, numeric.Fixed64)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Strands())
}

// TestFromABShape rejects mismatched halves.
func TestFromABShape(t *testing.T) {
	_, err := loop.FromAB([]int64{1, 2, 3}, []int64{4, 5}, numeric.Fixed64)
	require.ErrorIs(t, err, loop.ErrLengthMismatch)

	_, err = loop.FromAB(nil, nil, numeric.Fixed64)
	require.ErrorIs(t, err, loop.ErrNoCoordinates)
}

// TestFromCoordsRange rejects coordinates outside the representation
// instead of panicking.
func TestFromCoordsRange(t *testing.T) {
	_, err := loop.FromCoords([]int64{math.MaxInt32 + 1, 0}, numeric.Fixed32)
	require.ErrorIs(t, err, numeric.ErrOverflow)

	l, err := loop.FromCoords([]int64{math.MaxInt32 + 1, 0}, numeric.Fixed64)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Strands())
}

// TestCanonicalBases checks the coordinate patterns of the four canonical
// families for four strands.
func TestCanonicalBases(t *testing.T) {
	def, err := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)
	got, _ := def.Int64Coords()
	assert.Equal(t, []int64{0, 0, 0, -1, -1, -1}, got)

	left, err := loop.Canonical(4, loop.BasisLeft, numeric.Fixed64)
	require.NoError(t, err)
	got, _ = left.Int64Coords()
	assert.Equal(t, []int64{0, 0, 0, 1, 1, 1}, got)

	deh, err := loop.Canonical(4, loop.BasisDehornoy, numeric.Fixed64)
	require.NoError(t, err)
	assert.True(t, deh.Equal(left), "Dehornoy basis shares the left pattern")

	bp, err := loop.Canonical(4, loop.BasisBoundary, numeric.Fixed64)
	require.NoError(t, err)
	assert.Equal(t, 5, bp.Strands(), "boundary basis appends one puncture")
	got, _ = bp.Int64Coords()
	assert.Equal(t, []int64{0, 0, 0, 0, -1, -1, -1, -1}, got)

	_, err = loop.Canonical(1, loop.BasisDefault, numeric.Fixed64)
	require.Error(t, err)
}

// TestParseBasis maps configuration names onto the basis enum.
func TestParseBasis(t *testing.T) {
	for name, want := range map[string]loop.Basis{
		"":         loop.BasisDefault,
		"default":  loop.BasisDefault,
		"left":     loop.BasisLeft,
		"dehornoy": loop.BasisDehornoy,
		"bp":       loop.BasisBoundary,
		"boundary": loop.BasisBoundary,
	} {
		got, err := loop.ParseBasis(name)
		require.NoError(t, err, "ParseBasis(%q)", name)
		assert.Equal(t, want, got, "ParseBasis(%q)", name)
	}
	_, err := loop.ParseBasis("right")
	require.ErrorIs(t, err, loop.ErrBadBasis)
}

// TestApplyKnownWord pins the generator action to the literal coordinates
// of sigma_1 sigma_2^-1 sigma_3 acting on the canonical basis of B_4.
func TestApplyKnownWord(t *testing.T) {
	l, err := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)

	out, err := l.Apply(mustWord(t, 4, 1, -2, 3))
	require.NoError(t, err)
	got, exact := out.Int64Coords()
	require.True(t, exact)
	assert.Equal(t, []int64{1, -2, 1, -2, -2, 2}, got)

	// The input loop is untouched.
	orig, _ := l.Int64Coords()
	assert.Equal(t, []int64{0, 0, 0, -1, -1, -1}, orig)
}

// TestApplyIdentity leaves every loop unchanged.
func TestApplyIdentity(t *testing.T) {
	for _, n := range []int{3, 5} {
		l, err := loop.Canonical(n, loop.BasisDefault, numeric.Fixed64)
		require.NoError(t, err)
		id, err := braid.New(n)
		require.NoError(t, err)
		out, err := l.Apply(id)
		require.NoError(t, err)
		assert.True(t, out.Equal(l), "identity on %d strands", n)
	}
}

// TestApplyInverse checks that the update is exactly invertible: a word
// followed by its inverse restores the coordinates entry for entry.
func TestApplyInverse(t *testing.T) {
	l, err := loop.FromCoords([]int64{2, -3, 1, 0, 4, -1}, numeric.Fixed64)
	require.NoError(t, err)

	w := mustWord(t, 4, 1, -2, 3, 3, -1, 2)
	fwd, err := l.Apply(w)
	require.NoError(t, err)
	back, err := fwd.Apply(w.Inverse())
	require.NoError(t, err)
	assert.True(t, back.Equal(l))
}

// TestApplyGeneratorRange rejects words whose generators reach the strand
// count before touching the coordinates.
func TestApplyGeneratorRange(t *testing.T) {
	l, err := loop.Canonical(5, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)

	w := mustWord(t, 7, 6)
	_, err = l.Apply(w)
	require.ErrorIs(t, err, loop.ErrGeneratorRange)
}

// TestApplyOverflowWarning drives exponential coordinate growth into the
// fixed 64-bit range and expects a best-effort result plus a warning.
func TestApplyOverflowWarning(t *testing.T) {
	l, err := loop.Canonical(3, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)

	w := mustWord(t, 3, 1, -2).Power(100)
	res, err := l.Apply(w)
	require.ErrorIs(t, err, numeric.ErrOverflow)
	require.NotNil(t, res, "best-effort result accompanies the warning")

	// The arbitrary-precision representation absorbs the same word.
	lb, err := loop.Canonical(3, loop.BasisDefault, numeric.Big)
	require.NoError(t, err)
	_, err = lb.Apply(w)
	require.NoError(t, err)
}

// TestEqual distinguishes strand counts and representations.
func TestEqual(t *testing.T) {
	a, _ := loop.FromCoords([]int64{0, -1}, numeric.Fixed64)
	b, _ := loop.FromCoords([]int64{0, -1}, numeric.Fixed64)
	c, _ := loop.FromCoords([]int64{0, -1}, numeric.Fixed32)
	d, _ := loop.FromCoords([]int64{0, 0, -1, -1}, numeric.Fixed64)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "representations differ")
	assert.False(t, a.Equal(d), "strand counts differ")
}

// TestIntAxis pins the axis-intersection count of canonical loops: the
// basis of B_n crosses the axis twice per coordinate pair.
func TestIntAxis(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		l, err := loop.Canonical(n, loop.BasisDefault, numeric.Fixed64)
		require.NoError(t, err)
		v, err := l.IntAxis()
		require.NoError(t, err)
		got, _ := v.Int64()
		assert.Equal(t, int64(2*(n-1)), got, "n=%d", n)
	}

	bp, err := loop.Canonical(4, loop.BasisBoundary, numeric.Fixed64)
	require.NoError(t, err)
	v, err := bp.IntAxis()
	require.NoError(t, err)
	got, _ := v.Int64()
	assert.Equal(t, int64(8), got)
}

// TestMinLength adds two vertical crossings per unit of |a|; on canonical
// loops, where a vanishes, it coincides with the axis count.
func TestMinLength(t *testing.T) {
	l, err := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)
	ia, err := l.IntAxis()
	require.NoError(t, err)
	ml, err := l.MinLength()
	require.NoError(t, err)
	assert.Equal(t, 0, l.Backend().Cmp(ia, ml))

	skew, err := loop.FromAB([]int64{2, -1, 0}, []int64{-1, -1, -1}, numeric.Fixed64)
	require.NoError(t, err)
	ia, err = skew.IntAxis()
	require.NoError(t, err)
	ml, err = skew.MinLength()
	require.NoError(t, err)
	iav, _ := ia.Int64()
	mlv, _ := ml.Int64()
	assert.Equal(t, iav+2*(2+1+0), mlv)
}

// TestL2Norm2 sums squared coordinates.
func TestL2Norm2(t *testing.T) {
	l, err := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, l.L2Norm2(), 1e-12)
}

// TestString renders the double-parenthesis loop notation.
func TestString(t *testing.T) {
	l, _ := loop.FromCoords([]int64{0, 0, 0, -1, -1, -1}, numeric.Fixed64)
	assert.Equal(t, "(( 0 0 0 -1 -1 -1 ))", l.String())
}
