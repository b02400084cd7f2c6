package dynamics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topodyn/braidkit/pkg/braid"
	"github.com/topodyn/braidkit/pkg/dynamics"
	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

func mustWord(t *testing.T, n int, gens ...int) braid.Word {
	t.Helper()
	w, err := braid.New(n, gens...)
	require.NoError(t, err)
	return w
}

// entropyGolden is log((3+sqrt(5))/2), the entropy of sigma_1 sigma_2^-1.
var entropyGolden = math.Log((3 + math.Sqrt(5)) / 2)

// TestEqBraidRelation accepts the Artin relation sigma_1 sigma_2 sigma_1 =
// sigma_2 sigma_1 sigma_2, which no syntactic comparison can see.
func TestEqBraidRelation(t *testing.T) {
	u := mustWord(t, 3, 1, 2, 1)
	v := mustWord(t, 3, 2, 1, 2)

	eq, err := dynamics.Eq(u, v, dynamics.Options{})
	require.NoError(t, err)
	assert.True(t, eq)
	assert.False(t, dynamics.LexEq(u, v))

	w := mustWord(t, 3, 1, 2)
	eq, err = dynamics.Eq(u, w, dynamics.Options{})
	require.NoError(t, err)
	assert.False(t, eq)
}

// TestEqAllBases reaches the same verdict under every canonical basis,
// including the two that drive the basepoint-boundary update.
func TestEqAllBases(t *testing.T) {
	u := mustWord(t, 3, 1, 2, 1)
	v := mustWord(t, 3, 2, 1, 2)
	w := mustWord(t, 3, 1, -2)

	for _, basis := range []loop.Basis{
		loop.BasisDefault, loop.BasisLeft, loop.BasisDehornoy, loop.BasisBoundary,
	} {
		opts := dynamics.Options{Basis: basis}
		eq, err := dynamics.Eq(u, v, opts)
		require.NoError(t, err, "basis %v", basis)
		assert.True(t, eq, "basis %v", basis)

		eq, err = dynamics.Eq(u, w, opts)
		require.NoError(t, err, "basis %v", basis)
		assert.False(t, eq, "basis %v", basis)
	}
}

// TestEqInverse recognizes b composed with its inverse as the identity.
func TestEqInverse(t *testing.T) {
	b := mustWord(t, 4, 1, -2, 3, 2)
	id, err := braid.New(4)
	require.NoError(t, err)

	eq, err := dynamics.Eq(b.Compose(b.Inverse()), id, dynamics.Options{})
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestEqStrandCount never equates braids on different strand counts.
func TestEqStrandCount(t *testing.T) {
	u := mustWord(t, 3, 1)
	v := mustWord(t, 4, 1)
	eq, err := dynamics.Eq(u, v, dynamics.Options{})
	require.NoError(t, err)
	assert.False(t, eq)

	// On a single strand only the identity exists.
	var a, b braid.Word
	eq, err = dynamics.Eq(a, b, dynamics.Options{})
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestEqOverflowWarning propagates coordinate overflow instead of silently
// trusting a wrapped comparison; the arbitrary-precision backend is clean.
func TestEqOverflowWarning(t *testing.T) {
	b := mustWord(t, 3, 1, -2).Power(100)

	eq, err := dynamics.Eq(b, b, dynamics.Options{Kind: numeric.Fixed64})
	require.ErrorIs(t, err, numeric.ErrOverflow)
	assert.True(t, eq, "identical words still compare equal entrywise")

	eq, err = dynamics.Eq(b, b, dynamics.Options{Kind: numeric.Big})
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestEntropyKnownValue pins the iterative estimate for sigma_1 sigma_2^-1,
// the classic pseudo-Anosov 3-braid with entropy log((3+sqrt(5))/2).
func TestEntropyKnownValue(t *testing.T) {
	b := mustWord(t, 3, 1, -2)
	res, err := dynamics.Entropy(b, dynamics.EntropyOptions{})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, entropyGolden, res.Entropy, 1e-6)
	assert.Greater(t, res.Iterations, 1)
}

// TestEntropyIdentity is zero without any iteration.
func TestEntropyIdentity(t *testing.T) {
	id, err := braid.New(5)
	require.NoError(t, err)
	res, err := dynamics.Entropy(id, dynamics.EntropyOptions{})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Entropy)
}

// TestEntropyNoConvergence returns the best estimate with a warning when
// the iteration cap cuts the run short.
func TestEntropyNoConvergence(t *testing.T) {
	b := mustWord(t, 3, 1, -2)
	res, err := dynamics.Entropy(b, dynamics.EntropyOptions{MaxIter: 2})
	require.ErrorIs(t, err, dynamics.ErrNoConvergence)
	assert.Equal(t, 2, res.Iterations)
	assert.False(t, res.Converged)
}

// TestEntropyFinite estimates through exact measures: accurate for modest
// iteration counts, fatally overflowing the fixed backend for large ones,
// and exact again under the arbitrary-precision backend.
func TestEntropyFinite(t *testing.T) {
	b := mustWord(t, 3, 1, -2)

	est, err := dynamics.EntropyFinite(b, 20, dynamics.FiniteOptions{})
	require.NoError(t, err)
	assert.InDelta(t, entropyGolden, est, 0.2)

	_, err = dynamics.EntropyFinite(b, 100, dynamics.FiniteOptions{Kind: numeric.Fixed64})
	require.ErrorIs(t, err, numeric.ErrOverflow)

	est, err = dynamics.EntropyFinite(b, 100, dynamics.FiniteOptions{Kind: numeric.Big})
	require.NoError(t, err)
	assert.InDelta(t, entropyGolden, est, 0.05)

	_, err = dynamics.EntropyFinite(b, 0, dynamics.FiniteOptions{})
	require.ErrorIs(t, err, dynamics.ErrIterCount)
}

// TestComplexityIdentity vanishes on the identity braid.
func TestComplexityIdentity(t *testing.T) {
	id, err := braid.New(4)
	require.NoError(t, err)
	c, err := dynamics.Complexity(id, dynamics.ComplexityOptions{})
	require.NoError(t, err)
	assert.Zero(t, c)
}

// TestComplexityOrdering: both length functionals agree that a braid's
// square is more complex than the braid, though not on the absolute values.
func TestComplexityOrdering(t *testing.T) {
	b := mustWord(t, 3, 1, -2)
	bb := b.Power(2)

	for _, m := range []dynamics.Measure{dynamics.MeasureIntAxis, dynamics.MeasureMinLength} {
		c1, err := dynamics.Complexity(b, dynamics.ComplexityOptions{Measure: m})
		require.NoError(t, err, "measure %v", m)
		c2, err := dynamics.Complexity(bb, dynamics.ComplexityOptions{Measure: m})
		require.NoError(t, err, "measure %v", m)
		assert.Greater(t, c2, c1, "measure %v", m)
		assert.Greater(t, c1, 0.0, "measure %v", m)
	}
}

// TestComplexityBase rescales by the logarithm base.
func TestComplexityBase(t *testing.T) {
	b := mustWord(t, 3, 1, -2)
	nat, err := dynamics.Complexity(b, dynamics.ComplexityOptions{})
	require.NoError(t, err)
	base2, err := dynamics.Complexity(b, dynamics.ComplexityOptions{Base: 2})
	require.NoError(t, err)
	assert.InDelta(t, nat/math.Log(2), base2, 1e-12)
}

// TestComplexityBadMeasure rejects selectors outside the two functionals.
func TestComplexityBadMeasure(t *testing.T) {
	b := mustWord(t, 3, 1)
	_, err := dynamics.Complexity(b, dynamics.ComplexityOptions{Measure: dynamics.Measure(9)})
	require.ErrorIs(t, err, dynamics.ErrBadMeasure)
}

// TestParseMeasure maps configuration names onto the measure enum.
func TestParseMeasure(t *testing.T) {
	m, err := dynamics.ParseMeasure("")
	require.NoError(t, err)
	assert.Equal(t, dynamics.MeasureIntAxis, m)

	m, err = dynamics.ParseMeasure("minlength")
	require.NoError(t, err)
	assert.Equal(t, dynamics.MeasureMinLength, m)

	_, err = dynamics.ParseMeasure("l2")
	require.ErrorIs(t, err, dynamics.ErrBadMeasure)
}
