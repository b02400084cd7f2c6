package loop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topodyn/braidkit/pkg/loop"
	"github.com/topodyn/braidkit/pkg/numeric"
)

// TestNewBatchValidation requires a non-empty, homogeneous member list.
func TestNewBatchValidation(t *testing.T) {
	_, err := loop.NewBatch(nil, loop.Rows)
	require.ErrorIs(t, err, loop.ErrNoCoordinates)

	l3, _ := loop.Canonical(3, loop.BasisDefault, numeric.Fixed64)
	l4, _ := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	_, err = loop.NewBatch([]*loop.Loop{l3, l4}, loop.Rows)
	require.ErrorIs(t, err, loop.ErrMixedBatch)

	big3, _ := loop.Canonical(3, loop.BasisDefault, numeric.Big)
	_, err = loop.NewBatch([]*loop.Loop{l3, big3}, loop.Rows)
	require.ErrorIs(t, err, loop.ErrMixedBatch)
}

// TestBatchApply acts on every member independently and preserves order.
func TestBatchApply(t *testing.T) {
	canon, err := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	require.NoError(t, err)
	other, err := loop.FromCoords([]int64{2, -3, 1, 0, 4, -1}, numeric.Fixed64)
	require.NoError(t, err)

	batch, err := loop.NewBatch([]*loop.Loop{canon, other}, loop.Rows)
	require.NoError(t, err)

	w := mustWord(t, 4, 1, -2, 3)
	out, err := batch.Apply(w)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	// Each member matches the loop applied on its own.
	want0, err := canon.Apply(w)
	require.NoError(t, err)
	want1, err := other.Apply(w)
	require.NoError(t, err)
	got := out.Loops()
	assert.True(t, got[0].Equal(want0))
	assert.True(t, got[1].Equal(want1))
}

// TestBatchApplyRange fails the whole batch before any member is updated.
func TestBatchApplyRange(t *testing.T) {
	l, _ := loop.Canonical(4, loop.BasisDefault, numeric.Fixed64)
	batch, err := loop.NewBatch([]*loop.Loop{l}, loop.Rows)
	require.NoError(t, err)

	_, err = batch.Apply(mustWord(t, 6, 5))
	require.ErrorIs(t, err, loop.ErrGeneratorRange)
}

// TestBatchApplyOverflow surfaces the first member warning with the
// best-effort batch.
func TestBatchApplyOverflow(t *testing.T) {
	l, _ := loop.Canonical(3, loop.BasisDefault, numeric.Fixed64)
	batch, err := loop.NewBatch([]*loop.Loop{l, l}, loop.Rows)
	require.NoError(t, err)

	out, err := batch.Apply(mustWord(t, 3, 1, -2).Power(100))
	require.ErrorIs(t, err, numeric.ErrOverflow)
	require.NotNil(t, out)
	assert.Equal(t, 2, out.Len())
}

// TestBatchTranspose flips the stacking orientation without touching the
// members.
func TestBatchTranspose(t *testing.T) {
	l, _ := loop.Canonical(3, loop.BasisDefault, numeric.Fixed64)
	batch, err := loop.NewBatch([]*loop.Loop{l}, loop.Rows)
	require.NoError(t, err)

	flipped := batch.Transpose()
	assert.Equal(t, loop.Cols, flipped.Orientation())
	assert.Equal(t, loop.Rows, flipped.Transpose().Orientation())
	assert.True(t, flipped.Loops()[0].Equal(l))
}
