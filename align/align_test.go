package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_ModeEquivalence verifies every route reports the same optimal
// score on the same input.
func TestAlign_ModeEquivalence(t *testing.T) {
	x, y := []byte("AGTACGCA"), []byte("TATGC")

	for _, mode := range []align.Mode{align.Auto, align.FullMatrix, align.LinearSpace} {
		opts := align.DefaultOptions()
		opts.Mode = mode

		a, score, err := align.Align(x, y, opts)
		require.NoError(t, err, "mode %d", mode)
		assert.Equal(t, 0, score, "mode %d", mode)
		assert.Equal(t, score, a.Score(opts), "mode %d", mode)
		assertValidAlignment(t, a, x, y)
	}
}

// TestAlign_AutoLargeInput verifies Auto's linear-space route stays optimal
// past the cell limit.
func TestAlign_AutoLargeInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := randomSeq(rng, "ACGT", 120)
	y := randomSeq(rng, "ACGT", 120)
	opts := align.DefaultOptions()

	a, score, err := align.Align(x, y, opts)
	require.NoError(t, err)
	_, want := align.NeedlemanWunsch(x, y, opts)
	assert.Equal(t, want, score, "Auto must stay optimal on large inputs")
	assertValidAlignment(t, a, x, y)
}

// TestAlign_UnknownMode verifies the dispatcher rejects modes outside the
// declared constants.
func TestAlign_UnknownMode(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Mode = align.Mode(99)

	_, _, err := align.Align([]byte("A"), []byte("A"), opts)
	assert.ErrorIs(t, err, align.ErrUnknownMode)
}

// TestAlign_EmptyInputs verifies the dispatcher handles degenerate inputs
// on both routes.
func TestAlign_EmptyInputs(t *testing.T) {
	for _, mode := range []align.Mode{align.FullMatrix, align.LinearSpace} {
		opts := align.DefaultOptions()
		opts.Mode = mode

		a, score, err := align.Align(nil, nil, opts)
		require.NoError(t, err, "mode %d", mode)
		assert.Equal(t, 0, score, "mode %d", mode)
		assert.Equal(t, 0, a.Len(), "mode %d", mode)

		a, score, err = align.Align(nil, []byte("TAG"), opts)
		require.NoError(t, err, "mode %d", mode)
		assert.Equal(t, -3, score, "mode %d", mode)
		assert.Equal(t, "---", string(a.X), "mode %d", mode)
		assert.Equal(t, "TAG", string(a.Y), "mode %d", mode)
	}
}
