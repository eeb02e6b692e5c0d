package geometry

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
)

// stubPort lets geometry tests force draw outcomes.
type stubPort struct {
	f func(label prf.Label, occurrence uint64, min, max int64) (int64, error)
}

func (s stubPort) RangedDraw(_ context.Context, _ *big.Int, label prf.Label, occurrence uint64, min, max int64) (int64, error) {
	return s.f(label, occurrence, min, max)
}

func TestJitterClampsToCanvas(t *testing.T) {
	// Force every draw to its maximum so raw jitter overshoots on the
	// right/bottom edges and the off-canvas anchors test both bounds.
	maxPort := stubPort{f: func(_ prf.Label, _ uint64, _, max int64) (int64, error) {
		return max, nil
	}}

	sk := Skeleton{
		{X: -50, Y: 512},    // entry anchor: left of canvas
		{X: 1024, Y: 1024},  // on the far corner: +10 overshoots
		{X: 500, Y: 500},    // interior: jitter applies untouched
		{X: 1074, Y: 512},   // exit anchor: right of canvas
	}

	out, err := Jitter(context.Background(), maxPort, big.NewInt(1), sk, prf.LabelDX1, prf.LabelDY1, 1024, 1024)
	require.NoError(t, err)
	require.Len(t, out, len(sk))

	assert.Equal(t, Vertex{X: 0, Y: 522}, out[0])      // -50+10 clamps up to 0
	assert.Equal(t, Vertex{X: 1024, Y: 1024}, out[1])  // clamps down to the edge
	assert.Equal(t, Vertex{X: 510, Y: 510}, out[2])
	assert.Equal(t, Vertex{X: 1024, Y: 522}, out[3])

	for _, v := range out {
		assert.GreaterOrEqual(t, v.X, int64(0))
		assert.LessOrEqual(t, v.X, int64(1024))
		assert.GreaterOrEqual(t, v.Y, int64(0))
		assert.LessOrEqual(t, v.Y, int64(1024))
	}
}

func TestJitterBoundsAndOrder(t *testing.T) {
	port := randomness.NewLocal()
	seed := big.NewInt(7)

	plan, err := NewPlanner(port, 1024, 1024).Plan(context.Background(), seed)
	require.NoError(t, err)

	out, err := Jitter(context.Background(), port, seed, plan.Skeleton, prf.LabelDX2, prf.LabelDY2, 1024, 1024)
	require.NoError(t, err)
	require.Len(t, out, len(plan.Skeleton))

	for i, v := range out {
		orig := plan.Skeleton[i]
		// Offset is one-directional: each coordinate moves by [0, dim/100]
		// before clamping.
		assert.GreaterOrEqual(t, v.X, clamp(orig.X, 0, 1024), "i=%d", i)
		assert.LessOrEqual(t, v.X, clamp(orig.X+10, 0, 1024), "i=%d", i)
		assert.GreaterOrEqual(t, v.Y, clamp(orig.Y, 0, 1024), "i=%d", i)
		assert.LessOrEqual(t, v.Y, clamp(orig.Y+10, 0, 1024), "i=%d", i)
	}
}

func TestJitterDeterministicAndStrandIndependent(t *testing.T) {
	port := randomness.NewLocal()
	seed := big.NewInt(11)

	plan, err := NewPlanner(port, 1024, 1024).Plan(context.Background(), seed)
	require.NoError(t, err)

	a, err := Jitter(context.Background(), port, seed, plan.Skeleton, prf.LabelDX1, prf.LabelDY1, 1024, 1024)
	require.NoError(t, err)
	b, err := Jitter(context.Background(), port, seed, plan.Skeleton, prf.LabelDX1, prf.LabelDY1, 1024, 1024)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// A different label pair is a different stream over the same skeleton.
	c, err := Jitter(context.Background(), port, seed, plan.Skeleton, prf.LabelDX2, prf.LabelDY2, 1024, 1024)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
