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

func TestPlanSeed42(t *testing.T) {
	port := randomness.NewLocal()
	seed := big.NewInt(42)

	plan, err := NewPlanner(port, 1024, 1024).Plan(context.Background(), seed)
	require.NoError(t, err)

	// The documented draw fixes the count; the skeleton brackets it with
	// the two off-canvas anchors.
	wantSteps, err := prf.Ranged(prf.Draw(prf.ScopeTag, seed, prf.LabelStepCount, 0), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, wantSteps, plan.StepCount)
	assert.Len(t, plan.Skeleton, int(plan.StepCount)+2)

	assert.Equal(t, Vertex{X: -50, Y: 512}, plan.Skeleton[0])
	assert.Equal(t, Vertex{X: 1074, Y: 512}, plan.Skeleton[len(plan.Skeleton)-1])

	// Interior waypoints stay inside the padded box.
	assert.GreaterOrEqual(t, plan.Padding, int64(102)) // 1024/10
	assert.LessOrEqual(t, plan.Padding, int64(341))    // 1024/3
	inner := int64(1024) - 2*plan.Padding
	for _, v := range plan.Skeleton[1 : len(plan.Skeleton)-1] {
		assert.GreaterOrEqual(t, v.X, plan.Padding)
		assert.LessOrEqual(t, v.X, plan.Padding+inner)
		assert.GreaterOrEqual(t, v.Y, plan.Padding)
		assert.LessOrEqual(t, v.Y, plan.Padding+inner)
	}
}

func TestPlanSkeletonShape(t *testing.T) {
	port := randomness.NewLocal()
	planner := NewPlanner(port, 1024, 1024)

	for n := int64(1); n <= 40; n++ {
		plan, err := planner.Plan(context.Background(), big.NewInt(n))
		require.NoError(t, err, "seed=%d", n)

		assert.GreaterOrEqual(t, plan.StepCount, int64(1), "seed=%d", n)
		assert.LessOrEqual(t, plan.StepCount, int64(50), "seed=%d", n)
		assert.Len(t, plan.Skeleton, int(plan.StepCount)+2, "seed=%d", n)
	}
}

func TestPlanDeterministic(t *testing.T) {
	port := randomness.NewLocal()
	planner := NewPlanner(port, 1024, 1024)
	seed := big.NewInt(99)

	a, err := planner.Plan(context.Background(), seed)
	require.NoError(t, err)
	b, err := planner.Plan(context.Background(), seed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPlanDegenerateCanvas(t *testing.T) {
	// Padding draws from [width/10, width/3]; a short canvas cannot fit
	// twice the minimum padding and must be refused.
	_, err := NewPlanner(randomness.NewLocal(), 1024, 60).Plan(context.Background(), big.NewInt(1))
	assert.ErrorIs(t, err, ErrDegenerateCanvas)
}
