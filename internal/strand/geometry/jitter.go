package geometry

import (
	"context"
	"math/big"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
)

// jitterDivisor bounds the offset to 1% of the canvas dimension.
const jitterDivisor = 100

// Jitter perturbs every skeleton vertex by a strand-specific offset and
// clamps the result to the canvas. Offsets are additive and one-directional
// (drawn from [0, dim/100], not symmetric around zero); occurrence is the
// skeleton index, so strands sharing the skeleton still draw independent
// streams through their own label pair. Output length and order match the
// skeleton.
func Jitter(ctx context.Context, port randomness.Port, seed *big.Int, sk Skeleton, dxLabel, dyLabel prf.Label, canvasW, canvasH int64) ([]Vertex, error) {
	out := make([]Vertex, 0, len(sk))
	for i, v := range sk {
		dx, err := port.RangedDraw(ctx, seed, dxLabel, uint64(i), 0, canvasW/jitterDivisor)
		if err != nil {
			return nil, err
		}
		dy, err := port.RangedDraw(ctx, seed, dyLabel, uint64(i), 0, canvasH/jitterDivisor)
		if err != nil {
			return nil, err
		}
		out = append(out, Vertex{
			X: clamp(v.X+dx, 0, canvasW),
			Y: clamp(v.Y+dy, 0, canvasH),
		})
	}
	return out, nil
}
