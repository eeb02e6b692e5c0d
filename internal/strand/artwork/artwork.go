// Package artwork assembles one artifact: plan the shared skeleton, jitter
// it once per strand, smooth each jittered sequence into a cubic curve,
// then serialize. Everything downstream of the randomness port is pure and
// re-entrant; generations for different seeds can run fully in parallel.
package artwork

import (
	"context"
	"fmt"
	"math/big"

	"github.com/chenzhangda16/strandweave/internal/strand/geometry"
	"github.com/chenzhangda16/strandweave/internal/strand/prf"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
)

// sharpnessOccurrence is fixed by the cross-implementation occurrence
// contract: STEP_COUNT owns occurrence 0, SHARPNESS owns occurrence 1.
const sharpnessOccurrence = 1

// StrandResult is one strand's jittered vertices and smoothed curve.
// Unminted strands are still computed (the draw sequence must not depend
// on visibility) and only skipped at render time.
type StrandResult struct {
	Strand   Strand
	Minted   bool
	Vertices []geometry.Vertex
	Curve    geometry.Curve
}

// Artwork is the full deterministic output for one seed.
type Artwork struct {
	Seed      *big.Int
	Config    Config
	StepCount int64
	Padding   int64
	Sharpness int64
	Skeleton  geometry.Skeleton
	Strands   [NumStrands]StrandResult
}

// Generate derives the complete artwork for a seed. minted flags come from
// the caller (they are external state, not draws). There is no partial
// output: any draw failure aborts the whole generation.
func Generate(ctx context.Context, port randomness.Port, seed *big.Int, cfg Config, minted [NumStrands]bool) (*Artwork, error) {
	plan, err := geometry.NewPlanner(port, cfg.CanvasWidth, cfg.CanvasHeight).Plan(ctx, seed)
	if err != nil {
		return nil, fmt.Errorf("plan seed=%s: %w", seed, err)
	}

	art := &Artwork{
		Seed:      seed,
		Config:    cfg,
		StepCount: plan.StepCount,
		Padding:   plan.Padding,
		Skeleton:  plan.Skeleton,
	}

	for i, s := range Strands() {
		vs, err := geometry.Jitter(ctx, port, seed, plan.Skeleton, s.DX, s.DY, cfg.CanvasWidth, cfg.CanvasHeight)
		if err != nil {
			return nil, fmt.Errorf("jitter strand=%s seed=%s: %w", s.Name, seed, err)
		}
		art.Strands[i] = StrandResult{Strand: s, Minted: minted[i], Vertices: vs}
	}

	sharpness, err := port.RangedDraw(ctx, seed, prf.LabelSharpness, sharpnessOccurrence, cfg.MinSharpness, cfg.MaxSharpness)
	if err != nil {
		return nil, fmt.Errorf("sharpness seed=%s: %w", seed, err)
	}
	if sharpness < 1 {
		// MinSharpness below 1 would send a zero divisor into the smoother.
		return nil, fmt.Errorf("artwork: sharpness %d < 1 (bad config)", sharpness)
	}
	art.Sharpness = sharpness

	for i := range art.Strands {
		art.Strands[i].Curve = geometry.Smooth(art.Strands[i].Vertices, sharpness)
	}

	return art, nil
}
