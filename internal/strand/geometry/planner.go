package geometry

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
	"github.com/chenzhangda16/strandweave/internal/strand/randomness"
)

// ErrDegenerateCanvas means the drawn padding would invert the inner box.
// Undersized canvases are a configuration error; the planner refuses them
// instead of clamping.
var ErrDegenerateCanvas = errors.New("geometry: padding inverts the inner box")

const (
	minWaypoints = 1
	maxWaypoints = 50

	// Off-canvas distance of the fixed entry/exit vertices. Never
	// randomized; part of the wire contract.
	edgeOverhang = 50
)

// Plan is a planned waypoint skeleton plus the draws that shaped it.
type Plan struct {
	StepCount int64
	Padding   int64
	Skeleton  Skeleton
}

// Planner places the shared waypoint skeleton for one canvas size.
type Planner struct {
	port randomness.Port
	w, h int64
}

func NewPlanner(port randomness.Port, canvasW, canvasH int64) *Planner {
	return &Planner{port: port, w: canvasW, h: canvasH}
}

// Plan draws the waypoint count, the padding and one interior waypoint per
// step, then brackets them with the fixed off-canvas entry and exit
// vertices at mid-height. Occurrences: (STEP_COUNT, 0), (PADDING, 0),
// (TARGET_X, i) and (TARGET_Y, i) for waypoint i. len(Skeleton) is always
// StepCount+2.
func (p *Planner) Plan(ctx context.Context, seed *big.Int) (*Plan, error) {
	stepCount, err := p.port.RangedDraw(ctx, seed, prf.LabelStepCount, 0, minWaypoints, maxWaypoints)
	if err != nil {
		return nil, err
	}

	padding, err := p.port.RangedDraw(ctx, seed, prf.LabelPadding, 0, p.w/10, p.w/3)
	if err != nil {
		return nil, err
	}
	if 2*padding >= p.w || 2*padding >= p.h {
		return nil, fmt.Errorf("%w: padding=%d canvas=%dx%d", ErrDegenerateCanvas, padding, p.w, p.h)
	}

	innerW := p.w - 2*padding
	innerH := p.h - 2*padding

	sk := make(Skeleton, 0, stepCount+2)
	sk = append(sk, Vertex{X: -edgeOverhang, Y: p.h / 2})

	for i := int64(0); i < stepCount; i++ {
		dx, err := p.port.RangedDraw(ctx, seed, prf.LabelTargetX, uint64(i), 0, innerW)
		if err != nil {
			return nil, err
		}
		dy, err := p.port.RangedDraw(ctx, seed, prf.LabelTargetY, uint64(i), 0, innerH)
		if err != nil {
			return nil, err
		}
		sk = append(sk, Vertex{X: padding + dx, Y: padding + dy})
	}

	sk = append(sk, Vertex{X: p.w + edgeOverhang, Y: p.h / 2})

	return &Plan{StepCount: stepCount, Padding: padding, Skeleton: sk}, nil
}
