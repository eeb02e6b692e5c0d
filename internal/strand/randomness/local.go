package randomness

import (
	"context"
	"math/big"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
)

// Local computes draws in-process.
type Local struct {
	scope string
}

func NewLocal() *Local { return &Local{scope: prf.ScopeTag} }

func (l *Local) RangedDraw(ctx context.Context, seed *big.Int, label prf.Label, occurrence uint64, min, max int64) (int64, error) {
	_ = ctx // no suspension point in the local path
	return prf.Ranged(prf.Draw(l.scope, seed, label, occurrence), min, max)
}
