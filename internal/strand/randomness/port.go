// Package randomness abstracts where a ranged draw is computed: in-process
// via the hash PRF, or by a remote randomness endpoint that runs the same
// computation. Both realizations are bit-identical for the same scope tag;
// geometry code only ever sees the Port interface.
package randomness

import (
	"context"
	"math/big"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
)

// Port is the single capability geometry code needs: an inclusive-range
// draw addressed by (seed, label, occurrence). Implementations must be
// deterministic; two calls with identical arguments return identical
// values.
type Port interface {
	RangedDraw(ctx context.Context, seed *big.Int, label prf.Label, occurrence uint64, min, max int64) (int64, error)
}
