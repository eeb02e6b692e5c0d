package randomness

import (
	"context"
	"math/big"
	"sync"

	"github.com/chenzhangda16/strandweave/internal/strand/prf"
)

// DrawKey identifies one logical draw site within a generation.
type DrawKey struct {
	Label      prf.Label
	Occurrence uint64
}

// Audit wraps a Port and records every (label, occurrence) pair that goes
// through it. Two call sites sharing a pair would silently collide into
// one stream; tests run a full generation through an Audit and fail on any
// duplicate. Scope is one artifact: wrap a fresh Audit per generation.
type Audit struct {
	inner Port

	mu   sync.Mutex
	seen map[DrawKey]int
}

func NewAudit(inner Port) *Audit {
	return &Audit{inner: inner, seen: make(map[DrawKey]int)}
}

func (a *Audit) RangedDraw(ctx context.Context, seed *big.Int, label prf.Label, occurrence uint64, min, max int64) (int64, error) {
	a.mu.Lock()
	a.seen[DrawKey{Label: label, Occurrence: occurrence}]++
	a.mu.Unlock()
	return a.inner.RangedDraw(ctx, seed, label, occurrence, min, max)
}

// Collisions returns every key drawn more than once, in no particular
// order. Empty means the stream assignment is collision-free.
func (a *Audit) Collisions() []DrawKey {
	a.mu.Lock()
	defer a.mu.Unlock()

	var dups []DrawKey
	for k, n := range a.seen {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	return dups
}

// Draws reports the total number of draws observed.
func (a *Audit) Draws() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	total := 0
	for _, n := range a.seen {
		total += n
	}
	return total
}
