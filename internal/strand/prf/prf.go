// Package prf is the deterministic randomness engine: a seed/label/
// occurrence addressed hash PRF plus the range mapper that turns digests
// into bounded draws.
//
// # Determinism
//
// Draw is a pure function. Given the same (scope, seed, label, occurrence)
// it returns the same value in every process, on every platform; all
// artifact geometry is rooted in it. Draws under different labels are
// independent streams even though they share one hash family.
package prf

import (
	"math/big"

	"github.com/chenzhangda16/strandweave/pkg/hash"
)

// Draw maps (scope, seed, label, occurrence) to an unsigned 256-bit
// integer. Input order is fixed: scope, seed, label, occurrence. Seed must
// be a non-negative big integer; anything else panics (malformed encoding
// is a programmer error, not a runtime condition).
func Draw(scope string, seed *big.Int, label Label, occurrence uint64) *big.Int {
	b := hash.NewBuilder()
	b.PutString(scope).
		PutBig(seed).
		PutString(string(label)).
		PutU64(occurrence)
	return b.SumBig()
}

// MultiSeed hashes an ordered list of seeds plus an occurrence into one
// stream, for combining several randomness sources. The list is
// length-prefixed so [a, b] and [ab] can never encode alike.
func MultiSeed(seeds []*big.Int, occurrence uint64) *big.Int {
	b := hash.NewBuilder()
	b.PutU32(uint32(len(seeds)))
	for _, s := range seeds {
		b.PutBig(s)
	}
	b.PutU64(occurrence)
	return b.SumBig()
}
