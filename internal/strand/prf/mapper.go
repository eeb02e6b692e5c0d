package prf

import (
	"errors"
	"fmt"
	"math/big"
)

// Modulus is the normalization modulus: every draw is first reduced to
// [0, Modulus) before range scaling. Fixed by the wire contract.
const Modulus = 1_000_000

var (
	ErrInvalidRange       = errors.New("prf: invalid range (min > max)")
	ErrInvalidProbability = errors.New("prf: probability outside [0, modulus]")
)

var modulusBig = big.NewInt(Modulus)

// Normalized reduces a digest to [0, Modulus).
func Normalized(h *big.Int) int64 {
	return new(big.Int).Mod(h, modulusBig).Int64()
}

// Ranged maps a digest to the inclusive range [min, max].
func Ranged(h *big.Int, min, max int64) (int64, error) {
	return RangedNormalized(Normalized(h), min, max)
}

// RangedNormalized applies the range scaling to an already-normalized
// value v in [0, Modulus). Local and remote randomness share this exact
// step, which is what makes them interchangeable.
//
// The mapping min + v*span/Modulus is floor division and carries a small
// bias (at most span/Modulus). The bias is part of the contract: a
// conforming implementation reproduces it rather than correcting it.
func RangedNormalized(v, min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	span := max - min + 1
	return min + v*span/Modulus, nil
}

// Boolean is true when the normalized draw falls below probability, which
// is expressed in millionths: 0 is never, Modulus is always.
func Boolean(h *big.Int, probability int64) (bool, error) {
	if probability < 0 || probability > Modulus {
		return false, fmt.Errorf("%w: %d", ErrInvalidProbability, probability)
	}
	return Normalized(h) < probability, nil
}
