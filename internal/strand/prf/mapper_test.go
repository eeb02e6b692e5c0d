package prf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangedEndpoints(t *testing.T) {
	// Normalized(h) = h mod 1e6, so small h hits the scaling directly.
	got, err := Ranged(big.NewInt(0), 10, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), got)

	got, err = Ranged(big.NewInt(999_999), 10, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(20), got)
}

func TestRangedContainment(t *testing.T) {
	hs := []int64{0, 1, 499_999, 500_000, 731_042, 999_998, 999_999}
	ranges := [][2]int64{{0, 0}, {0, 1}, {1, 50}, {10, 20}, {102, 341}, {-5, 5}, {0, 974}}

	for _, h := range hs {
		for _, r := range ranges {
			got, err := Ranged(big.NewInt(h), r[0], r[1])
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, got, r[0], "h=%d range=%v", h, r)
			assert.LessOrEqual(t, got, r[1], "h=%d range=%v", h, r)
		}
	}
}

func TestRangedDegenerate(t *testing.T) {
	// min == max always yields min.
	for _, h := range []int64{0, 123_456, 999_999} {
		got, err := Ranged(big.NewInt(h), 7, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), got)
	}
}

func TestRangedInvalid(t *testing.T) {
	_, err := Ranged(big.NewInt(42), 20, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNormalizedRange(t *testing.T) {
	// A digest-sized value still reduces into [0, Modulus).
	h := new(big.Int).Lsh(big.NewInt(1), 255)
	v := Normalized(h)
	assert.GreaterOrEqual(t, v, int64(0))
	assert.Less(t, v, int64(Modulus))
}

func TestBooleanEndpoints(t *testing.T) {
	for _, h := range []int64{0, 1, 999_999} {
		never, err := Boolean(big.NewInt(h), 0)
		assert.NoError(t, err)
		assert.False(t, never, "h=%d", h)

		always, err := Boolean(big.NewInt(h), Modulus)
		assert.NoError(t, err)
		assert.True(t, always, "h=%d", h)
	}
}

func TestBooleanInvalid(t *testing.T) {
	_, err := Boolean(big.NewInt(1), -1)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = Boolean(big.NewInt(1), Modulus+1)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}
