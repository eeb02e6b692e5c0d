package store

import "math/big"

const keyCount = "meta:count"

func KeyCount() []byte { return []byte(keyCount) }

// Artifacts are keyed by decimal seed; seeds are opaque identifiers, not
// scanned in ranges, so no fixed-width padding is needed.

func KeySVG(seed *big.Int) []byte {
	return []byte("art:" + seed.String() + ":svg")
}

func KeyMeta(seed *big.Int) []byte {
	return []byte("art:" + seed.String() + ":meta")
}
