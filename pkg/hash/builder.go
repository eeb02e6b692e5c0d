package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// Hash32 is a 256-bit digest.
type Hash32 [32]byte

// Builder builds a canonical byte sequence then hashes it to Hash32 (sha256).
//
// Encoding rules:
//   - Fixed-width integers: big-endian
//   - Bytes/string: u32(len) big-endian + bytes
//   - Big integers: minimal big-endian magnitude, length-prefixed (so the
//     encoding of a value never depends on how the caller stored it)
//
// This is the single encoding behind every PRF draw; a conforming
// re-implementation has to reproduce it byte for byte.
type Builder struct {
	b []byte
}

func NewBuilder() *Builder { return &Builder{b: make([]byte, 0, 128)} }

func (d *Builder) Reset() { d.b = d.b[:0] }

func (d *Builder) Bytes() []byte { return append([]byte(nil), d.b...) }

func (d *Builder) PutU32(v uint32) *Builder {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	d.b = append(d.b, buf[:]...)
	return d
}

func (d *Builder) PutU64(v uint64) *Builder {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	d.b = append(d.b, buf[:]...)
	return d
}

// PutBytes appends: u32(len) + bytes
func (d *Builder) PutBytes(p []byte) *Builder {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(p)))
	d.b = append(d.b, buf[:]...)
	d.b = append(d.b, p...)
	return d
}

func (d *Builder) PutString(s string) *Builder { return d.PutBytes([]byte(s)) }

// PutBig appends a non-negative big integer as length-prefixed big-endian
// magnitude bytes. Nil or negative values are a programmer error: the
// encoding has no representation for them.
func (d *Builder) PutBig(v *big.Int) *Builder {
	if v == nil || v.Sign() < 0 {
		panic("hash: PutBig requires a non-negative big integer")
	}
	return d.PutBytes(v.Bytes())
}

func (d *Builder) Sum32() Hash32 {
	return sha256.Sum256(d.b)
}

// SumBig hashes the accumulated bytes and returns the digest as an
// unsigned 256-bit integer.
func (d *Builder) SumBig() *big.Int {
	sum := d.Sum32()
	return new(big.Int).SetBytes(sum[:])
}
