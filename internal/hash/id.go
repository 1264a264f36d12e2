// Package hash wraps xxHash64 for schema fingerprints and capture checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Checksum32 returns the low 32 bits of the xxHash64 of data.
func Checksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data)) //nolint: gosec
}

// Digest accumulates a canonical, order-sensitive rendering of structured
// data. Integers are written as fixed-width little-endian values and strings
// are length-prefixed, so adjacent fields never run together.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Int writes v as a 64-bit value.
func (g *Digest) Int(v int) *Digest {
	binary.LittleEndian.PutUint64(g.buf[:], uint64(v)) //nolint: gosec
	_, _ = g.d.Write(g.buf[:])

	return g
}

// String writes the length of s followed by its bytes.
func (g *Digest) String(s string) *Digest {
	g.Int(len(s))
	_, _ = g.d.WriteString(s)

	return g
}

// Sum64 returns the digest of everything written so far.
func (g *Digest) Sum64() uint64 {
	return g.d.Sum64()
}
