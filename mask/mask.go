// Package mask decodes the sparse change masks that select which fields of
// an entity are present in an update stream.
//
// A mask is a bit vector of a declared length. Two wire forms exist:
//
//   - Single-block: the declared number of bits is read directly.
//   - Block-sparse: one guard bit per 32-bit block is read first, then a full
//     32-bit word for every block whose guard bit is set. Blocks with a clear
//     guard bit are all zero and cost nothing beyond their guard bit.
//
// Mask bit i lives in bit i%32 of block i/32. Bit 0 of every mask level (and
// bit 32k of every block in a multi-block entity) is the level's guard: when
// it is clear no other bit of that level is consulted.
//
// Reading a mask never aligns the cursor; callers align after the mask and any
// raw bits the layout places next to it. ReadAligned does both when nothing
// sits between the mask and the aligned field data.
package mask

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/arloliu/ufwire/errs"
)

// BlockBits is the width of one mask block.
const BlockBits = 32

// MaxBits bounds the declared length of any mask.
const MaxBits = 1 << 16

// Form selects the wire encoding of a mask.
type Form uint8

const (
	// Auto picks Single for masks of up to 32 bits and Blocks above.
	Auto Form = iota
	// Single reads the declared bits directly into one block.
	Single
	// Blocks always uses guard bits, even for a single block.
	Blocks
)

func (f Form) String() string {
	switch f {
	case Auto:
		return "auto"
	case Single:
		return "single"
	case Blocks:
		return "blocks"
	default:
		return "unknown"
	}
}

// Spec declares a mask: its logical length and wire form.
type Spec struct {
	Bits int
	Form Form
}

// Bits returns an Auto spec of n bits.
func Bits(n int) Spec {
	return Spec{Bits: n}
}

// BlockSparse returns a spec of n bits that is always block-sparse.
func BlockSparse(n int) Spec {
	return Spec{Bits: n, Form: Blocks}
}

// Blocks returns the number of 32-bit blocks the spec spans.
func (s Spec) Blocks() int {
	return blockCount(s.Bits)
}

// Sparse reports whether the spec is decoded in block-sparse form.
func (s Spec) Sparse() bool {
	switch s.Form {
	case Single:
		return false
	case Blocks:
		return true
	default:
		return s.Bits > BlockBits
	}
}

// GuardBits returns the number of bits an all-zero mask of this spec costs.
func (s Spec) GuardBits() int {
	if s.Sparse() {
		return s.Blocks()
	}

	return s.Bits
}

// Validate checks the spec is decodable.
func (s Spec) Validate() error {
	if s.Bits <= 0 || s.Bits > MaxBits {
		return fmt.Errorf("%w: mask of %d bits", errs.ErrInvalidBitCount, s.Bits)
	}
	if s.Form == Single && s.Bits > BlockBits {
		return fmt.Errorf("%w: single-block mask of %d bits", errs.ErrInvalidBitCount, s.Bits)
	}

	return nil
}

// Mask is a decoded change mask.
type Mask struct {
	blocks []uint32
	n      int
}

// New returns an all-zero mask of n bits.
func New(n int) Mask {
	return Mask{blocks: make([]uint32, blockCount(n)), n: n}
}

// FromBlocks builds a mask of n bits from raw blocks, truncating or padding
// as needed.
func FromBlocks(n int, blocks ...uint32) Mask {
	m := New(n)
	copy(m.blocks, blocks)
	m.clearTail()

	return m
}

// Len returns the declared length in bits.
func (m Mask) Len() int {
	return m.n
}

// Test reports whether bit i is set. Bits outside the declared length are
// never set.
func (m Mask) Test(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}

	return m.blocks[i/BlockBits]&(1<<uint(i%BlockBits)) != 0
}

// Set sets bit i. It panics if i is out of range.
func (m Mask) Set(i int) {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("mask: bit %d out of range [0,%d)", i, m.n))
	}
	m.blocks[i/BlockBits] |= 1 << uint(i%BlockBits)
}

// Block returns block i, or zero when i is out of range.
func (m Mask) Block(i int) uint32 {
	if i < 0 || i >= len(m.blocks) {
		return 0
	}

	return m.blocks[i]
}

// Any reports whether any bit is set.
func (m Mask) Any() bool {
	for _, b := range m.blocks {
		if b != 0 {
			return true
		}
	}

	return false
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	c := 0
	for _, b := range m.blocks {
		c += bits.OnesCount32(b)
	}

	return c
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	out := Mask{n: m.n}
	if m.blocks != nil {
		out.blocks = append([]uint32(nil), m.blocks...)
	}

	return out
}

// String lists the set bits, e.g. "{0 3 33}".
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := range m.n {
		if !m.Test(i) {
			continue
		}
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", i)
		first = false
	}
	sb.WriteByte('}')

	return sb.String()
}

func (m Mask) clearTail() {
	if rem := m.n % BlockBits; rem != 0 && len(m.blocks) > 0 {
		m.blocks[len(m.blocks)-1] &= 1<<uint(rem) - 1
	}
}

func blockCount(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + BlockBits - 1) / BlockBits
}
