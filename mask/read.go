package mask

import (
	"fmt"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
)

// Read decodes a mask declared by spec from r.
//
// In block-sparse form the guard bits come first. When a mask spans more than
// 32 blocks, every complete 32-guard word except the last is stored as a
// byte-aligned integer and the final word as plain bits; the 1,793-bit skill
// table (57 guards, 32 + 25) is the largest such mask.
//
// Returns:
//   - Mask: the decoded mask, valid only when error is nil
//   - error: the reader's sticky error, ErrGuardMismatch when a guard bit
//     announces an empty block, or ErrMaskOverflow when a block carries bits
//     beyond the declared length
func Read(r *bitstream.Reader, spec Spec) (Mask, error) {
	if err := spec.Validate(); err != nil {
		r.Fail(err)
		return Mask{}, r.Err()
	}

	m := New(spec.Bits)
	if !spec.Sparse() {
		m.blocks[0] = r.ReadBits(spec.Bits)
		return m, r.Err()
	}

	guards := readGuards(r, len(m.blocks))
	for i := range m.blocks {
		if !guards.Test(i) {
			continue
		}
		m.blocks[i] = r.ReadBits(BlockBits)
		if r.Err() != nil {
			return Mask{}, r.Err()
		}
		if m.blocks[i] == 0 {
			r.Fail(fmt.Errorf("%w: block %d of %d-bit mask", errs.ErrGuardMismatch, i, spec.Bits))
			return Mask{}, r.Err()
		}
	}

	if last := m.blocks[len(m.blocks)-1]; spec.Bits%BlockBits != 0 && last>>uint(spec.Bits%BlockBits) != 0 {
		r.Fail(fmt.Errorf("%w: %d-bit mask, last block 0x%08x", errs.ErrMaskOverflow, spec.Bits, last))
		return Mask{}, r.Err()
	}

	return m, r.Err()
}

// ReadAligned decodes a mask and aligns the cursor to the next byte.
func ReadAligned(r *bitstream.Reader, spec Spec) (Mask, error) {
	m, err := Read(r, spec)
	r.AlignToByte()

	return m, err
}

// readGuards reads n guard bits.
func readGuards(r *bitstream.Reader, n int) Mask {
	g := New(n)
	for w := range g.blocks {
		if w < len(g.blocks)-1 {
			g.blocks[w] = r.ReadUint32()
			continue
		}
		g.blocks[w] = r.ReadBits(n - w*BlockBits)
	}

	return g
}

// Group describes a fixed-size array whose elements are gated by a shared
// guard bit followed by one bit per element.
type Group struct {
	Guard int
	First int
	Count int
}

// Has reports whether the group's guard bit is set.
func (g Group) Has(m Mask) bool {
	return m.Test(g.Guard)
}

// Test reports whether element i of the group changed.
func (g Group) Test(m Mask, i int) bool {
	if i < 0 || i >= g.Count {
		return false
	}

	return m.Test(g.First + i)
}

// End returns the bit just past the group's last element.
func (g Group) End() int {
	return g.First + g.Count
}
