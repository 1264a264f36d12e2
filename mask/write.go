package mask

import "github.com/arloliu/ufwire/bitstream"

// Write encodes m in the form declared by spec, mirroring Read. Only the
// first spec.Bits bits of m are written.
//
// The writer must be byte-aligned when the mask has more than 32 blocks,
// because the leading guard words are written as aligned integers.
func Write(w *bitstream.Writer, m Mask, spec Spec) {
	blocks := make([]uint32, spec.Blocks())
	copy(blocks, m.blocks)
	if rem := spec.Bits % BlockBits; rem != 0 {
		blocks[len(blocks)-1] &= 1<<uint(rem) - 1
	}

	if !spec.Sparse() {
		w.WriteBits(blocks[0], spec.Bits)
		return
	}

	n := len(blocks)
	for first := 0; first < n; first += BlockBits {
		var guards uint32
		for i := first; i < min(n, first+BlockBits); i++ {
			if blocks[i] != 0 {
				guards |= 1 << uint(i-first)
			}
		}
		if first+BlockBits < n {
			w.WriteUint32(guards)
		} else {
			w.WriteBits(guards, n-first)
		}
	}
	for _, b := range blocks {
		if b != 0 {
			w.WriteBits(b, BlockBits)
		}
	}
}

// WriteBits encodes a mask of spec with the given bits set.
func WriteBits(w *bitstream.Writer, spec Spec, bits ...int) {
	m := New(spec.Bits)
	for _, b := range bits {
		m.Set(b)
	}
	Write(w, m, spec)
}
