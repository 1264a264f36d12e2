package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/mask"
)

// writeMask encodes a change mask with the given bits set.
func writeMask(w *bitstream.Writer, spec mask.Spec, bits ...int) {
	mask.WriteBits(w, spec, bits...)
}

func writeGUID(w *bitstream.Writer, g GUID) {
	lowMask := bitstream.PackedMask(g.Low)
	highMask := bitstream.PackedMask(g.High)
	w.WriteUint8(lowMask)
	w.WriteUint8(highMask)
	w.WritePacked(g.Low, lowMask)
	w.WritePacked(g.High, highMask)
}

// writeNewArray encodes phase 1 of a tracked array that grows from empty to
// n elements, all marked changed. The size is written in width bits.
func writeNewArray(w *bitstream.Writer, n, width int) {
	w.WriteBit(true)
	w.WriteBits(uint32(n), width) //nolint: gosec
	if n == 0 {
		return
	}
	w.WriteBits(1<<uint(n)-1, n)
}
