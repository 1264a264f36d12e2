package bitstream

import (
	"math"

	"github.com/arloliu/ufwire/endian"
)

// Writer is the mirror image of Reader. It exists to build hand-made update
// streams for tests and synthetic captures; no decode path depends on it.
//
// Writer follows the same conventions as Reader: bits go out MSB-first and
// integer writes require a byte boundary. An unaligned integer write is a
// programming error in the fixture and panics.
type Writer struct {
	buf    []byte
	nbits  int // bits used in the last byte, 0 when aligned
	engine endian.EndianEngine
}

// NewWriter creates a little-endian Writer.
func NewWriter() *Writer {
	return &Writer{engine: endian.GetLittleEndianEngine()}
}

// NewWriterWithEngine creates a Writer using engine for integer writes.
func NewWriterWithEngine(engine endian.EndianEngine) *Writer {
	return &Writer{engine: engine}
}

// Bytes returns the written bytes. A partially written last byte is padded
// with zero bits.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// BitLen returns the number of bits written.
func (w *Writer) BitLen() int {
	if w.nbits == 0 {
		return len(w.buf) * 8
	}

	return (len(w.buf)-1)*8 + w.nbits
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit bool) {
	if bit {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// WriteBits writes the low n bits of v, most significant first.
func (w *Writer) WriteBits(v uint32, n int) {
	if n < 0 || n > MaxReadBits {
		panic("bitstream: invalid bit count")
	}

	for n > 0 {
		if w.nbits == 0 {
			w.buf = append(w.buf, 0)
		}
		free := 8 - w.nbits
		take := min(free, n)

		chunk := byte((v >> uint(n-take)) & (1<<uint(take) - 1))
		w.buf[len(w.buf)-1] |= chunk << uint(free-take)

		w.nbits = (w.nbits + take) & 7
		n -= take
	}
}

// AlignToByte pads the current byte with zero bits.
func (w *Writer) AlignToByte() {
	w.nbits = 0
}

// WriteBytes appends raw bytes at a byte boundary.
func (w *Writer) WriteBytes(b []byte) {
	w.mustAlign()
	w.buf = append(w.buf, b...)
}

// WriteUint8 writes a byte-aligned uint8.
func (w *Writer) WriteUint8(v uint8) {
	w.mustAlign()
	w.buf = append(w.buf, v)
}

// WriteUint16 writes a byte-aligned uint16.
func (w *Writer) WriteUint16(v uint16) {
	w.mustAlign()
	w.buf = w.engine.AppendUint16(w.buf, v)
}

// WriteUint32 writes a byte-aligned uint32.
func (w *Writer) WriteUint32(v uint32) {
	w.mustAlign()
	w.buf = w.engine.AppendUint32(w.buf, v)
}

// WriteUint64 writes a byte-aligned uint64.
func (w *Writer) WriteUint64(v uint64) {
	w.mustAlign()
	w.buf = w.engine.AppendUint64(w.buf, v)
}

// WriteInt8 writes a byte-aligned int8.
func (w *Writer) WriteInt8(v int8) { w.WriteUint8(uint8(v)) } //nolint: gosec

// WriteInt16 writes a byte-aligned int16.
func (w *Writer) WriteInt16(v int16) { w.WriteUint16(uint16(v)) } //nolint: gosec

// WriteInt32 writes a byte-aligned int32.
func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) } //nolint: gosec

// WriteInt64 writes a byte-aligned int64.
func (w *Writer) WriteInt64(v int64) { w.WriteUint64(uint64(v)) } //nolint: gosec

// WriteFloat32 writes a byte-aligned float32.
func (w *Writer) WriteFloat32(v float32) { w.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes a byte-aligned float64.
func (w *Writer) WriteFloat64(v float64) { w.WriteUint64(math.Float64bits(v)) }

// PackedMask returns the byte-presence mask of v used by WritePacked.
func PackedMask(v uint64) uint8 {
	var mask uint8
	for i := range 8 {
		if (v>>(uint(i)*8))&0xFF != 0 {
			mask |= 1 << uint(i)
		}
	}

	return mask
}

// WritePacked writes the non-zero bytes of v selected by mask.
func (w *Writer) WritePacked(v uint64, mask uint8) {
	for i := range 8 {
		if mask&(1<<uint(i)) != 0 {
			w.WriteUint8(byte(v >> (uint(i) * 8)))
		}
	}
}

func (w *Writer) mustAlign() {
	if w.nbits != 0 {
		panic("bitstream: unaligned integer write")
	}
}
