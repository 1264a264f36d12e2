// Package bitstream provides the bit cursor the update-field decoders pull
// from, plus a mirror writer used to build fixtures and test streams.
//
// # Wire conventions
//
// Bits are consumed MSB-first: within a byte the most significant bit is read
// first, and ReadBits(n) places the first bit it reads in bit n-1 of the
// result. Integers are byte-aligned and little-endian unless another engine is
// configured. Alignment is never implicit: a bit read leaves the cursor inside
// a byte until AlignToByte is called, and an integer read issued while bits of
// the current byte are pending fails with errs.ErrMisaligned.
//
// # Error model
//
// The Reader keeps the first error it encounters. Once an error is recorded
// every read is a no-op that returns the zero value, so decoders can issue a
// run of reads and check Err once at the end:
//
//	r := bitstream.NewReader(data)
//	id := r.ReadInt32()
//	flags := r.ReadUint32()
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// Engine code records its own structural failures with Fail so the cursor
// and the decoders above it share a single error slot.
//
// A Reader is not safe for concurrent use.
package bitstream

import (
	"fmt"
	"math"

	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/options"
)

// MaxReadBits is the largest bit count accepted by ReadBits.
const MaxReadBits = 32

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithEngine sets the byte order used by integer reads.
func WithEngine(engine endian.EndianEngine) ReaderOption {
	return options.New(func(r *Reader) error {
		if engine == nil {
			return fmt.Errorf("%w: nil endian engine", errs.ErrInvalidOption)
		}
		r.engine = engine

		return nil
	})
}

// Reader is a bounds-checked bit cursor over a byte slice.
type Reader struct {
	data   []byte
	pos    int // absolute bit position
	engine endian.EndianEngine
	err    error
}

// NewReader creates a Reader positioned at the first bit of data.
//
// Invalid options are recorded as the reader's error, so a misconfigured
// reader fails on its first read instead of panicking.
func NewReader(data []byte, opts ...ReaderOption) *Reader {
	r := &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(r, opts...); err != nil {
		r.err = err
	}

	return r
}

// Reset points the reader at data and clears its position and error.
func (r *Reader) Reset(data []byte) {
	r.data = data
	r.pos = 0
	r.err = nil
}

// Err returns the first error recorded by the reader.
func (r *Reader) Err() error {
	return r.err
}

// Fail records err unless an earlier error is already recorded.
func (r *Reader) Fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Engine returns the byte order used by integer reads.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// BitPos returns the number of bits consumed so far.
func (r *Reader) BitPos() int {
	return r.pos
}

// BytePos returns the index of the byte holding the next bit.
func (r *Reader) BytePos() int {
	return r.pos >> 3
}

// Len returns the length of the underlying buffer in bytes.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.pos
}

// Aligned reports whether the cursor sits on a byte boundary.
func (r *Reader) Aligned() bool {
	return r.pos&7 == 0
}

// AlignToByte discards the pending bits of the current byte.
func (r *Reader) AlignToByte() {
	if r.err != nil {
		return
	}
	r.pos = (r.pos + 7) &^ 7
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() bool {
	if !r.need(1) {
		return false
	}

	b := r.data[r.pos>>3]
	bit := (b >> (7 - uint(r.pos&7))) & 1
	r.pos++

	return bit == 1
}

// ReadBits reads n bits (0 <= n <= 32) MSB-first.
//
// Returns:
//   - uint32: the bits right-aligned, first bit read in position n-1
func (r *Reader) ReadBits(n int) uint32 {
	if r.err != nil {
		return 0
	}
	if n < 0 || n > MaxReadBits {
		r.Fail(fmt.Errorf("%w: ReadBits(%d)", errs.ErrInvalidBitCount, n))
		return 0
	}
	if n == 0 || !r.need(n) {
		return 0
	}

	var v uint32
	for n > 0 {
		off := r.pos & 7
		avail := 8 - off
		take := min(avail, n)

		chunk := (uint32(r.data[r.pos>>3]) >> uint(avail-take)) & (1<<uint(take) - 1)
		v = v<<uint(take) | chunk

		r.pos += take
		n -= take
	}

	return v
}

// ReadBytes returns the next n bytes. The returned slice aliases the buffer.
func (r *Reader) ReadBytes(n int) []byte {
	return r.bytes(n)
}

// ReadUint8 reads a byte-aligned uint8.
func (r *Reader) ReadUint8() uint8 {
	b := r.bytes(1)
	if b == nil {
		return 0
	}

	return b[0]
}

// ReadUint16 reads a byte-aligned uint16.
func (r *Reader) ReadUint16() uint16 {
	b := r.bytes(2)
	if b == nil {
		return 0
	}

	return r.engine.Uint16(b)
}

// ReadUint32 reads a byte-aligned uint32.
func (r *Reader) ReadUint32() uint32 {
	b := r.bytes(4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

// ReadUint64 reads a byte-aligned uint64.
func (r *Reader) ReadUint64() uint64 {
	b := r.bytes(8)
	if b == nil {
		return 0
	}

	return r.engine.Uint64(b)
}

// ReadInt8 reads a byte-aligned int8.
func (r *Reader) ReadInt8() int8 {
	return int8(r.ReadUint8()) //nolint: gosec
}

// ReadInt16 reads a byte-aligned int16.
func (r *Reader) ReadInt16() int16 {
	return int16(r.ReadUint16()) //nolint: gosec
}

// ReadInt32 reads a byte-aligned int32.
func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUint32()) //nolint: gosec
}

// ReadInt64 reads a byte-aligned int64.
func (r *Reader) ReadInt64() int64 {
	return int64(r.ReadUint64()) //nolint: gosec
}

// ReadFloat32 reads a byte-aligned IEEE-754 float32.
func (r *Reader) ReadFloat32() float32 {
	return math.Float32frombits(r.ReadUint32())
}

// ReadFloat64 reads a byte-aligned IEEE-754 float64.
func (r *Reader) ReadFloat64() float64 {
	return math.Float64frombits(r.ReadUint64())
}

// ReadPacked reads the bytes of a packed uint64 selected by mask: bit i of
// mask set means byte i of the value is present on the wire.
func (r *Reader) ReadPacked(mask uint8) uint64 {
	var v uint64
	for i := range 8 {
		if mask&(1<<uint(i)) != 0 {
			v |= uint64(r.ReadUint8()) << (uint(i) * 8)
		}
	}

	return v
}

// need checks that n more bits are available, recording ErrOutOfData if not.
func (r *Reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if rem := r.Remaining(); n > rem {
		r.Fail(fmt.Errorf("%w: need %d bits at bit %d, %d left", errs.ErrOutOfData, n, r.pos, rem))
		return false
	}

	return true
}

// bytes returns the next n aligned bytes or nil on failure.
func (r *Reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if !r.Aligned() {
		r.Fail(fmt.Errorf("%w: %d-byte read at bit %d", errs.ErrMisaligned, n, r.pos))
		return nil
	}
	if !r.need(n * 8) {
		return nil
	}

	start := r.pos >> 3
	r.pos += n * 8

	return r.data[start : start+n]
}
