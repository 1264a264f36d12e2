package bitstream

import (
	"testing"

	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/stretchr/testify/require"
)

// === Reader Tests ===

func TestReader_ReadBit_MSBFirst(t *testing.T) {
	r := NewReader([]byte{0b1010_0000})

	require.True(t, r.ReadBit())
	require.False(t, r.ReadBit())
	require.True(t, r.ReadBit())
	require.False(t, r.ReadBit())
	require.Equal(t, 4, r.BitPos())
	require.NoError(t, r.Err())
}

func TestReader_ReadBits_AcrossBytes(t *testing.T) {
	r := NewReader([]byte{0b1111_0000, 0b1010_1010})

	require.Equal(t, uint32(0b11), r.ReadBits(2))
	require.Equal(t, uint32(0b11_0000_101), r.ReadBits(9))
	require.Equal(t, 11, r.BitPos())
	require.Equal(t, uint32(0b01010), r.ReadBits(5))
	require.Equal(t, 0, r.Remaining())
	require.NoError(t, r.Err())
}

func TestReader_ReadBits_Full32(t *testing.T) {
	r := NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	require.Equal(t, uint32(0xDEADBEEF), r.ReadBits(32))
	require.NoError(t, r.Err())
}

func TestReader_ReadBits_Zero(t *testing.T) {
	r := NewReader(nil)

	require.Equal(t, uint32(0), r.ReadBits(0))
	require.NoError(t, r.Err())
}

func TestReader_ReadBits_InvalidCount(t *testing.T) {
	r := NewReader(make([]byte, 8))

	r.ReadBits(33)
	require.ErrorIs(t, r.Err(), errs.ErrInvalidBitCount)
	require.ErrorIs(t, r.Err(), errs.ErrStructural)
}

func TestReader_OutOfData(t *testing.T) {
	r := NewReader([]byte{0xFF})

	r.ReadBits(6)
	require.Equal(t, uint32(0), r.ReadBits(3))
	require.ErrorIs(t, r.Err(), errs.ErrOutOfData)
	require.Equal(t, 6, r.BitPos(), "failed read must not move the cursor")
}

func TestReader_StickyError(t *testing.T) {
	r := NewReader([]byte{0x01})

	r.ReadUint32()
	first := r.Err()
	require.ErrorIs(t, first, errs.ErrOutOfData)

	require.Equal(t, uint8(0), r.ReadUint8())
	require.False(t, r.ReadBit())
	require.Same(t, first, r.Err())
	require.Equal(t, 0, r.BitPos())
}

func TestReader_AlignToByte(t *testing.T) {
	r := NewReader([]byte{0b1000_0000, 0x2A})

	require.True(t, r.ReadBit())
	require.False(t, r.Aligned())
	r.AlignToByte()
	require.True(t, r.Aligned())
	require.Equal(t, 8, r.BitPos())
	require.Equal(t, uint8(0x2A), r.ReadUint8())

	r.AlignToByte()
	require.Equal(t, 16, r.BitPos(), "aligning on a boundary is a no-op")
}

func TestReader_MisalignedIntegerRead(t *testing.T) {
	r := NewReader([]byte{0x80, 0, 0, 0, 0})

	r.ReadBit()
	require.Equal(t, uint32(0), r.ReadUint32())
	require.ErrorIs(t, r.Err(), errs.ErrMisaligned)
	require.ErrorIs(t, r.Err(), errs.ErrStructural)
}

func TestReader_Integers_LittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xAB)
	w.WriteInt16(-2)
	w.WriteUint32(0x01020304)
	w.WriteInt64(-42)
	w.WriteFloat32(1.5)
	w.WriteFloat64(-0.25)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, w.Bytes()[3:7])

	r := NewReader(w.Bytes())
	require.Equal(t, uint8(0xAB), r.ReadUint8())
	require.Equal(t, int16(-2), r.ReadInt16())
	require.Equal(t, uint32(0x01020304), r.ReadUint32())
	require.Equal(t, int64(-42), r.ReadInt64())
	require.InDelta(t, float32(1.5), r.ReadFloat32(), 0)
	require.InDelta(t, -0.25, r.ReadFloat64(), 0)
	require.NoError(t, r.Err())
	require.Equal(t, 0, r.Remaining())
}

func TestReader_WithEngine_BigEndian(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04}, WithEngine(endian.GetBigEndianEngine()))

	require.Equal(t, uint32(0x01020304), r.ReadUint32())
	require.NoError(t, r.Err())
}

func TestReader_WithEngine_Nil(t *testing.T) {
	r := NewReader([]byte{0x01}, WithEngine(nil))

	require.ErrorIs(t, r.Err(), errs.ErrInvalidOption)
	require.Equal(t, uint8(0), r.ReadUint8())
}

func TestReader_ReadPacked(t *testing.T) {
	const v = uint64(0x00AB_0000_00CD_0012)
	mask := PackedMask(v)
	require.Equal(t, uint8(0b0100_0101), mask)

	w := NewWriter()
	w.WriteUint8(mask)
	w.WritePacked(v, mask)
	require.Len(t, w.Bytes(), 4)

	r := NewReader(w.Bytes())
	require.Equal(t, v, r.ReadPacked(r.ReadUint8()))
	require.NoError(t, r.Err())
}

func TestReader_Fail_KeepsFirst(t *testing.T) {
	r := NewReader(nil)

	r.Fail(errs.ErrArrayPhase)
	r.Fail(errs.ErrCapacityExceeded)
	r.Fail(nil)

	require.ErrorIs(t, r.Err(), errs.ErrArrayPhase)
	require.NotErrorIs(t, r.Err(), errs.ErrCapacityExceeded)
}

func TestReader_Reset(t *testing.T) {
	r := NewReader([]byte{0x01})
	r.ReadUint32()
	require.Error(t, r.Err())

	r.Reset([]byte{0x07})
	require.NoError(t, r.Err())
	require.Equal(t, 0, r.BitPos())
	require.Equal(t, uint8(7), r.ReadUint8())
}

// === Writer Tests ===

func TestWriter_BitsMirrorReader(t *testing.T) {
	w := NewWriter()
	w.WriteBit(true)
	w.WriteBits(0b101, 3)
	w.WriteBits(0x1ABCD, 17)
	require.Equal(t, 21, w.BitLen())
	w.AlignToByte()
	w.WriteUint16(0xBEEF)
	require.Equal(t, 40, w.BitLen())

	r := NewReader(w.Bytes())
	require.True(t, r.ReadBit())
	require.Equal(t, uint32(0b101), r.ReadBits(3))
	require.Equal(t, uint32(0x1ABCD), r.ReadBits(17))
	r.AlignToByte()
	require.Equal(t, uint16(0xBEEF), r.ReadUint16())
	require.NoError(t, r.Err())
}

func TestWriter_UnalignedIntegerPanics(t *testing.T) {
	w := NewWriter()
	w.WriteBit(true)

	require.Panics(t, func() { w.WriteUint32(1) })
}

func TestWriter_BigEndian(t *testing.T) {
	w := NewWriterWithEngine(endian.GetBigEndianEngine())
	w.WriteUint32(0x01020304)

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, w.Bytes())
}
