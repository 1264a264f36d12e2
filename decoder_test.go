package ufwire

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/updatefield"
	"github.com/arloliu/ufwire/visibility"
)

func objectCreate(w *bitstream.Writer, entry int32, flags uint32, scale float32) []byte {
	w.WriteInt32(entry)
	w.WriteUint32(flags)
	w.WriteFloat32(scale)

	return w.Bytes()
}

// objectUpdate encodes an object delta setting the given fields; any value
// slice shorter than the mask asks for truncates the payload.
func objectUpdate(fieldBits uint32, values ...uint32) []byte {
	w := bitstream.NewWriter()
	w.WriteBits(fieldBits|1, 4)
	w.AlignToByte()
	for _, v := range values {
		w.WriteUint32(v)
	}

	return w.Bytes()
}

// === NewDecoder Tests ===

func TestNewDecoder_Defaults(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)
	require.Same(t, layout.Default(), dec.Schema())
}

func TestNewDecoder_WithVersion(t *testing.T) {
	dec, err := NewDecoder(WithVersion(layout.V3_4_2))
	require.NoError(t, err)
	require.Equal(t, layout.V3_4_2, dec.Schema().Version)

	_, err = NewDecoder(WithVersion(layout.Version{Major: 99}))
	require.ErrorIs(t, err, errs.ErrUnknownVersion)
}

func TestNewDecoder_WithSchemaNil(t *testing.T) {
	_, err := NewDecoder(WithSchema(nil))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

// === Create Tests ===

func TestDecoder_Create(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	var obj updatefield.ObjectData
	res, err := dec.Create(objectCreate(bitstream.NewWriter(), 42, 3, 1), visibility.None, &obj)
	require.NoError(t, err)
	require.Equal(t, 96, res.Bits)
	require.Equal(t, 12, res.Bytes())
	require.Equal(t, int32(42), obj.EntryID)
	require.Same(t, dec.Schema(), obj.Schema())
}

func TestDecoder_Create_BigEndian(t *testing.T) {
	dec, err := NewDecoder(WithBigEndian())
	require.NoError(t, err)

	w := bitstream.NewWriterWithEngine(endian.GetBigEndianEngine())
	var obj updatefield.ObjectData
	_, err = dec.Create(objectCreate(w, 0x01020304, 0, 0), visibility.None, &obj)
	require.NoError(t, err)
	require.Equal(t, int32(0x01020304), obj.EntryID)
}

func TestDecoder_Create_StrictTrailing(t *testing.T) {
	data := append(objectCreate(bitstream.NewWriter(), 1, 2, 3), 0xFF)

	lenient, err := NewDecoder()
	require.NoError(t, err)
	var a updatefield.ObjectData
	_, err = lenient.Create(data, visibility.None, &a)
	require.NoError(t, err)

	strict, err := NewDecoder(WithStrictTrailing())
	require.NoError(t, err)
	var b updatefield.ObjectData
	_, err = strict.Create(data, visibility.None, &b)
	require.ErrorIs(t, err, errs.ErrTrailingData)
	require.ErrorIs(t, err, errs.ErrStructural)
	require.Equal(t, updatefield.ObjectData{}, b)
}

func TestDecoder_Create_NilDestination(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	_, err = dec.Create(nil, visibility.None, nil)
	require.ErrorIs(t, err, errs.ErrNilDestination)
}

// === Update Tests ===

func TestDecoder_Update_NotifiesSink(t *testing.T) {
	rec := notify.NewRecorder()
	dec, err := NewDecoder(WithSink(rec))
	require.NoError(t, err)

	obj := updatefield.ObjectData{DynamicFlags: 1}
	res, err := dec.Update(objectUpdate(1<<2, 5), &obj)
	require.NoError(t, err)
	require.Equal(t, 40, res.Bits)
	require.Equal(t, uint32(5), obj.DynamicFlags)
	require.Equal(t, 1, rec.Len())
}

func TestDecoder_Update_FailureRestores(t *testing.T) {
	var buf bytes.Buffer
	dec, err := NewDecoder(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	obj := updatefield.ObjectData{EntryID: 1, DynamicFlags: 2, Scale: 3}
	before := obj

	// entry id and flags decode, scale runs out of data
	res, err := dec.Update(objectUpdate(1<<1|1<<2|1<<3, 10, 20), &obj)
	require.ErrorIs(t, err, errs.ErrOutOfData)
	require.Equal(t, before, obj)
	require.Positive(t, res.Bits)
	require.Contains(t, buf.String(), "decode failed")
	require.Contains(t, buf.String(), `"op":"update"`)
}

type panickingSink struct {
	notify.Base
}

func (panickingSink) ObjectDynamicFlags(_, _ uint32) {
	panic("flags watcher failed")
}

func TestDecoder_Update_SinkPanicIsolated(t *testing.T) {
	var buf bytes.Buffer
	dec, err := NewDecoder(WithSink(panickingSink{}), WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	obj := updatefield.ObjectData{EntryID: 1, DynamicFlags: 2, Scale: 3}
	var res Result
	require.NotPanics(t, func() {
		res, err = dec.Update(objectUpdate(1<<1|1<<2|1<<3, 10, 20, math.Float32bits(4)), &obj)
	})
	require.NoError(t, err)
	require.Equal(t, 8+3*32, res.Bits)
	require.Equal(t, int32(10), obj.EntryID)
	require.Equal(t, uint32(20), obj.DynamicFlags)
	require.Equal(t, float32(4), obj.Scale, "decoding continues past the failed callback")

	require.Contains(t, buf.String(), "sink panicked")
	require.Contains(t, buf.String(), "flags watcher failed")
}

func TestDecoder_Update_CapacityLeavesTargetUnmodified(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	l := dec.Schema().Unit
	w := bitstream.NewWriter()
	// unit masks are block-sparse: guard bits, then block 0
	w.WriteBits(1, l.Mask().GuardBits())
	w.WriteBits(1|1<<uint(l.Bit(layout.UnitStateWorldEffectIDs)), 32)
	w.WriteBits(uint32(l.Array(layout.UnitStateWorldEffectIDs).Capacity()+1), 32) //nolint: gosec

	unit := updatefield.UnitData{Health: 7}
	before := unit.Clone()
	_, err = dec.Update(w.Bytes(), &unit)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, *before, unit)
}

func TestDecoder_ConcurrentIndependentEntities(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	const n = 16
	objs := make([]updatefield.ObjectData, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data := objectCreate(bitstream.NewWriter(), int32(i), 0, 1) //nolint: gosec
			_, _ = dec.Create(data, visibility.None, &objs[i])
		}()
	}
	wg.Wait()

	for i := range n {
		require.Equal(t, int32(i), objs[i].EntryID) //nolint: gosec
	}
}

// === Generic Helper Tests ===

func TestDecodeCreate_BackToBack(t *testing.T) {
	w := bitstream.NewWriter()
	objectCreate(w, 1, 0, 0)
	objectCreate(w, 2, 0, 0)

	r := bitstream.NewReader(w.Bytes())
	first, err := DecodeCreate[updatefield.ObjectData](r, visibility.None, nil)
	require.NoError(t, err)
	second, err := DecodeCreate[updatefield.ObjectData](r, visibility.None, nil)
	require.NoError(t, err)

	require.Equal(t, int32(1), first.EntryID)
	require.Equal(t, int32(2), second.EntryID)
	require.Equal(t, 0, r.Remaining())
}

func TestDecodeUpdate_Restores(t *testing.T) {
	obj := updatefield.ObjectData{EntryID: 5}
	r := bitstream.NewReader(objectUpdate(1<<1|1<<3, 9))

	err := DecodeUpdate(r, &obj, nil)
	require.ErrorIs(t, err, errs.ErrOutOfData)
	require.Equal(t, int32(5), obj.EntryID)
}
