package updatefield

import (
	"testing"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
	"github.com/stretchr/testify/require"
)

// === Object Tests ===

func TestObjectData_ReadCreate(t *testing.T) {
	w := bitstream.NewWriter()
	w.WriteInt32(1234)
	w.WriteUint32(0x20)
	w.WriteFloat32(1.5)

	rec := notify.NewRecorder()
	var d ObjectData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadCreate(r, visibility.None, rec))

	require.Equal(t, int32(1234), d.EntryID)
	require.Equal(t, uint32(0x20), d.DynamicFlags)
	require.InDelta(t, 1.5, d.Scale, 0)
	require.Equal(t, 0, r.Remaining())
	require.Equal(t, 0, rec.Len(), "create does not notify dynamic flags")
}

func TestObjectData_ReadCreate_Idempotent(t *testing.T) {
	w := bitstream.NewWriter()
	w.WriteInt32(7)
	w.WriteUint32(3)
	w.WriteFloat32(2)

	var once, twice ObjectData
	require.NoError(t, once.ReadCreate(bitstream.NewReader(w.Bytes()), visibility.None, nil))
	require.NoError(t, twice.ReadCreate(bitstream.NewReader(w.Bytes()), visibility.None, nil))
	require.NoError(t, twice.ReadCreate(bitstream.NewReader(w.Bytes()), visibility.None, nil))

	require.Equal(t, once, twice)
}

func TestObjectData_ReadUpdate_DynamicFlags(t *testing.T) {
	l := layout.Default().Object
	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.ObjectDynamicFlags))
	w.AlignToByte()
	w.WriteUint32(7)

	rec := notify.NewRecorder()
	d := ObjectData{EntryID: 9, DynamicFlags: 3}
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, rec))

	require.Equal(t, uint32(7), d.DynamicFlags)
	require.Equal(t, int32(9), d.EntryID, "unchanged field untouched")
	require.Equal(t, 0, r.Remaining())

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, notify.KindObjectDynamicFlags, events[0].Kind)
	require.Equal(t, int64(3), events[0].Old)
	require.Equal(t, int64(7), events[0].New)
}

func TestObjectData_ReadUpdate_FieldWithoutGuard(t *testing.T) {
	l := layout.Default().Object
	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), l.Bit(layout.ObjectScale))
	w.AlignToByte()

	d := ObjectData{Scale: 1}
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))
	require.InDelta(t, 1.0, d.Scale, 0)
	require.Equal(t, 8, r.BitPos())
}

func TestObjectData_ReadUpdate_EmptyMask(t *testing.T) {
	w := bitstream.NewWriter()
	writeMask(w, layout.Default().Object.Mask())
	w.AlignToByte()

	d := ObjectData{EntryID: 5}
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))

	require.Equal(t, 8, r.BitPos())
	require.Equal(t, ObjectData{EntryID: 5}, d)
}

func TestObjectData_ReadUpdate_TruncatedDoesNotNotify(t *testing.T) {
	l := layout.Default().Object
	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.ObjectDynamicFlags))
	w.AlignToByte()
	w.WriteUint16(1)

	rec := notify.NewRecorder()
	var d ObjectData
	err := d.ReadUpdate(bitstream.NewReader(w.Bytes()), rec)

	require.ErrorIs(t, err, errs.ErrOutOfData)
	require.Equal(t, 0, rec.Len())
}

// === Entity Tests ===

func TestNew_AllTypes(t *testing.T) {
	for _, typ := range format.ObjectTypes {
		e, err := New(typ)
		require.NoError(t, err, typ.String())
		require.Equal(t, typ, e.Type())
		require.Same(t, layout.Default(), e.Schema())
	}
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(format.ObjectType(0x7F))
	require.ErrorIs(t, err, errs.ErrUnknownKind)
}

func TestEntity_SnapshotRestore(t *testing.T) {
	d := &ObjectData{EntryID: 1, DynamicFlags: 2}
	snap := d.Snapshot()

	d.EntryID = 99
	d.Restore(snap)

	require.Equal(t, int32(1), d.EntryID)
	require.Equal(t, uint32(2), d.DynamicFlags)
}

func TestEntity_Restore_TypeMismatchPanics(t *testing.T) {
	d := &ObjectData{}
	require.Panics(t, func() { d.Restore(&CorpseData{}) })
}

func TestEntity_SetSchema(t *testing.T) {
	var d ObjectData
	s := layout.Default()

	d.SetSchema(s)
	require.Same(t, s, d.Schema())

	d.SetSchema(nil)
	require.Same(t, layout.Default(), d.Schema())
}

// === GUID Tests ===

func TestGUID_Read(t *testing.T) {
	want := GUID{Low: 0x0000_0000_00AB_0012, High: 0x0100_0000_0000_0000}
	w := bitstream.NewWriter()
	writeGUID(w, want)

	require.Equal(t, 2+2+1, len(w.Bytes()), "only non-zero bytes travel")

	var g GUID
	r := bitstream.NewReader(w.Bytes())
	g.Read(r)
	require.NoError(t, r.Err())
	require.Equal(t, want, g)
	require.False(t, g.IsEmpty())
	require.Equal(t, "0x01000000000000000000000000AB0012", g.String())
}

func TestGUID_Empty(t *testing.T) {
	w := bitstream.NewWriter()
	writeGUID(w, GUID{})

	var g GUID
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, g.ReadCreate(r, visibility.None))
	require.True(t, g.IsEmpty())
	require.Equal(t, 16, r.BitPos())
}
