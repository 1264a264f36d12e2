package updatefield

import (
	"testing"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
	"github.com/stretchr/testify/require"
)

func kinds(events []notify.Event) []notify.Kind {
	out := make([]notify.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}

	return out
}

// === Unit Tests ===

func TestUnitData_ReadCreate_NotificationOrder(t *testing.T) {
	rec := notify.NewRecorder()
	var d UnitData
	require.NoError(t, d.ReadCreate(bitstream.NewReader(make([]byte, 4096)), visibility.None, rec))

	want := []notify.Kind{notify.KindUnitHealth}
	for range unitPowers {
		want = append(want, notify.KindUnitPower)
	}
	want = append(want, notify.KindUnitLevel, notify.KindUnitFlags, notify.KindUnitDisplayID)

	events := rec.Events()
	require.Equal(t, want, kinds(events))
	for i, e := range events {
		require.Zero(t, e.Old, "create reports old value 0, event %d", i)
	}
	require.Equal(t, 9, events[10].Index)
}

func TestUnitData_ReadCreate_OwnerReadsMore(t *testing.T) {
	data := make([]byte, 4096)

	var none, owner UnitData
	rNone := bitstream.NewReader(data)
	rOwner := bitstream.NewReader(data)
	require.NoError(t, none.ReadCreate(rNone, visibility.None, nil))
	require.NoError(t, owner.ReadCreate(rOwner, visibility.Owner, nil))

	require.Greater(t, rOwner.BitPos(), rNone.BitPos())
}

func TestUnitData_ReadUpdate_NotifiesWithPreviousValues(t *testing.T) {
	l := layout.Default().Unit
	power := l.Group(layout.UnitPower)
	powerUnk := l.Group(layout.UnitPowerUnk)

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, 32,
		l.Bit(layout.UnitHealth), l.Bit(layout.UnitLevel), l.Bit(layout.UnitFlags),
		powerUnk.Guard, power.First+2)
	w.AlignToByte()
	w.WriteInt64(50)
	w.WriteInt32(2)
	w.WriteUint32(8)
	w.WriteInt32(20)

	d := UnitData{Health: 100, Level: 1}
	d.Power[2] = 10

	rec := notify.NewRecorder()
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, rec))
	require.Equal(t, 0, r.Remaining())

	events := rec.Events()
	require.Equal(t, []notify.Kind{
		notify.KindUnitHealth, notify.KindUnitLevel, notify.KindUnitFlags, notify.KindUnitPower,
	}, kinds(events))
	require.Equal(t, int64(100), events[0].Old)
	require.Equal(t, int64(50), events[0].New)
	require.Equal(t, int64(1), events[1].Old)
	require.Equal(t, int64(8), events[2].New)
	require.Equal(t, int64(10), events[3].Old)
	require.Equal(t, int64(20), events[3].New)
	require.Equal(t, 2, events[3].Index)

	require.Equal(t, int64(50), d.Health)
	require.Equal(t, int32(20), d.Power[2])
}

func TestUnitData_ReadUpdate_DisplayIDUnreliableOld(t *testing.T) {
	l := layout.Default().Unit
	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.UnitDisplayID))
	w.AlignToByte()
	w.WriteInt32(4000)

	d := UnitData{DisplayID: 3000}
	rec := notify.NewRecorder()
	require.NoError(t, d.ReadUpdate(bitstream.NewReader(w.Bytes()), rec))

	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, int64(0), events[0].Old)
	require.Equal(t, int64(4000), events[0].New)
	require.True(t, events[0].OldUnreliable)
}

func TestUnitData_ReadUpdate_StateWorldEffects(t *testing.T) {
	l := layout.Default().Unit
	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.UnitStateWorldEffectIDs))
	w.WriteBits(2, 32)
	w.AlignToByte()
	w.WriteUint32(11)
	w.WriteUint32(12)

	var d UnitData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))
	require.Equal(t, 0, r.Remaining())

	require.Equal(t, 2, d.StateWorldEffectIDs.Len())
	require.Equal(t, uint32(12), uint32(*d.StateWorldEffectIDs.At(1)))
}

func TestUnitData_ReadUpdate_StateWorldEffectsCapacity(t *testing.T) {
	l := layout.Default().Unit
	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.UnitStateWorldEffectIDs))
	w.WriteBits(uint32(l.Array(layout.UnitStateWorldEffectIDs).Capacity()+1), 32) //nolint: gosec

	var d UnitData
	err := d.ReadUpdate(bitstream.NewReader(w.Bytes()), nil)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestUnitData_ReadUpdate_GuardMismatch(t *testing.T) {
	w := bitstream.NewWriter()
	w.WriteBits(1, layout.Default().Unit.Mask().GuardBits())
	w.WriteBits(0, 32)

	var d UnitData
	err := d.ReadUpdate(bitstream.NewReader(w.Bytes()), nil)
	require.ErrorIs(t, err, errs.ErrGuardMismatch)
}

func TestUnitData_Clone_Independent(t *testing.T) {
	var d UnitData
	w := bitstream.NewWriter()
	w.WriteUint32(1)
	w.WriteUint32(5)
	require.NoError(t, d.StateWorldEffectIDs.ReadCreate(bitstream.NewReader(w.Bytes()), visibility.None,
		layout.Default().Unit.Array(layout.UnitStateWorldEffectIDs)))

	c := d.Clone()
	*c.StateWorldEffectIDs.At(0) = 9

	require.Equal(t, uint32(5), uint32(*d.StateWorldEffectIDs.At(0)))
}

// === Container Tests ===

func TestContainerData_ReadUpdate_SlotNotifications(t *testing.T) {
	l := layout.Default().Container
	slots := l.Group(layout.ContainerSlots)

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.ContainerNumSlots), slots.Guard, slots.First+1, slots.First+30)
	w.AlignToByte()
	w.WriteUint32(16)
	writeGUID(w, GUID{Low: 0xAA, High: 1})
	writeGUID(w, GUID{Low: 0xBB})

	d := ContainerData{}
	d.Slots[1] = GUID{Low: 0x11}

	rec := notify.NewRecorder()
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, rec))
	require.Equal(t, 0, r.Remaining())

	require.Equal(t, uint32(16), d.NumSlots)
	require.Equal(t, GUID{Low: 0xAA, High: 1}, d.Slots[1])
	require.Equal(t, GUID{Low: 0xBB}, d.Slots[30])

	events := rec.Events()
	require.Len(t, events, 2)
	require.Equal(t, notify.Event{Kind: notify.KindContainerSlot, Old: 0, New: 0xAA, Index: 1, Sub: -1, OldUnreliable: true}, events[0])
	require.Equal(t, 30, events[1].Index)
}

func TestContainerData_ReadCreate(t *testing.T) {
	w := bitstream.NewWriter()
	for i := range containerSlots {
		writeGUID(w, GUID{Low: uint64(i)}) //nolint: gosec
	}
	w.WriteUint32(36)

	rec := notify.NewRecorder()
	var d ContainerData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadCreate(r, visibility.None, rec))
	require.Equal(t, 0, r.Remaining())
	require.Equal(t, uint64(35), d.Slots[35].Low)
	require.Equal(t, 0, rec.Len())
}
