package updatefield

import (
	"testing"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/visibility"
	"github.com/stretchr/testify/require"
)

// writeItemCreate encodes an item snapshot; the owner-only sections are
// written only when owner is set, the way the sender builds them.
func writeItemCreate(w *bitstream.Writer, owner bool, bonusIDs int) {
	writeGUID(w, GUID{Low: 1})
	writeGUID(w, GUID{Low: 2})
	writeGUID(w, GUID{})
	writeGUID(w, GUID{})
	if owner {
		w.WriteUint32(20)
		w.WriteUint32(3600)
		for i := range itemSpellCharges {
			w.WriteInt32(-int32(i + 1)) //nolint: gosec
		}
	}
	w.WriteUint32(0x10)
	for i := range itemEnchantments {
		w.WriteInt32(int32(100 + i)) //nolint: gosec
		w.WriteUint32(0)
		w.WriteInt16(0)
		w.WriteUint8(0)
		w.WriteUint8(0)
	}
	w.WriteInt32(7)
	w.WriteInt32(8)
	if owner {
		w.WriteUint32(50)
		w.WriteUint32(60)
	}
	w.WriteUint32(9)
	w.WriteUint8(2)
	w.WriteInt64(1_700_000_000)
	if owner {
		w.WriteUint64(11)
		w.WriteUint8(3)
	}
	w.WriteUint32(1) // artifact powers
	w.WriteUint32(0) // gems
	if owner {
		w.WriteUint32(4)
		w.WriteUint16(200)
	}
	w.WriteInt16(5)
	w.WriteUint8(1)
	w.WriteUint8(2)

	w.WriteUint32(1234)
	w.WriteUint32(uint32(bonusIDs)) //nolint: gosec
	for i := range bonusIDs {
		w.WriteUint32(uint32(10 + i)) //nolint: gosec
	}

	w.WriteBits(1, layout.Default().Item.Array(layout.ItemModifiers).Width())
	w.AlignToByte()
	w.WriteInt32(42)
	w.WriteUint8(1)
}

func decodeItemCreate(t *testing.T, owner bool, flags visibility.Flags) *ItemData {
	t.Helper()

	w := bitstream.NewWriter()
	writeItemCreate(w, owner, 2)

	var d ItemData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadCreate(r, flags, nil))
	require.Equal(t, 0, r.Remaining())

	return &d
}

// === Item Create Tests ===

func TestItemData_ReadCreate_Owner(t *testing.T) {
	d := decodeItemCreate(t, true, visibility.Owner)

	require.Equal(t, uint64(1), d.Owner.Low)
	require.Equal(t, uint64(2), d.ContainedIn.Low)
	require.Equal(t, uint32(20), d.StackCount)
	require.Equal(t, int32(-5), d.SpellCharges[4])
	require.Equal(t, int32(112), d.Enchantments[12].ID)
	require.Equal(t, uint32(60), d.MaxDurability)
	require.Equal(t, int64(1_700_000_000), d.CreateTime)
	require.Equal(t, uint64(11), d.ArtifactXP)
	require.Equal(t, uint16(200), d.DebugItemLevel)

	require.Equal(t, 1, d.ArtifactPowers.Len())
	require.Equal(t, ArtifactPower{ArtifactPowerID: 5, PurchasedRank: 1, CurrentRankWithBonus: 2}, *d.ArtifactPowers.At(0))
	require.Equal(t, 0, d.Gems.Len())
	require.Equal(t, ItemBonusKey{ItemID: 1234, BonusListIDs: []uint32{10, 11}}, d.Bonus)
	require.Equal(t, 1, d.Modifiers.Values.Len())
	require.Equal(t, ItemMod{Value: 42, Type: 1}, *d.Modifiers.Values.At(0))
}

func TestItemData_ReadCreate_GatedSectionsEquivalent(t *testing.T) {
	full := decodeItemCreate(t, true, visibility.Owner)
	gated := decodeItemCreate(t, false, visibility.PartyMember)

	require.Zero(t, gated.StackCount)
	require.Zero(t, gated.Durability)
	require.Zero(t, gated.DynamicFlags2)

	full.StackCount = 0
	full.Expiration = 0
	full.SpellCharges = [itemSpellCharges]int32{}
	full.Durability = 0
	full.MaxDurability = 0
	full.ArtifactXP = 0
	full.AppearanceModID = 0
	full.DynamicFlags2 = 0
	full.DebugItemLevel = 0
	require.Equal(t, full, gated)
}

func TestItemData_ReadCreate_Idempotent(t *testing.T) {
	w := bitstream.NewWriter()
	writeItemCreate(w, true, 2)
	data := w.Bytes()

	var a, b ItemData
	require.NoError(t, a.ReadCreate(bitstream.NewReader(data), visibility.Owner, nil))
	require.NoError(t, b.ReadCreate(bitstream.NewReader(data), visibility.Owner, nil))
	require.Equal(t, a, b)

	// a second create over a populated entity lands on the same state
	require.NoError(t, a.ReadCreate(bitstream.NewReader(data), visibility.Owner, nil))
	require.Equal(t, b, a)
}

func TestItemData_ReadCreate_BonusCapacity(t *testing.T) {
	limit := layout.Default().Item.Array(layout.ItemBonusListIDs).Capacity()
	w := bitstream.NewWriter()
	writeItemCreate(w, true, limit+1)

	var d ItemData
	err := d.ReadCreate(bitstream.NewReader(w.Bytes()), visibility.Owner, nil)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

// === Item Update Tests ===

func TestItemData_ReadUpdate_ArraysBeforeScalars(t *testing.T) {
	l := layout.Default().Item
	charges := l.Group(layout.ItemSpellCharges)

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0,
		l.Bit(layout.ItemArtifactPowers), l.Bit(layout.ItemGems), l.Bit(layout.ItemStackCount),
		charges.Guard, charges.First+1)
	w.AlignToByte()
	writeNewArray(w, 1, l.Array(layout.ItemArtifactPowers).Width())
	writeNewArray(w, 1, l.Array(layout.ItemGems).Width())
	w.AlignToByte()
	// artifact power, created
	w.WriteInt16(3)
	w.WriteUint8(4)
	w.WriteUint8(5)
	// gem, created
	w.WriteInt32(777)
	for i := range gemBonusListIDs {
		w.WriteUint16(uint16(i)) //nolint: gosec
	}
	w.WriteUint8(6)
	// scalars, then groups
	w.WriteUint32(99)
	w.WriteInt32(-2)

	var d ItemData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))

	require.Equal(t, w.BitLen(), r.BitPos())
	require.Equal(t, ArtifactPower{ArtifactPowerID: 3, PurchasedRank: 4, CurrentRankWithBonus: 5}, *d.ArtifactPowers.At(0))
	require.Equal(t, int32(777), d.Gems.At(0).ItemID)
	require.Equal(t, uint16(15), d.Gems.At(0).BonusListIDs[15])
	require.Equal(t, uint8(6), d.Gems.At(0).Context)
	require.Equal(t, uint32(99), d.StackCount)
	require.Equal(t, int32(-2), d.SpellCharges[1])
	require.True(t, d.Gems.Touched())
}

func TestItemData_ReadUpdate_GemDelta(t *testing.T) {
	l := layout.Default().Item
	var d ItemData
	seed := bitstream.NewWriter()
	seed.WriteUint32(1)
	seed.WriteInt32(1)
	for range gemBonusListIDs {
		seed.WriteUint16(0)
	}
	seed.WriteUint8(0)
	require.NoError(t, d.Gems.ReadCreate(bitstream.NewReader(seed.Bytes()), visibility.None, l.Array(layout.ItemGems)))

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.ItemGems))
	w.AlignToByte()
	w.WriteBit(false) // no resize
	w.WriteBits(1, 1)
	w.AlignToByte()
	// gem delta: context and bonus id 2
	writeMask(w, mask.BlockSparse(32), 0, 2, gemBonusGroup.Guard, gemBonusGroup.First+2)
	w.AlignToByte()
	w.WriteUint8(9)
	w.WriteUint16(500)

	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))
	require.Equal(t, 0, r.Remaining())

	gem := d.Gems.At(0)
	require.Equal(t, int32(1), gem.ItemID)
	require.Equal(t, uint8(9), gem.Context)
	require.Equal(t, uint16(500), gem.BonusListIDs[2])
}

func TestItemData_ReadUpdate_Enchantment(t *testing.T) {
	l := layout.Default().Item
	ench := l.Group(layout.ItemEnchantments)

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), ench.Guard, ench.First+12)
	w.AlignToByte()
	w.AlignToByte()
	w.WriteBits(0b00011, enchantmentFields)
	w.AlignToByte()
	w.WriteInt32(3000)

	var d ItemData
	d.Enchantments[12] = ItemEnchantment{ID: 1, Duration: 5, Unk254b: 7}
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))
	require.Equal(t, 0, r.Remaining())

	require.Equal(t, ItemEnchantment{ID: 3000, Duration: 5, Unk254b: 7}, d.Enchantments[12])
}

func TestItemData_ReadUpdate_Modifiers(t *testing.T) {
	l := layout.Default().Item
	decl := l.Array(layout.ItemModifiers)

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.ItemModifiers))
	w.AlignToByte()
	w.AlignToByte()
	w.WriteBit(true)
	writeNewArray(w, 2, decl.Width())
	w.AlignToByte()
	w.WriteInt32(10)
	w.WriteUint8(1)
	w.WriteInt32(20)
	w.WriteUint8(2)

	var d ItemData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))
	require.Equal(t, 0, r.Remaining())
	require.Equal(t, []ItemMod{{Value: 10, Type: 1}, {Value: 20, Type: 2}}, d.Modifiers.Values.Values())
}

func TestItemData_ReadUpdate_GemCapacity(t *testing.T) {
	l := layout.Default().Item
	decl := l.Array(layout.ItemGems)

	w := bitstream.NewWriter()
	writeMask(w, l.Mask(), 0, l.Bit(layout.ItemGems))
	w.AlignToByte()
	w.WriteBit(true)
	w.WriteBits(uint32(decl.Capacity()+1), decl.Width()) //nolint: gosec

	var d ItemData
	err := d.ReadUpdate(bitstream.NewReader(w.Bytes()), nil)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestItemData_ReadUpdate_EmptyMask(t *testing.T) {
	l := layout.Default().Item
	w := bitstream.NewWriter()
	writeMask(w, l.Mask())

	var d ItemData
	r := bitstream.NewReader(w.Bytes())
	require.NoError(t, d.ReadUpdate(r, nil))
	require.Equal(t, 8, r.BitPos(), "guard bits then alignment")
	require.Equal(t, 2, l.Mask().GuardBits())
}

func TestItemData_Clone_Independent(t *testing.T) {
	d := decodeItemCreate(t, true, visibility.Owner)
	c := d.Clone()

	c.Bonus.BonusListIDs[0] = 0
	c.ArtifactPowers.At(0).PurchasedRank = 100

	require.Equal(t, uint32(10), d.Bonus.BonusListIDs[0])
	require.Equal(t, uint8(1), d.ArtifactPowers.At(0).PurchasedRank)
}
