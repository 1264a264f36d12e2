package updatefield

import (
	"fmt"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
)

const (
	itemSpellCharges  = 5
	itemEnchantments  = 13
	gemBonusListIDs   = 16
	enchantmentFields = 5
)

// ItemEnchantment is one enchantment slot of an item.
type ItemEnchantment struct {
	ID       int32
	Duration uint32
	Charges  int16
	Unk254   uint8
	Unk254b  uint8
}

func (e *ItemEnchantment) ReadCreate(r *bitstream.Reader) error {
	e.ID = r.ReadInt32()
	e.Duration = r.ReadUint32()
	e.Charges = r.ReadInt16()
	e.Unk254 = r.ReadUint8()
	e.Unk254b = r.ReadUint8()

	return r.Err()
}

// ReadUpdate reads a 5-bit mask: a guard and four field bits. Unk254b has
// no bit of its own and changes only through ReadCreate.
func (e *ItemEnchantment) ReadUpdate(r *bitstream.Reader) error {
	m := mask.FromBlocks(enchantmentFields, r.ReadBits(enchantmentFields))
	r.AlignToByte()

	if has(m, 0, 1) {
		e.ID = r.ReadInt32()
	}
	if has(m, 0, 2) {
		e.Duration = r.ReadUint32()
	}
	if has(m, 0, 3) {
		e.Charges = r.ReadInt16()
	}
	if has(m, 0, 4) {
		e.Unk254 = r.ReadUint8()
	}

	return r.Err()
}

// ItemMod is an unmasked modifier leaf: updates resend both fields.
type ItemMod struct {
	Value int32
	Type  uint8
}

func (m *ItemMod) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	m.Value = r.ReadInt32()
	m.Type = r.ReadUint8()

	return r.Err()
}

func (m *ItemMod) ReadUpdate(r *bitstream.Reader) error {
	return m.ReadCreate(r, visibility.None)
}

// ItemModList is the item's modifier list. Its count travels in the
// declaration's size width on both paths.
type ItemModList struct {
	Values tracked.Array[ItemMod, *ItemMod]
}

func (l *ItemModList) ReadCreate(r *bitstream.Reader, flags visibility.Flags, decl tracked.Decl) error {
	n := r.ReadBits(decl.Width())
	r.AlignToByte()
	if r.Err() != nil {
		return r.Err()
	}
	if err := l.Values.SetCount(r, int(n), decl); err != nil {
		return err
	}

	return l.Values.ReadCreateElements(r, flags)
}

// ReadUpdate reads the list's one-bit mask and, when set, runs both array
// phases around an alignment.
func (l *ItemModList) ReadUpdate(r *bitstream.Reader, decl tracked.Decl) error {
	changed := r.ReadBit()
	if changed {
		if err := l.Values.ReadUpdateMask(r, decl); err != nil {
			return err
		}
	}
	r.AlignToByte()
	if changed {
		return l.Values.ReadUpdateElements(r)
	}

	return r.Err()
}

func (l *ItemModList) clone() ItemModList {
	return ItemModList{Values: l.Values.Clone()}
}

// ArtifactPower is an unmasked artifact power entry.
type ArtifactPower struct {
	ArtifactPowerID      int16
	PurchasedRank        uint8
	CurrentRankWithBonus uint8
}

func (p *ArtifactPower) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	p.ArtifactPowerID = r.ReadInt16()
	p.PurchasedRank = r.ReadUint8()
	p.CurrentRankWithBonus = r.ReadUint8()

	return r.Err()
}

func (p *ArtifactPower) ReadUpdate(r *bitstream.Reader) error {
	return p.ReadCreate(r, visibility.None)
}

// SocketedGem is a gem socketed into an item.
type SocketedGem struct {
	ItemID       int32
	BonusListIDs [gemBonusListIDs]uint16
	Context      uint8
}

var gemBonusGroup = mask.Group{Guard: 3, First: 4, Count: gemBonusListIDs}

func (g *SocketedGem) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	g.ItemID = r.ReadInt32()
	for i := range g.BonusListIDs {
		g.BonusListIDs[i] = r.ReadUint16()
	}
	g.Context = r.ReadUint8()

	return r.Err()
}

func (g *SocketedGem) ReadUpdate(r *bitstream.Reader) error {
	m, err := mask.ReadAligned(r, mask.BlockSparse(32))
	if err != nil {
		return err
	}

	if has(m, 0, 1) {
		g.ItemID = r.ReadInt32()
	}
	if has(m, 0, 2) {
		g.Context = r.ReadUint8()
	}
	if gemBonusGroup.Has(m) {
		for i := range g.BonusListIDs {
			if gemBonusGroup.Test(m, i) {
				g.BonusListIDs[i] = r.ReadUint16()
			}
		}
	}

	return r.Err()
}

// ItemBonusKey is the bonus list tail of an item's create block.
type ItemBonusKey struct {
	ItemID       uint32
	BonusListIDs []uint32
}

// ItemData is an item.
type ItemData struct {
	binding

	Owner              GUID
	ContainedIn        GUID
	Creator            GUID
	GiftCreator        GUID
	StackCount         uint32
	Expiration         uint32
	SpellCharges       [itemSpellCharges]int32
	DynamicFlags       uint32
	Enchantments       [itemEnchantments]ItemEnchantment
	PropertySeed       int32
	RandomPropertiesID int32
	Durability         uint32
	MaxDurability      uint32
	CreatePlayedTime   uint32
	Context            uint8
	CreateTime         int64
	ArtifactXP         uint64
	AppearanceModID    uint8
	Modifiers          ItemModList
	DynamicFlags2      uint32
	DebugItemLevel     uint16
	ArtifactPowers     tracked.Array[ArtifactPower, *ArtifactPower]
	Gems               tracked.Array[SocketedGem, *SocketedGem]
	Bonus              ItemBonusKey
}

func (d *ItemData) Type() format.ObjectType {
	return format.TypeItem
}

// ReadCreate decodes an item snapshot. The owner-only sections are present
// only when flags satisfy their rule. The artifact power and gem counts sit
// in the middle of the scalars and their elements follow the last scalar.
func (d *ItemData) ReadCreate(r *bitstream.Reader, flags visibility.Flags, _ notify.Sink) error {
	l := d.Schema().Item

	d.Owner.Read(r)
	d.ContainedIn.Read(r)
	d.Creator.Read(r)
	d.GiftCreator.Read(r)
	if l.Visible(flags, layout.ItemStackCount) {
		d.StackCount = r.ReadUint32()
	}
	if l.Visible(flags, layout.ItemExpiration) {
		d.Expiration = r.ReadUint32()
	}
	if l.Visible(flags, layout.ItemSpellCharges) {
		for i := range d.SpellCharges {
			d.SpellCharges[i] = r.ReadInt32()
		}
	}
	d.DynamicFlags = r.ReadUint32()
	for i := range d.Enchantments {
		if err := d.Enchantments[i].ReadCreate(r); err != nil {
			return err
		}
	}
	d.PropertySeed = r.ReadInt32()
	d.RandomPropertiesID = r.ReadInt32()
	if l.Visible(flags, layout.ItemDurability) {
		d.Durability = r.ReadUint32()
	}
	if l.Visible(flags, layout.ItemMaxDurability) {
		d.MaxDurability = r.ReadUint32()
	}
	d.CreatePlayedTime = r.ReadUint32()
	d.Context = r.ReadUint8()
	d.CreateTime = r.ReadInt64()
	if l.Visible(flags, layout.ItemArtifactXP) {
		d.ArtifactXP = r.ReadUint64()
	}
	if l.Visible(flags, layout.ItemAppearanceModID) {
		d.AppearanceModID = r.ReadUint8()
	}
	if err := d.ArtifactPowers.ReadCreateCount(r, l.Array(layout.ItemArtifactPowers)); err != nil {
		return err
	}
	if err := d.Gems.ReadCreateCount(r, l.Array(layout.ItemGems)); err != nil {
		return err
	}
	if l.Visible(flags, layout.ItemDynamicFlags2) {
		d.DynamicFlags2 = r.ReadUint32()
	}
	if l.Visible(flags, layout.ItemDebugItemLevel) {
		d.DebugItemLevel = r.ReadUint16()
	}
	if err := d.ArtifactPowers.ReadCreateElements(r, flags); err != nil {
		return err
	}
	if err := d.Gems.ReadCreateElements(r, flags); err != nil {
		return err
	}
	if err := d.readBonusKey(r, l.Array(layout.ItemBonusListIDs)); err != nil {
		return err
	}

	return d.Modifiers.ReadCreate(r, flags, l.Array(layout.ItemModifiers))
}

func (d *ItemData) readBonusKey(r *bitstream.Reader, decl tracked.Decl) error {
	d.Bonus.ItemID = r.ReadUint32()
	n := r.ReadUint32()
	if r.Err() != nil {
		return r.Err()
	}
	if uint64(n) > uint64(decl.Capacity()) {
		r.Fail(fmt.Errorf("%w: %d bonus list ids, capacity %d", errs.ErrCapacityExceeded, n, decl.Capacity()))
		return r.Err()
	}

	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = r.ReadUint32()
	}
	if r.Err() != nil {
		return r.Err()
	}
	d.Bonus.BonusListIDs = ids

	return nil
}

// ReadUpdate decodes an item delta. Both tracked arrays run phase 1 before
// the alignment and phase 2 before any scalar payload.
func (d *ItemData) ReadUpdate(r *bitstream.Reader, _ notify.Sink) error {
	l := d.Schema().Item

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	r.AlignToByte()

	powers := l.Has(m, layout.ItemArtifactPowers)
	gems := l.Has(m, layout.ItemGems)
	if powers {
		if err := d.ArtifactPowers.ReadUpdateMask(r, l.Array(layout.ItemArtifactPowers)); err != nil {
			return err
		}
	}
	if gems {
		if err := d.Gems.ReadUpdateMask(r, l.Array(layout.ItemGems)); err != nil {
			return err
		}
	}
	r.AlignToByte()
	if powers {
		if err := d.ArtifactPowers.ReadUpdateElements(r); err != nil {
			return err
		}
	}
	if gems {
		if err := d.Gems.ReadUpdateElements(r); err != nil {
			return err
		}
	}

	if l.Has(m, layout.ItemOwner) {
		d.Owner.Read(r)
	}
	if l.Has(m, layout.ItemContainedIn) {
		d.ContainedIn.Read(r)
	}
	if l.Has(m, layout.ItemCreator) {
		d.Creator.Read(r)
	}
	if l.Has(m, layout.ItemGiftCreator) {
		d.GiftCreator.Read(r)
	}
	if l.Has(m, layout.ItemStackCount) {
		d.StackCount = r.ReadUint32()
	}
	if l.Has(m, layout.ItemExpiration) {
		d.Expiration = r.ReadUint32()
	}
	if l.Has(m, layout.ItemDynamicFlags) {
		d.DynamicFlags = r.ReadUint32()
	}
	if l.Has(m, layout.ItemPropertySeed) {
		d.PropertySeed = r.ReadInt32()
	}
	if l.Has(m, layout.ItemRandomPropertiesID) {
		d.RandomPropertiesID = r.ReadInt32()
	}
	if l.Has(m, layout.ItemDurability) {
		d.Durability = r.ReadUint32()
	}
	if l.Has(m, layout.ItemMaxDurability) {
		d.MaxDurability = r.ReadUint32()
	}
	if l.Has(m, layout.ItemCreatePlayedTime) {
		d.CreatePlayedTime = r.ReadUint32()
	}
	if l.Has(m, layout.ItemContext) {
		d.Context = r.ReadUint8()
	}
	if l.Has(m, layout.ItemCreateTime) {
		d.CreateTime = r.ReadInt64()
	}
	if l.Has(m, layout.ItemArtifactXP) {
		d.ArtifactXP = r.ReadUint64()
	}
	if l.Has(m, layout.ItemAppearanceModID) {
		d.AppearanceModID = r.ReadUint8()
	}
	if l.Has(m, layout.ItemModifiers) {
		if err := d.Modifiers.ReadUpdate(r, l.Array(layout.ItemModifiers)); err != nil {
			return err
		}
	}
	if l.Has(m, layout.ItemDynamicFlags2) {
		d.DynamicFlags2 = r.ReadUint32()
	}
	if l.Has(m, layout.ItemDebugItemLevel) {
		d.DebugItemLevel = r.ReadUint16()
	}

	if g := l.Group(layout.ItemSpellCharges); g.Has(m) {
		for i := range d.SpellCharges {
			if g.Test(m, i) {
				d.SpellCharges[i] = r.ReadInt32()
			}
		}
	}
	if g := l.Group(layout.ItemEnchantments); g.Has(m) {
		for i := range d.Enchantments {
			if !g.Test(m, i) {
				continue
			}
			if err := d.Enchantments[i].ReadUpdate(r); err != nil {
				return err
			}
		}
	}

	return r.Err()
}

func (d *ItemData) Clone() *ItemData {
	c := *d
	c.Modifiers = d.Modifiers.clone()
	c.ArtifactPowers = d.ArtifactPowers.Clone()
	c.Gems = d.Gems.Clone()
	if d.Bonus.BonusListIDs != nil {
		c.Bonus.BonusListIDs = append([]uint32(nil), d.Bonus.BonusListIDs...)
	}

	return &c
}

func (d *ItemData) Snapshot() Entity { return d.Clone() }

func (d *ItemData) Restore(src Entity) { *d = *mustSameType[ItemData](src) }
