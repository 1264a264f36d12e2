package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
)

const corpseItems = 19

// CorpseData is a corpse.
type CorpseData struct {
	binding

	DynamicFlags    uint32
	Owner           GUID
	PartyGUID       GUID
	GuildGUID       GUID
	DisplayID       uint32
	Items           [corpseItems]uint32
	RaceID          uint8
	Sex             uint8
	Class           uint8
	Customizations  tracked.Array[ChrCustomizationChoice, *ChrCustomizationChoice]
	Flags           uint32
	FactionTemplate int32
}

func (d *CorpseData) Type() format.ObjectType {
	return format.TypeCorpse
}

func (d *CorpseData) ReadCreate(r *bitstream.Reader, flags visibility.Flags, _ notify.Sink) error {
	l := d.Schema().Corpse

	d.DynamicFlags = r.ReadUint32()
	d.Owner.Read(r)
	d.PartyGUID.Read(r)
	d.GuildGUID.Read(r)
	d.DisplayID = r.ReadUint32()
	for i := range d.Items {
		d.Items[i] = r.ReadUint32()
	}
	d.RaceID = r.ReadUint8()
	d.Sex = r.ReadUint8()
	d.Class = r.ReadUint8()
	if err := d.Customizations.ReadCreateCount(r, l.Array(layout.CorpseCustomizations)); err != nil {
		return err
	}
	d.Flags = r.ReadUint32()
	d.FactionTemplate = r.ReadInt32()

	return d.Customizations.ReadCreateElements(r, flags)
}

// ReadUpdate decodes a corpse delta. The mask is a single block behind a
// presence bit; an absent block is an empty delta.
func (d *CorpseData) ReadUpdate(r *bitstream.Reader, _ notify.Sink) error {
	l := d.Schema().Corpse

	m, err := readMask(r, l)
	if err != nil {
		return err
	}

	customizations := l.Has(m, layout.CorpseCustomizations)
	if customizations {
		if err := d.Customizations.ReadUpdateMask(r, l.Array(layout.CorpseCustomizations)); err != nil {
			return err
		}
	}
	r.AlignToByte()
	if customizations {
		if err := d.Customizations.ReadUpdateElements(r); err != nil {
			return err
		}
	}

	if l.Has(m, layout.CorpseDynamicFlags) {
		d.DynamicFlags = r.ReadUint32()
	}
	if l.Has(m, layout.CorpseOwner) {
		d.Owner.Read(r)
	}
	if l.Has(m, layout.CorpsePartyGUID) {
		d.PartyGUID.Read(r)
	}
	if l.Has(m, layout.CorpseGuildGUID) {
		d.GuildGUID.Read(r)
	}
	if l.Has(m, layout.CorpseDisplayID) {
		d.DisplayID = r.ReadUint32()
	}
	if l.Has(m, layout.CorpseRaceID) {
		d.RaceID = r.ReadUint8()
	}
	if l.Has(m, layout.CorpseSex) {
		d.Sex = r.ReadUint8()
	}
	if l.Has(m, layout.CorpseClass) {
		d.Class = r.ReadUint8()
	}
	if l.Has(m, layout.CorpseFlags) {
		d.Flags = r.ReadUint32()
	}
	if l.Has(m, layout.CorpseFactionTemplate) {
		d.FactionTemplate = r.ReadInt32()
	}
	if g := l.Group(layout.CorpseItems); g.Has(m) {
		for i := range d.Items {
			if g.Test(m, i) {
				d.Items[i] = r.ReadUint32()
			}
		}
	}

	return r.Err()
}

func (d *CorpseData) Clone() *CorpseData {
	c := *d
	c.Customizations = d.Customizations.Clone()

	return &c
}

func (d *CorpseData) Snapshot() Entity { return d.Clone() }

func (d *CorpseData) Restore(src Entity) { *d = *mustSameType[CorpseData](src) }
