package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

// DynamicObjectData is a spell area object.
type DynamicObjectData struct {
	binding

	Caster              GUID
	DynamicType         uint8
	SpellXSpellVisualID int32
	SpellID             int32
	Radius              float32
	CastTime            uint32
}

func (d *DynamicObjectData) Type() format.ObjectType {
	return format.TypeDynamicObject
}

func (d *DynamicObjectData) ReadCreate(r *bitstream.Reader, _ visibility.Flags, _ notify.Sink) error {
	d.Caster.Read(r)
	d.DynamicType = r.ReadUint8()
	d.SpellXSpellVisualID = r.ReadInt32()
	d.SpellID = r.ReadInt32()
	d.Radius = r.ReadFloat32()
	d.CastTime = r.ReadUint32()

	return r.Err()
}

func (d *DynamicObjectData) ReadUpdate(r *bitstream.Reader, _ notify.Sink) error {
	l := d.Schema().DynamicObject

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	r.AlignToByte()

	if l.Has(m, layout.DynamicObjectCaster) {
		d.Caster.Read(r)
	}
	if l.Has(m, layout.DynamicObjectType) {
		d.DynamicType = r.ReadUint8()
	}
	if l.Has(m, layout.DynamicObjectSpellXSpellVisualID) {
		d.SpellXSpellVisualID = r.ReadInt32()
	}
	if l.Has(m, layout.DynamicObjectSpellID) {
		d.SpellID = r.ReadInt32()
	}
	if l.Has(m, layout.DynamicObjectRadius) {
		d.Radius = r.ReadFloat32()
	}
	if l.Has(m, layout.DynamicObjectCastTime) {
		d.CastTime = r.ReadUint32()
	}

	return r.Err()
}

func (d *DynamicObjectData) Clone() *DynamicObjectData {
	c := *d
	return &c
}

func (d *DynamicObjectData) Snapshot() Entity { return d.Clone() }

func (d *DynamicObjectData) Restore(src Entity) { *d = *mustSameType[DynamicObjectData](src) }
