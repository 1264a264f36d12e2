package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
)

// Quaternion is a rotation.
type Quaternion struct {
	X, Y, Z, W float32
}

func (q *Quaternion) Read(r *bitstream.Reader) {
	q.X = r.ReadFloat32()
	q.Y = r.ReadFloat32()
	q.Z = r.ReadFloat32()
	q.W = r.ReadFloat32()
}

// GameObjectData is a world object such as a door, chest or transport.
type GameObjectData struct {
	binding

	DisplayID                   int32
	SpellVisualID               uint32
	StateSpellVisualID          uint32
	SpawnTrackingStateAnimID    uint32
	SpawnTrackingStateAnimKitID uint32
	StateWorldEffectIDs         tracked.Array[tracked.Uint32, *tracked.Uint32]
	CreatedBy                   GUID
	GuildGUID                   GUID
	Flags                       uint32
	ParentRotation              Quaternion
	FactionTemplate             int32
	Level                       int32
	State                       int8
	TypeID                      int8
	PercentHealth               uint8
	ArtKit                      uint32
	EnableDoodadSets            tracked.Array[tracked.Int32, *tracked.Int32]
	CustomParam                 uint32
	WorldEffects                tracked.Array[tracked.Int32, *tracked.Int32]
}

func (d *GameObjectData) Type() format.ObjectType {
	return format.TypeGameObject
}

func (d *GameObjectData) ReadCreate(r *bitstream.Reader, flags visibility.Flags, _ notify.Sink) error {
	l := d.Schema().GameObject

	d.DisplayID = r.ReadInt32()
	d.SpellVisualID = r.ReadUint32()
	d.StateSpellVisualID = r.ReadUint32()
	d.SpawnTrackingStateAnimID = r.ReadUint32()
	d.SpawnTrackingStateAnimKitID = r.ReadUint32()
	if err := d.StateWorldEffectIDs.ReadCreate(r, flags, l.Array(layout.GameObjectStateWorldEffectIDs)); err != nil {
		return err
	}
	d.CreatedBy.Read(r)
	d.GuildGUID.Read(r)
	d.Flags = r.ReadUint32()
	d.ParentRotation.Read(r)
	d.FactionTemplate = r.ReadInt32()
	d.Level = r.ReadInt32()
	d.State = r.ReadInt8()
	d.TypeID = r.ReadInt8()
	d.PercentHealth = r.ReadUint8()
	d.ArtKit = r.ReadUint32()
	if err := d.EnableDoodadSets.ReadCreateCount(r, l.Array(layout.GameObjectEnableDoodadSets)); err != nil {
		return err
	}
	d.CustomParam = r.ReadUint32()
	if err := d.WorldEffects.ReadCreateCount(r, l.Array(layout.GameObjectWorldEffects)); err != nil {
		return err
	}
	if err := d.EnableDoodadSets.ReadCreateElements(r, flags); err != nil {
		return err
	}

	return d.WorldEffects.ReadCreateElements(r, flags)
}

// ReadUpdate decodes a game object delta. As for units, the state world
// effect list is sent inline after the mask.
func (d *GameObjectData) ReadUpdate(r *bitstream.Reader, _ notify.Sink) error {
	l := d.Schema().GameObject

	m, err := readMask(r, l)
	if err != nil {
		return err
	}

	if l.Has(m, layout.GameObjectStateWorldEffectIDs) {
		// The count precedes the mask alignment and is trusted as the exact
		// element count. The wire reads the values with the size it sent
		// rather than the stored length, so a count above Max fails here
		// instead of being truncated.
		n := r.ReadBits(32)
		if r.Err() != nil {
			return r.Err()
		}
		if err := d.StateWorldEffectIDs.SetCount(r, int(n), l.Array(layout.GameObjectStateWorldEffectIDs)); err != nil {
			return err
		}
		if n > 0 {
			r.AlignToByte()
			if err := d.StateWorldEffectIDs.ReadCreateElements(r, visibility.None); err != nil {
				return err
			}
		}
	}

	doodads := l.Has(m, layout.GameObjectEnableDoodadSets)
	effects := l.Has(m, layout.GameObjectWorldEffects)
	if doodads {
		if err := d.EnableDoodadSets.ReadUpdateMask(r, l.Array(layout.GameObjectEnableDoodadSets)); err != nil {
			return err
		}
	}
	if effects {
		if err := d.WorldEffects.ReadUpdateMask(r, l.Array(layout.GameObjectWorldEffects)); err != nil {
			return err
		}
	}
	r.AlignToByte()
	if doodads {
		if err := d.EnableDoodadSets.ReadUpdateElements(r); err != nil {
			return err
		}
	}
	if effects {
		if err := d.WorldEffects.ReadUpdateElements(r); err != nil {
			return err
		}
	}

	if l.Has(m, layout.GameObjectDisplayID) {
		d.DisplayID = r.ReadInt32()
	}
	if l.Has(m, layout.GameObjectSpellVisualID) {
		d.SpellVisualID = r.ReadUint32()
	}
	if l.Has(m, layout.GameObjectStateSpellVisualID) {
		d.StateSpellVisualID = r.ReadUint32()
	}
	if l.Has(m, layout.GameObjectSpawnTrackingStateAnimID) {
		d.SpawnTrackingStateAnimID = r.ReadUint32()
	}
	if l.Has(m, layout.GameObjectSpawnTrackingStateAnimKitID) {
		d.SpawnTrackingStateAnimKitID = r.ReadUint32()
	}
	if l.Has(m, layout.GameObjectCreatedBy) {
		d.CreatedBy.Read(r)
	}
	if l.Has(m, layout.GameObjectGuildGUID) {
		d.GuildGUID.Read(r)
	}
	if l.Has(m, layout.GameObjectFlags) {
		d.Flags = r.ReadUint32()
	}
	if l.Has(m, layout.GameObjectParentRotation) {
		d.ParentRotation.Read(r)
	}
	if l.Has(m, layout.GameObjectFactionTemplate) {
		d.FactionTemplate = r.ReadInt32()
	}
	if l.Has(m, layout.GameObjectLevel) {
		d.Level = r.ReadInt32()
	}
	if l.Has(m, layout.GameObjectState) {
		d.State = r.ReadInt8()
	}
	if l.Has(m, layout.GameObjectTypeID) {
		d.TypeID = r.ReadInt8()
	}
	if l.Has(m, layout.GameObjectPercentHealth) {
		d.PercentHealth = r.ReadUint8()
	}
	if l.Has(m, layout.GameObjectArtKit) {
		d.ArtKit = r.ReadUint32()
	}
	if l.Has(m, layout.GameObjectCustomParam) {
		d.CustomParam = r.ReadUint32()
	}

	return r.Err()
}

func (d *GameObjectData) Clone() *GameObjectData {
	c := *d
	c.StateWorldEffectIDs = d.StateWorldEffectIDs.Clone()
	c.EnableDoodadSets = d.EnableDoodadSets.Clone()
	c.WorldEffects = d.WorldEffects.Clone()

	return &c
}

func (d *GameObjectData) Snapshot() Entity { return d.Clone() }

func (d *GameObjectData) Restore(src Entity) { *d = *mustSameType[GameObjectData](src) }
