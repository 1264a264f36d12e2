package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

// SkillSlots is the size of the skill table.
const SkillSlots = 256

// SkillInfo is the active player's skill table: seven parallel columns of
// SkillSlots entries.
type SkillInfo struct {
	binding

	SkillLineID       [SkillSlots]uint16
	SkillStep         [SkillSlots]uint16
	SkillRank         [SkillSlots]uint16
	SkillStartingRank [SkillSlots]uint16
	SkillMaxRank      [SkillSlots]uint16
	SkillTempBonus    [SkillSlots]int16
	SkillPermBonus    [SkillSlots]uint16
}

func (d *SkillInfo) Type() format.ObjectType {
	return format.TypeSkill
}

// ReadCreate reads the table row by row and notifies every non-zero skill
// line with an old value of 0.
func (d *SkillInfo) ReadCreate(r *bitstream.Reader, _ visibility.Flags, sink notify.Sink) error {
	sink = notify.OrNop(sink)

	for i := range SkillSlots {
		d.SkillLineID[i] = r.ReadUint16()
		d.SkillStep[i] = r.ReadUint16()
		d.SkillRank[i] = r.ReadUint16()
		d.SkillStartingRank[i] = r.ReadUint16()
		d.SkillMaxRank[i] = r.ReadUint16()
		d.SkillTempBonus[i] = r.ReadInt16()
		d.SkillPermBonus[i] = r.ReadUint16()
		if !notifying(r) {
			return r.Err()
		}
		if d.SkillLineID[i] != 0 {
			sink.SkillLineID(0, d.SkillLineID[i], i)
		}
	}

	return nil
}

// ReadUpdate decodes a 1,793-bit mask: one guard, then one column group
// per field. Changed cells are read row by row.
func (d *SkillInfo) ReadUpdate(r *bitstream.Reader, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Skill

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	r.AlignToByte()

	line := l.Group(layout.SkillLineID)
	if !line.Has(m) {
		return r.Err()
	}
	step := l.Group(layout.SkillStep)
	rank := l.Group(layout.SkillRank)
	starting := l.Group(layout.SkillStartingRank)
	maxRank := l.Group(layout.SkillMaxRank)
	temp := l.Group(layout.SkillTempBonus)
	perm := l.Group(layout.SkillPermBonus)

	for i := range SkillSlots {
		if line.Test(m, i) {
			old := d.SkillLineID[i]
			d.SkillLineID[i] = r.ReadUint16()
			if !notifying(r) {
				return r.Err()
			}
			sink.SkillLineID(old, d.SkillLineID[i], i)
		}
		if step.Test(m, i) {
			d.SkillStep[i] = r.ReadUint16()
		}
		if rank.Test(m, i) {
			d.SkillRank[i] = r.ReadUint16()
		}
		if starting.Test(m, i) {
			d.SkillStartingRank[i] = r.ReadUint16()
		}
		if maxRank.Test(m, i) {
			d.SkillMaxRank[i] = r.ReadUint16()
		}
		if temp.Test(m, i) {
			d.SkillTempBonus[i] = r.ReadInt16()
		}
		if perm.Test(m, i) {
			d.SkillPermBonus[i] = r.ReadUint16()
		}
	}

	return r.Err()
}

func (d *SkillInfo) Clone() *SkillInfo {
	c := *d
	return &c
}

func (d *SkillInfo) Snapshot() Entity { return d.Clone() }

func (d *SkillInfo) Restore(src Entity) { *d = *mustSameType[SkillInfo](src) }
