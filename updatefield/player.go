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
	questLogEntries     = 25
	questObjectives     = 24
	playerVisibleItems  = 19
	playerAvgItemLevels = 6
	playerField3120     = 19
)

// ChrCustomizationChoice is one appearance choice.
type ChrCustomizationChoice struct {
	OptionID uint32
	ChoiceID uint32
}

func (c *ChrCustomizationChoice) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	c.OptionID = r.ReadUint32()
	c.ChoiceID = r.ReadUint32()

	return r.Err()
}

func (c *ChrCustomizationChoice) ReadUpdate(r *bitstream.Reader) error {
	return c.ReadCreate(r, visibility.None)
}

// QuestLog is one quest log slot.
type QuestLog struct {
	QuestID           int32
	StateFlags        uint32
	EndTime           uint32
	AcceptTime        uint32
	ObjectiveProgress [questObjectives]uint16
}

var questProgressGroup = mask.Group{Guard: 5, First: 6, Count: questObjectives}

// Reset clears the slot.
func (q *QuestLog) Reset() {
	*q = QuestLog{}
}

// ReadCreate decodes slot index in full. The quest id is notified only when
// it differs from the current one. Every non-zero objective is notified;
// its old value is the previous progress when the quest is unchanged and 0
// otherwise.
func (q *QuestLog) ReadCreate(r *bitstream.Reader, index int, sink notify.Sink) error {
	old := q.QuestID
	q.QuestID = r.ReadInt32()
	if !notifying(r) {
		return r.Err()
	}
	same := old == q.QuestID
	if !same {
		sink.QuestLogID(old, q.QuestID, index)
	}

	q.StateFlags = r.ReadUint32()
	q.EndTime = r.ReadUint32()
	q.AcceptTime = r.ReadUint32()
	for i := range q.ObjectiveProgress {
		var prev uint16
		if same {
			prev = q.ObjectiveProgress[i]
		}
		q.ObjectiveProgress[i] = r.ReadUint16()
		if !notifying(r) {
			return r.Err()
		}
		if q.ObjectiveProgress[i] != 0 {
			sink.QuestLogProgress(prev, q.ObjectiveProgress[i], index, i)
		}
	}

	return nil
}

// ReadUpdate decodes a delta of slot index. A quest id of 0 abandons the
// quest and resets the slot before the remaining fields are read.
func (q *QuestLog) ReadUpdate(r *bitstream.Reader, index int, sink notify.Sink) error {
	m, err := mask.ReadAligned(r, mask.BlockSparse(32))
	if err != nil {
		return err
	}

	if has(m, 0, 1) {
		old := q.QuestID
		q.QuestID = r.ReadInt32()
		if !notifying(r) {
			return r.Err()
		}
		if old != q.QuestID {
			sink.QuestLogID(old, q.QuestID, index)
		}
		if q.QuestID == 0 {
			q.Reset()
		}
	}
	if has(m, 0, 2) {
		q.StateFlags = r.ReadUint32()
	}
	if has(m, 0, 3) {
		q.EndTime = r.ReadUint32()
	}
	if has(m, 0, 4) {
		q.AcceptTime = r.ReadUint32()
	}
	if questProgressGroup.Has(m) {
		for i := range q.ObjectiveProgress {
			if !questProgressGroup.Test(m, i) {
				continue
			}
			old := q.ObjectiveProgress[i]
			q.ObjectiveProgress[i] = r.ReadUint16()
			if !notifying(r) {
				return r.Err()
			}
			sink.QuestLogProgress(old, q.ObjectiveProgress[i], index, i)
		}
	}

	return r.Err()
}

// ArenaCooldown is a spell cooldown shown to arena opponents.
type ArenaCooldown struct {
	SpellID        int32
	Charges        int32
	Unk254         int32
	Flags          uint32
	StartTime      uint32
	EndTime        uint32
	NextChargeTime uint32
	MaxCharges     uint8
}

func (a *ArenaCooldown) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	a.SpellID = r.ReadInt32()
	a.Charges = r.ReadInt32()
	a.Unk254 = r.ReadInt32()
	a.Flags = r.ReadUint32()
	a.StartTime = r.ReadUint32()
	a.EndTime = r.ReadUint32()
	a.NextChargeTime = r.ReadUint32()
	a.MaxCharges = r.ReadUint8()

	return r.Err()
}

func (a *ArenaCooldown) ReadUpdate(r *bitstream.Reader) error {
	m, err := mask.ReadAligned(r, mask.Bits(9))
	if err != nil {
		return err
	}

	if has(m, 0, 1) {
		a.SpellID = r.ReadInt32()
	}
	if has(m, 0, 2) {
		a.Charges = r.ReadInt32()
	}
	if has(m, 0, 3) {
		a.Unk254 = r.ReadInt32()
	}
	if has(m, 0, 4) {
		a.Flags = r.ReadUint32()
	}
	if has(m, 0, 5) {
		a.StartTime = r.ReadUint32()
	}
	if has(m, 0, 6) {
		a.EndTime = r.ReadUint32()
	}
	if has(m, 0, 7) {
		a.NextChargeTime = r.ReadUint32()
	}
	if has(m, 0, 8) {
		a.MaxCharges = r.ReadUint8()
	}

	return r.Err()
}

// PlayerData is the player block visible to other players.
type PlayerData struct {
	binding

	DuelArbiter                  GUID
	WowAccount                   GUID
	LootTargetGUID               GUID
	PlayerFlags                  uint32
	PlayerFlagsEx                uint32
	GuildRankID                  uint32
	GuildDeleteDate              uint32
	GuildLevel                   int32
	Customizations               tracked.Array[ChrCustomizationChoice, *ChrCustomizationChoice]
	PartyType                    uint8
	NativeSex                    uint8
	Inebriation                  uint8
	PvpTitle                     uint8
	ArenaFaction                 uint8
	PvpRank                      uint8
	Unk254                       int32
	DuelTeam                     uint32
	GuildTimeStamp               int32
	QuestLog                     [questLogEntries]QuestLog
	VisibleItems                 [playerVisibleItems]VisibleItem
	PlayerTitle                  int32
	FakeInebriation              int32
	VirtualPlayerRealm           uint32
	CurrentSpecID                uint32
	TaxiMountAnimKitID           int32
	AvgItemLevel                 [playerAvgItemLevels]float32
	CurrentBattlePetBreedQuality uint8
	HonorLevel                   int32
	LogoutTime                   uint64
	FieldB0                      [2]uint32
	Field3120                    [playerField3120]uint32
	ArenaCooldowns               tracked.Array[ArenaCooldown, *ArenaCooldown]
}

func (d *PlayerData) Type() format.ObjectType {
	return format.TypePlayer
}

// ReadCreate decodes a player snapshot. The quest log is present only for
// party members.
func (d *PlayerData) ReadCreate(r *bitstream.Reader, flags visibility.Flags, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Player

	d.DuelArbiter.Read(r)
	d.WowAccount.Read(r)
	d.LootTargetGUID.Read(r)
	d.PlayerFlags = r.ReadUint32()
	d.PlayerFlagsEx = r.ReadUint32()
	d.GuildRankID = r.ReadUint32()
	d.GuildDeleteDate = r.ReadUint32()
	d.GuildLevel = r.ReadInt32()
	if err := d.Customizations.ReadCreateCount(r, l.Array(layout.PlayerCustomizations)); err != nil {
		return err
	}
	d.PartyType = r.ReadUint8()
	d.NativeSex = r.ReadUint8()
	d.Inebriation = r.ReadUint8()
	d.PvpTitle = r.ReadUint8()
	d.ArenaFaction = r.ReadUint8()
	d.PvpRank = r.ReadUint8()
	d.Unk254 = r.ReadInt32()
	d.DuelTeam = r.ReadUint32()
	d.GuildTimeStamp = r.ReadInt32()
	if l.Visible(flags, layout.PlayerQuestLog) {
		for i := range d.QuestLog {
			if err := d.QuestLog[i].ReadCreate(r, i, sink); err != nil {
				return err
			}
		}
	}
	for i := range d.VisibleItems {
		if err := d.VisibleItems[i].ReadCreate(r); err != nil {
			return err
		}
	}
	d.PlayerTitle = r.ReadInt32()
	d.FakeInebriation = r.ReadInt32()
	d.VirtualPlayerRealm = r.ReadUint32()
	d.CurrentSpecID = r.ReadUint32()
	d.TaxiMountAnimKitID = r.ReadInt32()
	for i := range d.AvgItemLevel {
		d.AvgItemLevel[i] = r.ReadFloat32()
	}
	d.CurrentBattlePetBreedQuality = r.ReadUint8()
	d.HonorLevel = r.ReadInt32()
	d.LogoutTime = r.ReadUint64()
	if err := d.ArenaCooldowns.ReadCreateCount(r, l.Array(layout.PlayerArenaCooldowns)); err != nil {
		return err
	}
	for i := range d.FieldB0 {
		d.FieldB0[i] = r.ReadUint32()
	}
	for i := range d.Field3120 {
		d.Field3120[i] = r.ReadUint32()
	}
	if err := d.Customizations.ReadCreateElements(r, flags); err != nil {
		return err
	}

	return d.ArenaCooldowns.ReadCreateElements(r, flags)
}

// ReadUpdate decodes a player delta.
//
// A raw bit after the change mask tells how changed quest log slots are
// encoded: set means each changed slot is sent in full (create form),
// clear means each carries its own delta mask.
func (d *PlayerData) ReadUpdate(r *bitstream.Reader, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Player

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	fullQuestLog := r.ReadBit()

	customizations := l.Has(m, layout.PlayerCustomizations)
	cooldowns := l.Has(m, layout.PlayerArenaCooldowns)
	if customizations {
		if err := d.Customizations.ReadUpdateMask(r, l.Array(layout.PlayerCustomizations)); err != nil {
			return err
		}
	}
	if cooldowns {
		if err := d.ArenaCooldowns.ReadUpdateMask(r, l.Array(layout.PlayerArenaCooldowns)); err != nil {
			return err
		}
	}
	if l.Has(m, layout.PlayerUnsupported) {
		r.Fail(fmt.Errorf("%w: player bit %d", errs.ErrUnsupportedField, l.Bit(layout.PlayerUnsupported)))
		return r.Err()
	}
	r.AlignToByte()
	if customizations {
		if err := d.Customizations.ReadUpdateElements(r); err != nil {
			return err
		}
	}
	if cooldowns {
		if err := d.ArenaCooldowns.ReadUpdateElements(r); err != nil {
			return err
		}
	}

	if l.Has(m, layout.PlayerDuelArbiter) {
		d.DuelArbiter.Read(r)
	}
	if l.Has(m, layout.PlayerWowAccount) {
		d.WowAccount.Read(r)
	}
	if l.Has(m, layout.PlayerLootTargetGUID) {
		d.LootTargetGUID.Read(r)
	}
	if l.Has(m, layout.PlayerFlags) {
		d.PlayerFlags = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerFlagsEx) {
		d.PlayerFlagsEx = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerGuildRankID) {
		d.GuildRankID = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerGuildDeleteDate) {
		d.GuildDeleteDate = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerGuildLevel) {
		d.GuildLevel = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerPartyType) {
		d.PartyType = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerNativeSex) {
		d.NativeSex = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerInebriation) {
		d.Inebriation = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerPvpTitle) {
		d.PvpTitle = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerArenaFaction) {
		d.ArenaFaction = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerPvpRank) {
		d.PvpRank = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerUnk254) {
		d.Unk254 = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerDuelTeam) {
		d.DuelTeam = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerGuildTimeStamp) {
		d.GuildTimeStamp = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerTitle) {
		d.PlayerTitle = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerFakeInebriation) {
		d.FakeInebriation = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerVirtualRealm) {
		d.VirtualPlayerRealm = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerCurrentSpecID) {
		d.CurrentSpecID = r.ReadUint32()
	}
	if l.Has(m, layout.PlayerTaxiMountAnimKitID) {
		d.TaxiMountAnimKitID = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerCurrentBattlePetBreedQuality) {
		d.CurrentBattlePetBreedQuality = r.ReadUint8()
	}
	if l.Has(m, layout.PlayerHonorLevel) {
		d.HonorLevel = r.ReadInt32()
	}
	if l.Has(m, layout.PlayerLogoutTime) {
		d.LogoutTime = r.ReadUint64()
	}
	if l.Has(m, layout.PlayerFieldB0) {
		d.FieldB0[0] = r.ReadUint32()
	}

	if g := l.Group(layout.PlayerQuestLog); g.Has(m) {
		for i := range d.QuestLog {
			if !g.Test(m, i) {
				continue
			}
			if fullQuestLog {
				err = d.QuestLog[i].ReadCreate(r, i, sink)
			} else {
				err = d.QuestLog[i].ReadUpdate(r, i, sink)
			}
			if err != nil {
				return err
			}
		}
	}
	if g := l.Group(layout.PlayerVisibleItems); g.Has(m) {
		for i := range d.VisibleItems {
			if !g.Test(m, i) {
				continue
			}
			if err := d.VisibleItems[i].ReadUpdate(r); err != nil {
				return err
			}
		}
	}
	if g := l.Group(layout.PlayerAvgItemLevel); g.Has(m) {
		for i := range d.AvgItemLevel {
			if g.Test(m, i) {
				d.AvgItemLevel[i] = r.ReadFloat32()
			}
		}
	}
	if g := l.Group(layout.PlayerField3120); g.Has(m) {
		for i := range d.Field3120 {
			if g.Test(m, i) {
				d.Field3120[i] = r.ReadUint32()
			}
		}
	}

	return r.Err()
}

func (d *PlayerData) Clone() *PlayerData {
	c := *d
	c.Customizations = d.Customizations.Clone()
	c.ArenaCooldowns = d.ArenaCooldowns.Clone()

	return &c
}

func (d *PlayerData) Snapshot() Entity { return d.Clone() }

func (d *PlayerData) Restore(src Entity) { *d = *mustSameType[PlayerData](src) }
