package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
)

const (
	unitNpcFlags     = 2
	unitPowers       = 10
	unitVirtualItems = 3
	unitAttackTimes  = 2
	unitStats        = 5
	unitResistances  = 7
)

// UnitChannel is the spell a unit is channeling.
type UnitChannel struct {
	SpellID             int32
	SpellXSpellVisualID int32
}

func (c *UnitChannel) Read(r *bitstream.Reader) {
	c.SpellID = r.ReadInt32()
	c.SpellXSpellVisualID = r.ReadInt32()
}

// VisibleItem is an equipped item as seen by other players.
type VisibleItem struct {
	ItemID              int32
	ItemAppearanceModID uint16
	ItemVisual          uint16
}

func (v *VisibleItem) ReadCreate(r *bitstream.Reader) error {
	v.ItemID = r.ReadInt32()
	v.ItemAppearanceModID = r.ReadUint16()
	v.ItemVisual = r.ReadUint16()

	return r.Err()
}

func (v *VisibleItem) ReadUpdate(r *bitstream.Reader) error {
	m, err := mask.ReadAligned(r, mask.Bits(4))
	if err != nil {
		return err
	}

	if has(m, 0, 1) {
		v.ItemID = r.ReadInt32()
	}
	if has(m, 0, 2) {
		v.ItemAppearanceModID = r.ReadUint16()
	}
	if has(m, 0, 3) {
		v.ItemVisual = r.ReadUint16()
	}

	return r.Err()
}

// PassiveSpellHistory is an unmasked passive spell entry.
type PassiveSpellHistory struct {
	SpellID     int32
	AuraSpellID int32
}

func (p *PassiveSpellHistory) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	p.SpellID = r.ReadInt32()
	p.AuraSpellID = r.ReadInt32()

	return r.Err()
}

func (p *PassiveSpellHistory) ReadUpdate(r *bitstream.Reader) error {
	return p.ReadCreate(r, visibility.None)
}

// UnitData is the unit block of creatures and players.
type UnitData struct {
	binding

	Health                          int64
	MaxHealth                       int64
	DisplayID                       int32
	NpcFlags                        [unitNpcFlags]uint32
	StateSpellVisualID              uint32
	StateAnimID                     uint32
	StateAnimKitID                  uint32
	StateWorldEffectIDs             tracked.Array[tracked.Uint32, *tracked.Uint32]
	Charm                           GUID
	Summon                          GUID
	Critter                         GUID
	CharmedBy                       GUID
	SummonedBy                      GUID
	CreatedBy                       GUID
	DemonCreator                    GUID
	LookAtControllerTarget          GUID
	Target                          GUID
	BattlePetCompanionGUID          GUID
	BattlePetDBID                   uint64
	ChannelData                     UnitChannel
	SummonedByHomeRealm             uint32
	Race                            uint8
	ClassID                         uint8
	PlayerClassID                   uint8
	Sex                             uint8
	DisplayPower                    uint8
	OverrideDisplayPowerID          uint32
	PowerUnk                        [unitPowers]float32
	PowerUnk2                       [unitPowers]float32
	Power                           [unitPowers]int32
	MaxPower                        [unitPowers]int32
	PowerRegenFlatModifier          [unitPowers]float32
	Level                           int32
	EffectiveLevel                  int32
	ContentTuningID                 int32
	ScalingLevelMin                 int32
	ScalingLevelMax                 int32
	ScalingLevelDelta               int32
	ScalingFactionGroup             int32
	ScalingHealthItemLevelCurveID   int32
	ScalingDamageItemLevelCurveID   int32
	FactionTemplate                 int32
	VirtualItems                    [unitVirtualItems]VisibleItem
	Flags                           uint32
	Flags2                          uint32
	Flags3                          uint32
	AuraState                       uint32
	AttackRoundBaseTime             [unitAttackTimes]uint32
	RangedAttackRoundBaseTime       uint32
	BoundingRadius                  float32
	CombatReach                     float32
	DisplayScale                    float32
	NativeDisplayID                 int32
	NativeXDisplayScale             float32
	MountDisplayID                  int32
	MinDamage                       float32
	MaxDamage                       float32
	MinOffHandDamage                float32
	MaxOffHandDamage                float32
	StandState                      uint8
	PetTalentPoints                 uint8
	VisFlags                        uint8
	AnimTier                        uint8
	PetNumber                       uint32
	PetNameTimestamp                uint32
	PetExperience                   uint32
	PetNextLevelExperience          uint32
	ModCastingSpeed                 float32
	ModSpellHaste                   float32
	ModHaste                        float32
	ModRangedHaste                  float32
	ModHasteRegen                   float32
	ModTimeRate                     float32
	CreatedBySpell                  int32
	EmoteState                      int32
	TrainingPointsUsed              int16
	TrainingPointsTotal             int16
	Stats                           [unitStats]int32
	StatPosBuff                     [unitStats]int32
	StatNegBuff                     [unitStats]int32
	Resistances                     [unitResistances]int32
	PowerCostModifier               [unitResistances]int32
	PowerCostMultiplier             [unitResistances]float32
	ResistanceBuffModsPositive      [unitResistances]int32
	ResistanceBuffModsNegative      [unitResistances]int32
	BaseMana                        int32
	BaseHealth                      int32
	SheatheState                    uint8
	PvpFlags                        uint8
	PetFlags                        uint8
	ShapeshiftForm                  uint8
	AttackPower                     int32
	AttackPowerModPos               int32
	AttackPowerModNeg               int32
	AttackPowerMultiplier           float32
	RangedAttackPower               int32
	RangedAttackPowerModPos         int32
	RangedAttackPowerModNeg         int32
	RangedAttackPowerMultiplier     float32
	SetAttackSpeedAura              int32
	Lifesteal                       float32
	MinRangedDamage                 float32
	MaxRangedDamage                 float32
	MaxHealthModifier               float32
	HoverHeight                     float32
	MinItemLevelCutoff              int32
	MinItemLevel                    int32
	MaxItemLevel                    int32
	WildBattlePetLevel              int32
	BattlePetCompanionNameTimestamp uint32
	InteractSpellID                 int32
	ScaleDuration                   int32
	LooksLikeMountID                int32
	LooksLikeCreatureID             int32
	LookAtControllerID              int32
	Unk106                          uint32
	GuildGUID                       GUID
	SkinningOwnerGUID               GUID
	Unk109                          uint32
	Unk110                          uint32
	PassiveSpells                   tracked.Array[PassiveSpellHistory, *PassiveSpellHistory]
	WorldEffects                    tracked.Array[tracked.Int32, *tracked.Int32]
	ChannelObjects                  tracked.Array[GUID, *GUID]
}

func (d *UnitData) Type() format.ObjectType {
	return format.TypeUnit
}

// ReadCreate decodes a unit snapshot. Health, level, flags, the mount
// display and every power slot are notified with an old value of 0.
func (d *UnitData) ReadCreate(r *bitstream.Reader, flags visibility.Flags, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Unit

	d.Health = r.ReadInt64()
	if notifying(r) {
		sink.UnitHealth(0, d.Health)
	}
	d.MaxHealth = r.ReadInt64()
	d.DisplayID = r.ReadInt32()
	for i := range d.NpcFlags {
		d.NpcFlags[i] = r.ReadUint32()
	}
	d.StateSpellVisualID = r.ReadUint32()
	d.StateAnimID = r.ReadUint32()
	d.StateAnimKitID = r.ReadUint32()
	if err := d.StateWorldEffectIDs.ReadCreate(r, flags, l.Array(layout.UnitStateWorldEffectIDs)); err != nil {
		return err
	}
	d.Charm.Read(r)
	d.Summon.Read(r)
	if l.Visible(flags, layout.UnitCritter) {
		d.Critter.Read(r)
	}
	d.CharmedBy.Read(r)
	d.SummonedBy.Read(r)
	d.CreatedBy.Read(r)
	d.DemonCreator.Read(r)
	d.LookAtControllerTarget.Read(r)
	d.Target.Read(r)
	d.BattlePetCompanionGUID.Read(r)
	d.BattlePetDBID = r.ReadUint64()
	d.ChannelData.Read(r)
	d.SummonedByHomeRealm = r.ReadUint32()
	d.Race = r.ReadUint8()
	d.ClassID = r.ReadUint8()
	d.PlayerClassID = r.ReadUint8()
	d.Sex = r.ReadUint8()
	d.DisplayPower = r.ReadUint8()
	d.OverrideDisplayPowerID = r.ReadUint32()
	if l.Visible(flags, layout.UnitPowerUnk) {
		for i := range unitPowers {
			d.PowerUnk[i] = r.ReadFloat32()
			d.PowerUnk2[i] = r.ReadFloat32()
		}
	}
	for i := range unitPowers {
		d.Power[i] = r.ReadInt32()
		d.MaxPower[i] = r.ReadInt32()
		d.PowerRegenFlatModifier[i] = r.ReadFloat32()
		if !notifying(r) {
			return r.Err()
		}
		sink.UnitPower(0, d.Power[i], i)
	}
	d.Level = r.ReadInt32()
	if notifying(r) {
		sink.UnitLevel(0, d.Level)
	}
	d.EffectiveLevel = r.ReadInt32()
	d.ContentTuningID = r.ReadInt32()
	d.ScalingLevelMin = r.ReadInt32()
	d.ScalingLevelMax = r.ReadInt32()
	d.ScalingLevelDelta = r.ReadInt32()
	d.ScalingFactionGroup = r.ReadInt32()
	d.ScalingHealthItemLevelCurveID = r.ReadInt32()
	d.ScalingDamageItemLevelCurveID = r.ReadInt32()
	d.FactionTemplate = r.ReadInt32()
	for i := range d.VirtualItems {
		if err := d.VirtualItems[i].ReadCreate(r); err != nil {
			return err
		}
	}
	d.Flags = r.ReadUint32()
	if notifying(r) {
		sink.UnitFlags(0, d.Flags)
	}
	d.Flags2 = r.ReadUint32()
	d.Flags3 = r.ReadUint32()
	d.AuraState = r.ReadUint32()
	for i := range d.AttackRoundBaseTime {
		d.AttackRoundBaseTime[i] = r.ReadUint32()
	}
	if l.Visible(flags, layout.UnitRangedAttackRoundBaseTime) {
		d.RangedAttackRoundBaseTime = r.ReadUint32()
	}
	d.BoundingRadius = r.ReadFloat32()
	d.CombatReach = r.ReadFloat32()
	d.DisplayScale = r.ReadFloat32()
	d.NativeDisplayID = r.ReadInt32()
	d.NativeXDisplayScale = r.ReadFloat32()
	d.MountDisplayID = r.ReadInt32()
	if notifying(r) {
		sink.UnitDisplayID(0, d.MountDisplayID)
	}
	if l.Visible(flags, layout.UnitMinDamage) {
		d.MinDamage = r.ReadFloat32()
		d.MaxDamage = r.ReadFloat32()
		d.MinOffHandDamage = r.ReadFloat32()
		d.MaxOffHandDamage = r.ReadFloat32()
	}
	d.StandState = r.ReadUint8()
	d.PetTalentPoints = r.ReadUint8()
	d.VisFlags = r.ReadUint8()
	d.AnimTier = r.ReadUint8()
	d.PetNumber = r.ReadUint32()
	d.PetNameTimestamp = r.ReadUint32()
	d.PetExperience = r.ReadUint32()
	d.PetNextLevelExperience = r.ReadUint32()
	d.ModCastingSpeed = r.ReadFloat32()
	d.ModSpellHaste = r.ReadFloat32()
	d.ModHaste = r.ReadFloat32()
	d.ModRangedHaste = r.ReadFloat32()
	d.ModHasteRegen = r.ReadFloat32()
	d.ModTimeRate = r.ReadFloat32()
	d.CreatedBySpell = r.ReadInt32()
	d.EmoteState = r.ReadInt32()
	d.TrainingPointsUsed = r.ReadInt16()
	d.TrainingPointsTotal = r.ReadInt16()
	if l.Visible(flags, layout.UnitStats) {
		for i := range unitStats {
			d.Stats[i] = r.ReadInt32()
			d.StatPosBuff[i] = r.ReadInt32()
			d.StatNegBuff[i] = r.ReadInt32()
		}
	}
	if l.Visible(flags, layout.UnitResistances) {
		for i := range d.Resistances {
			d.Resistances[i] = r.ReadInt32()
		}
	}
	if l.Visible(flags, layout.UnitPowerCostModifier) {
		for i := range unitResistances {
			d.PowerCostModifier[i] = r.ReadInt32()
			d.PowerCostMultiplier[i] = r.ReadFloat32()
		}
	}
	for i := range unitResistances {
		d.ResistanceBuffModsPositive[i] = r.ReadInt32()
		d.ResistanceBuffModsNegative[i] = r.ReadInt32()
	}
	d.BaseMana = r.ReadInt32()
	if l.Visible(flags, layout.UnitBaseHealth) {
		d.BaseHealth = r.ReadInt32()
	}
	d.SheatheState = r.ReadUint8()
	d.PvpFlags = r.ReadUint8()
	d.PetFlags = r.ReadUint8()
	d.ShapeshiftForm = r.ReadUint8()
	if l.Visible(flags, layout.UnitAttackPower) {
		d.AttackPower = r.ReadInt32()
		d.AttackPowerModPos = r.ReadInt32()
		d.AttackPowerModNeg = r.ReadInt32()
		d.AttackPowerMultiplier = r.ReadFloat32()
		d.RangedAttackPower = r.ReadInt32()
		d.RangedAttackPowerModPos = r.ReadInt32()
		d.RangedAttackPowerModNeg = r.ReadInt32()
		d.RangedAttackPowerMultiplier = r.ReadFloat32()
		d.SetAttackSpeedAura = r.ReadInt32()
		d.Lifesteal = r.ReadFloat32()
		d.MinRangedDamage = r.ReadFloat32()
		d.MaxRangedDamage = r.ReadFloat32()
		d.MaxHealthModifier = r.ReadFloat32()
	}
	d.HoverHeight = r.ReadFloat32()
	d.MinItemLevelCutoff = r.ReadInt32()
	d.MinItemLevel = r.ReadInt32()
	d.MaxItemLevel = r.ReadInt32()
	d.WildBattlePetLevel = r.ReadInt32()
	d.BattlePetCompanionNameTimestamp = r.ReadUint32()
	d.InteractSpellID = r.ReadInt32()
	d.ScaleDuration = r.ReadInt32()
	d.LooksLikeMountID = r.ReadInt32()
	d.LooksLikeCreatureID = r.ReadInt32()
	d.LookAtControllerID = r.ReadInt32()
	d.Unk106 = r.ReadUint32()
	d.GuildGUID.Read(r)
	if err := d.PassiveSpells.ReadCreateCount(r, l.Array(layout.UnitPassiveSpells)); err != nil {
		return err
	}
	if err := d.WorldEffects.ReadCreateCount(r, l.Array(layout.UnitWorldEffects)); err != nil {
		return err
	}
	if err := d.ChannelObjects.ReadCreateCount(r, l.Array(layout.UnitChannelObjects)); err != nil {
		return err
	}
	d.SkinningOwnerGUID.Read(r)
	d.Unk109 = r.ReadUint32()
	if l.Visible(flags, layout.UnitUnk110) {
		d.Unk110 = r.ReadUint32()
	}
	if err := d.PassiveSpells.ReadCreateElements(r, flags); err != nil {
		return err
	}
	if err := d.WorldEffects.ReadCreateElements(r, flags); err != nil {
		return err
	}

	return d.ChannelObjects.ReadCreateElements(r, flags)
}

// ReadUpdate decodes a unit delta.
//
// The state world effect list is not a tracked array: when its bit is set
// a 32-bit count follows the mask directly, then the values after an
// alignment. It is read before the phase-1 masks of the three tracked
// arrays.
func (d *UnitData) ReadUpdate(r *bitstream.Reader, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Unit

	m, err := readMask(r, l)
	if err != nil {
		return err
	}

	if l.Has(m, layout.UnitStateWorldEffectIDs) {
		// The count precedes the mask alignment and is trusted as the exact
		// element count. The wire reads the values with the size it sent
		// rather than the stored length, so a count above Max fails here
		// instead of being truncated.
		n := r.ReadBits(32)
		if r.Err() != nil {
			return r.Err()
		}
		if err := d.StateWorldEffectIDs.SetCount(r, int(n), l.Array(layout.UnitStateWorldEffectIDs)); err != nil {
			return err
		}
		if n > 0 {
			r.AlignToByte()
			if err := d.StateWorldEffectIDs.ReadCreateElements(r, visibility.None); err != nil {
				return err
			}
		}
	}

	passive := l.Has(m, layout.UnitPassiveSpells)
	effects := l.Has(m, layout.UnitWorldEffects)
	channel := l.Has(m, layout.UnitChannelObjects)
	if passive {
		if err := d.PassiveSpells.ReadUpdateMask(r, l.Array(layout.UnitPassiveSpells)); err != nil {
			return err
		}
	}
	if effects {
		if err := d.WorldEffects.ReadUpdateMask(r, l.Array(layout.UnitWorldEffects)); err != nil {
			return err
		}
	}
	if channel {
		if err := d.ChannelObjects.ReadUpdateMask(r, l.Array(layout.UnitChannelObjects)); err != nil {
			return err
		}
	}
	r.AlignToByte()
	if passive {
		if err := d.PassiveSpells.ReadUpdateElements(r); err != nil {
			return err
		}
	}
	if effects {
		if err := d.WorldEffects.ReadUpdateElements(r); err != nil {
			return err
		}
	}
	if channel {
		if err := d.ChannelObjects.ReadUpdateElements(r); err != nil {
			return err
		}
	}

	if err := d.readScalars(r, l, m, sink); err != nil {
		return err
	}

	return d.readGroups(r, l, m, sink)
}

func (d *UnitData) readScalars(r *bitstream.Reader, l *layout.Layout, m mask.Mask, sink notify.Sink) error {
	if l.Has(m, layout.UnitHealth) {
		old := d.Health
		d.Health = r.ReadInt64()
		if notifying(r) {
			sink.UnitHealth(old, d.Health)
		}
	}
	if l.Has(m, layout.UnitMaxHealth) {
		d.MaxHealth = r.ReadInt64()
	}
	if l.Has(m, layout.UnitDisplayID) {
		d.DisplayID = r.ReadInt32()
		if notifying(r) {
			sink.UnitDisplayID(0, d.DisplayID)
		}
	}
	if l.Has(m, layout.UnitStateSpellVisualID) {
		d.StateSpellVisualID = r.ReadUint32()
	}
	if l.Has(m, layout.UnitStateAnimID) {
		d.StateAnimID = r.ReadUint32()
	}
	if l.Has(m, layout.UnitStateAnimKitID) {
		d.StateAnimKitID = r.ReadUint32()
	}
	if l.Has(m, layout.UnitCharm) {
		d.Charm.Read(r)
	}
	if l.Has(m, layout.UnitSummon) {
		d.Summon.Read(r)
	}
	if l.Has(m, layout.UnitCritter) {
		d.Critter.Read(r)
	}
	if l.Has(m, layout.UnitCharmedBy) {
		d.CharmedBy.Read(r)
	}
	if l.Has(m, layout.UnitSummonedBy) {
		d.SummonedBy.Read(r)
	}
	if l.Has(m, layout.UnitCreatedBy) {
		d.CreatedBy.Read(r)
	}
	if l.Has(m, layout.UnitDemonCreator) {
		d.DemonCreator.Read(r)
	}
	if l.Has(m, layout.UnitLookAtControllerTarget) {
		d.LookAtControllerTarget.Read(r)
	}
	if l.Has(m, layout.UnitTarget) {
		d.Target.Read(r)
	}
	if l.Has(m, layout.UnitBattlePetCompanionGUID) {
		d.BattlePetCompanionGUID.Read(r)
	}
	if l.Has(m, layout.UnitBattlePetDBID) {
		d.BattlePetDBID = r.ReadUint64()
	}
	if l.Has(m, layout.UnitChannelData) {
		d.ChannelData.Read(r)
	}
	if l.Has(m, layout.UnitSummonedByHomeRealm) {
		d.SummonedByHomeRealm = r.ReadUint32()
	}
	if l.Has(m, layout.UnitRace) {
		d.Race = r.ReadUint8()
	}
	if l.Has(m, layout.UnitClassID) {
		d.ClassID = r.ReadUint8()
	}
	if l.Has(m, layout.UnitPlayerClassID) {
		d.PlayerClassID = r.ReadUint8()
	}
	if l.Has(m, layout.UnitSex) {
		d.Sex = r.ReadUint8()
	}
	if l.Has(m, layout.UnitDisplayPower) {
		d.DisplayPower = r.ReadUint8()
	}
	if l.Has(m, layout.UnitOverrideDisplayPowerID) {
		d.OverrideDisplayPowerID = r.ReadUint32()
	}
	if l.Has(m, layout.UnitLevel) {
		old := d.Level
		d.Level = r.ReadInt32()
		if notifying(r) {
			sink.UnitLevel(old, d.Level)
		}
	}
	if l.Has(m, layout.UnitEffectiveLevel) {
		d.EffectiveLevel = r.ReadInt32()
	}
	if l.Has(m, layout.UnitContentTuningID) {
		d.ContentTuningID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScalingLevelMin) {
		d.ScalingLevelMin = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScalingLevelMax) {
		d.ScalingLevelMax = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScalingLevelDelta) {
		d.ScalingLevelDelta = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScalingFactionGroup) {
		d.ScalingFactionGroup = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScalingHealthItemLevelCurveID) {
		d.ScalingHealthItemLevelCurveID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScalingDamageItemLevelCurveID) {
		d.ScalingDamageItemLevelCurveID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitFactionTemplate) {
		d.FactionTemplate = r.ReadInt32()
	}
	if l.Has(m, layout.UnitFlags) {
		old := d.Flags
		d.Flags = r.ReadUint32()
		if notifying(r) {
			sink.UnitFlags(old, d.Flags)
		}
	}
	if l.Has(m, layout.UnitFlags2) {
		d.Flags2 = r.ReadUint32()
	}
	if l.Has(m, layout.UnitFlags3) {
		d.Flags3 = r.ReadUint32()
	}
	if l.Has(m, layout.UnitAuraState) {
		d.AuraState = r.ReadUint32()
	}
	if l.Has(m, layout.UnitRangedAttackRoundBaseTime) {
		d.RangedAttackRoundBaseTime = r.ReadUint32()
	}
	if l.Has(m, layout.UnitBoundingRadius) {
		d.BoundingRadius = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitCombatReach) {
		d.CombatReach = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitDisplayScale) {
		d.DisplayScale = r.ReadFloat32()
		if notifying(r) {
			sink.UnitDisplayID(0, 0)
		}
	}
	if l.Has(m, layout.UnitNativeDisplayID) {
		d.NativeDisplayID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitNativeXDisplayScale) {
		d.NativeXDisplayScale = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMountDisplayID) {
		d.MountDisplayID = r.ReadInt32()
		if notifying(r) {
			sink.UnitDisplayID(0, 0)
		}
	}
	if l.Has(m, layout.UnitMinDamage) {
		d.MinDamage = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMaxDamage) {
		d.MaxDamage = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMinOffHandDamage) {
		d.MinOffHandDamage = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMaxOffHandDamage) {
		d.MaxOffHandDamage = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitStandState) {
		d.StandState = r.ReadUint8()
	}
	if l.Has(m, layout.UnitPetTalentPoints) {
		d.PetTalentPoints = r.ReadUint8()
	}
	if l.Has(m, layout.UnitVisFlags) {
		d.VisFlags = r.ReadUint8()
	}
	if l.Has(m, layout.UnitAnimTier) {
		d.AnimTier = r.ReadUint8()
	}
	if l.Has(m, layout.UnitPetNumber) {
		d.PetNumber = r.ReadUint32()
	}
	if l.Has(m, layout.UnitPetNameTimestamp) {
		d.PetNameTimestamp = r.ReadUint32()
	}
	if l.Has(m, layout.UnitPetExperience) {
		d.PetExperience = r.ReadUint32()
	}
	if l.Has(m, layout.UnitPetNextLevelExperience) {
		d.PetNextLevelExperience = r.ReadUint32()
	}
	if l.Has(m, layout.UnitModCastingSpeed) {
		d.ModCastingSpeed = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitModSpellHaste) {
		d.ModSpellHaste = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitModHaste) {
		d.ModHaste = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitModRangedHaste) {
		d.ModRangedHaste = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitModHasteRegen) {
		d.ModHasteRegen = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitModTimeRate) {
		d.ModTimeRate = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitCreatedBySpell) {
		d.CreatedBySpell = r.ReadInt32()
	}
	if l.Has(m, layout.UnitEmoteState) {
		d.EmoteState = r.ReadInt32()
	}
	if l.Has(m, layout.UnitTrainingPointsUsed) {
		d.TrainingPointsUsed = r.ReadInt16()
	}
	if l.Has(m, layout.UnitTrainingPointsTotal) {
		d.TrainingPointsTotal = r.ReadInt16()
	}
	if l.Has(m, layout.UnitBaseMana) {
		d.BaseMana = r.ReadInt32()
	}
	if l.Has(m, layout.UnitBaseHealth) {
		d.BaseHealth = r.ReadInt32()
	}
	if l.Has(m, layout.UnitSheatheState) {
		d.SheatheState = r.ReadUint8()
	}
	if l.Has(m, layout.UnitPvpFlags) {
		d.PvpFlags = r.ReadUint8()
	}
	if l.Has(m, layout.UnitPetFlags) {
		d.PetFlags = r.ReadUint8()
	}
	if l.Has(m, layout.UnitShapeshiftForm) {
		d.ShapeshiftForm = r.ReadUint8()
	}
	if l.Has(m, layout.UnitAttackPower) {
		d.AttackPower = r.ReadInt32()
	}
	if l.Has(m, layout.UnitAttackPowerModPos) {
		d.AttackPowerModPos = r.ReadInt32()
	}
	if l.Has(m, layout.UnitAttackPowerModNeg) {
		d.AttackPowerModNeg = r.ReadInt32()
	}
	if l.Has(m, layout.UnitAttackPowerMultiplier) {
		d.AttackPowerMultiplier = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitRangedAttackPower) {
		d.RangedAttackPower = r.ReadInt32()
	}
	if l.Has(m, layout.UnitRangedAttackPowerModPos) {
		d.RangedAttackPowerModPos = r.ReadInt32()
	}
	if l.Has(m, layout.UnitRangedAttackPowerModNeg) {
		d.RangedAttackPowerModNeg = r.ReadInt32()
	}
	if l.Has(m, layout.UnitRangedAttackPowerMultiplier) {
		d.RangedAttackPowerMultiplier = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitSetAttackSpeedAura) {
		d.SetAttackSpeedAura = r.ReadInt32()
	}
	if l.Has(m, layout.UnitLifesteal) {
		d.Lifesteal = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMinRangedDamage) {
		d.MinRangedDamage = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMaxRangedDamage) {
		d.MaxRangedDamage = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMaxHealthModifier) {
		d.MaxHealthModifier = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitHoverHeight) {
		d.HoverHeight = r.ReadFloat32()
	}
	if l.Has(m, layout.UnitMinItemLevelCutoff) {
		d.MinItemLevelCutoff = r.ReadInt32()
	}
	if l.Has(m, layout.UnitMinItemLevel) {
		d.MinItemLevel = r.ReadInt32()
	}
	if l.Has(m, layout.UnitMaxItemLevel) {
		d.MaxItemLevel = r.ReadInt32()
	}
	if l.Has(m, layout.UnitWildBattlePetLevel) {
		d.WildBattlePetLevel = r.ReadInt32()
	}
	if l.Has(m, layout.UnitBattlePetCompanionNameTimestamp) {
		d.BattlePetCompanionNameTimestamp = r.ReadUint32()
	}
	if l.Has(m, layout.UnitInteractSpellID) {
		d.InteractSpellID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitScaleDuration) {
		d.ScaleDuration = r.ReadInt32()
	}
	if l.Has(m, layout.UnitLooksLikeMountID) {
		d.LooksLikeMountID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitLooksLikeCreatureID) {
		d.LooksLikeCreatureID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitLookAtControllerID) {
		d.LookAtControllerID = r.ReadInt32()
	}
	if l.Has(m, layout.UnitUnk106) {
		d.Unk106 = r.ReadUint32()
	}
	if l.Has(m, layout.UnitGuildGUID) {
		d.GuildGUID.Read(r)
	}
	if l.Has(m, layout.UnitSkinningOwnerGUID) {
		d.SkinningOwnerGUID.Read(r)
	}
	if l.Has(m, layout.UnitUnk109) {
		d.Unk109 = r.ReadUint32()
	}
	if l.Has(m, layout.UnitUnk110) {
		d.Unk110 = r.ReadUint32()
	}

	return r.Err()
}

// readGroups decodes the gated fixed arrays. Groups that share a guard are
// interleaved: for each index, every member's element in member order.
func (d *UnitData) readGroups(r *bitstream.Reader, l *layout.Layout, m mask.Mask, sink notify.Sink) error {
	if g := l.Group(layout.UnitNpcFlags); g.Has(m) {
		for i := range d.NpcFlags {
			if g.Test(m, i) {
				d.NpcFlags[i] = r.ReadUint32()
			}
		}
	}

	if unk := l.Group(layout.UnitPowerUnk); unk.Has(m) {
		unk2 := l.Group(layout.UnitPowerUnk2)
		power := l.Group(layout.UnitPower)
		maxPower := l.Group(layout.UnitMaxPower)
		regen := l.Group(layout.UnitPowerRegenFlatModifier)
		for i := range unitPowers {
			if unk.Test(m, i) {
				d.PowerUnk[i] = r.ReadFloat32()
			}
			if unk2.Test(m, i) {
				d.PowerUnk2[i] = r.ReadFloat32()
			}
			if power.Test(m, i) {
				old := d.Power[i]
				d.Power[i] = r.ReadInt32()
				if !notifying(r) {
					return r.Err()
				}
				sink.UnitPower(old, d.Power[i], i)
			}
			if maxPower.Test(m, i) {
				d.MaxPower[i] = r.ReadInt32()
			}
			if regen.Test(m, i) {
				d.PowerRegenFlatModifier[i] = r.ReadFloat32()
			}
		}
	}

	if g := l.Group(layout.UnitVirtualItems); g.Has(m) {
		for i := range d.VirtualItems {
			if !g.Test(m, i) {
				continue
			}
			if err := d.VirtualItems[i].ReadUpdate(r); err != nil {
				return err
			}
		}
	}

	if g := l.Group(layout.UnitAttackRoundBaseTime); g.Has(m) {
		for i := range d.AttackRoundBaseTime {
			if g.Test(m, i) {
				d.AttackRoundBaseTime[i] = r.ReadUint32()
			}
		}
	}

	if stats := l.Group(layout.UnitStats); stats.Has(m) {
		pos := l.Group(layout.UnitStatPosBuff)
		neg := l.Group(layout.UnitStatNegBuff)
		for i := range unitStats {
			if stats.Test(m, i) {
				d.Stats[i] = r.ReadInt32()
			}
			if pos.Test(m, i) {
				d.StatPosBuff[i] = r.ReadInt32()
			}
			if neg.Test(m, i) {
				d.StatNegBuff[i] = r.ReadInt32()
			}
		}
	}

	if res := l.Group(layout.UnitResistances); res.Has(m) {
		costMod := l.Group(layout.UnitPowerCostModifier)
		costMul := l.Group(layout.UnitPowerCostMultiplier)
		for i := range unitResistances {
			if res.Test(m, i) {
				d.Resistances[i] = r.ReadInt32()
			}
			if costMod.Test(m, i) {
				d.PowerCostModifier[i] = r.ReadInt32()
			}
			if costMul.Test(m, i) {
				d.PowerCostMultiplier[i] = r.ReadFloat32()
			}
		}
	}

	if pos := l.Group(layout.UnitResistanceBuffModsPositive); pos.Has(m) {
		neg := l.Group(layout.UnitResistanceBuffModsNegative)
		for i := range unitResistances {
			if pos.Test(m, i) {
				d.ResistanceBuffModsPositive[i] = r.ReadInt32()
			}
			if neg.Test(m, i) {
				d.ResistanceBuffModsNegative[i] = r.ReadInt32()
			}
		}
	}

	return r.Err()
}

func (d *UnitData) Clone() *UnitData {
	c := *d
	c.StateWorldEffectIDs = d.StateWorldEffectIDs.Clone()
	c.PassiveSpells = d.PassiveSpells.Clone()
	c.WorldEffects = d.WorldEffects.Clone()
	c.ChannelObjects = d.ChannelObjects.Clone()

	return &c
}

func (d *UnitData) Snapshot() Entity { return d.Clone() }

func (d *UnitData) Restore(src Entity) { *d = *mustSameType[UnitData](src) }
