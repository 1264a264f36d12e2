package layout

import (
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
)

// V3_4_2 is the version of the built-in schema.
var V3_4_2 = Version{Major: 3, Minor: 4, Patch: 2}

var v342 = MustRegister(newV342())

var (
	owner         = visibility.AnyOf(visibility.Owner)
	ownerOrAll    = visibility.AnyOf(visibility.Owner, visibility.UnitAll)
	ownerOrEmpath = visibility.AnyOf(visibility.Owner, visibility.Empath)
	partyMember   = visibility.AnyOf(visibility.PartyMember)
)

func newV342() *Schema {
	return &Schema{
		Version:       V3_4_2,
		Object:        objectV342(),
		Item:          itemV342(),
		Container:     containerV342(),
		Unit:          unitV342(),
		Player:        playerV342(),
		Skill:         skillV342(),
		PVP:           pvpV342(),
		GameObject:    gameObjectV342(),
		DynamicObject: dynamicObjectV342(),
		Corpse:        corpseV342(),
		Provisional: []Field{
			UnitUnk106, UnitGuildGUID, UnitSkinningOwnerGUID, UnitUnk109,
			PlayerLogoutTime, PlayerFieldB0, PlayerField3120,
		},
	}
}

func objectV342() *Layout {
	return NewLayout("object", mask.Bits(4)).
		Seq(1, ObjectEntryID, ObjectDynamicFlags, ObjectScale)
}

func itemV342() *Layout {
	return NewLayout("item", mask.Bits(42)).
		Seq(1, ItemArtifactPowers, ItemGems,
			ItemOwner, ItemContainedIn, ItemCreator, ItemGiftCreator,
			ItemStackCount, ItemExpiration, ItemDynamicFlags,
			ItemPropertySeed, ItemRandomPropertiesID,
			ItemDurability, ItemMaxDurability, ItemCreatePlayedTime,
			ItemContext, ItemCreateTime, ItemArtifactXP, ItemAppearanceModID,
			ItemModifiers, ItemDynamicFlags2, ItemDebugItemLevel).
		SetGroup(ItemSpellCharges, mask.Group{Guard: 22, First: 23, Count: 5}).
		SetGroup(ItemEnchantments, mask.Group{Guard: 28, First: 29, Count: 13}).
		SetRule(owner, ItemStackCount, ItemExpiration, ItemSpellCharges,
			ItemDurability, ItemMaxDurability, ItemArtifactXP, ItemAppearanceModID,
			ItemDynamicFlags2, ItemDebugItemLevel).
		SetArray(ItemArtifactPowers, tracked.Decl{Max: 128}).
		SetArray(ItemGems, tracked.Decl{Max: 16}).
		SetArray(ItemModifiers, tracked.Decl{Max: 63, SizeBits: 6}).
		SetArray(ItemBonusListIDs, tracked.Decl{Max: 64})
}

func containerV342() *Layout {
	return NewLayout("container", mask.Bits(39)).
		Set(ContainerNumSlots, 1).
		SetGroup(ContainerSlots, mask.Group{Guard: 2, First: 3, Count: 36})
}

func unitV342() *Layout {
	l := NewLayout("unit", mask.Bits(225)).
		Seq(1, UnitStateWorldEffectIDs, UnitPassiveSpells, UnitWorldEffects, UnitChannelObjects,
			UnitHealth, UnitMaxHealth, UnitDisplayID,
			UnitStateSpellVisualID, UnitStateAnimID, UnitStateAnimKitID,
			UnitCharm, UnitSummon, UnitCritter, UnitCharmedBy, UnitSummonedBy, UnitCreatedBy,
			UnitDemonCreator, UnitLookAtControllerTarget, UnitTarget,
			UnitBattlePetCompanionGUID, UnitBattlePetDBID, UnitChannelData, UnitSummonedByHomeRealm,
			UnitRace, UnitClassID, UnitPlayerClassID, UnitSex, UnitDisplayPower, UnitOverrideDisplayPowerID,
			UnitLevel, UnitEffectiveLevel).
		Seq(33, UnitContentTuningID, UnitScalingLevelMin, UnitScalingLevelMax, UnitScalingLevelDelta,
			UnitScalingFactionGroup, UnitScalingHealthItemLevelCurveID, UnitScalingDamageItemLevelCurveID,
			UnitFactionTemplate, UnitFlags, UnitFlags2, UnitFlags3, UnitAuraState,
			UnitRangedAttackRoundBaseTime, UnitBoundingRadius, UnitCombatReach, UnitDisplayScale,
			UnitNativeDisplayID, UnitNativeXDisplayScale, UnitMountDisplayID,
			UnitMinDamage, UnitMaxDamage, UnitMinOffHandDamage, UnitMaxOffHandDamage,
			UnitStandState, UnitPetTalentPoints, UnitVisFlags, UnitAnimTier,
			UnitPetNumber, UnitPetNameTimestamp, UnitPetExperience, UnitPetNextLevelExperience).
		Seq(65, UnitModCastingSpeed, UnitModSpellHaste, UnitModHaste, UnitModRangedHaste,
			UnitModHasteRegen, UnitModTimeRate, UnitCreatedBySpell, UnitEmoteState,
			UnitTrainingPointsUsed, UnitTrainingPointsTotal, UnitBaseMana, UnitBaseHealth,
			UnitSheatheState, UnitPvpFlags, UnitPetFlags, UnitShapeshiftForm,
			UnitAttackPower, UnitAttackPowerModPos, UnitAttackPowerModNeg, UnitAttackPowerMultiplier,
			UnitRangedAttackPower, UnitRangedAttackPowerModPos, UnitRangedAttackPowerModNeg,
			UnitRangedAttackPowerMultiplier, UnitSetAttackSpeedAura, UnitLifesteal,
			UnitMinRangedDamage, UnitMaxRangedDamage, UnitMaxHealthModifier,
			UnitHoverHeight, UnitMinItemLevelCutoff).
		Seq(97, UnitMinItemLevel, UnitMaxItemLevel, UnitWildBattlePetLevel,
			UnitBattlePetCompanionNameTimestamp, UnitInteractSpellID, UnitScaleDuration,
			UnitLooksLikeMountID, UnitLooksLikeCreatureID, UnitLookAtControllerID,
			UnitUnk106, UnitGuildGUID, UnitSkinningOwnerGUID, UnitUnk109, UnitUnk110).
		SetGroup(UnitNpcFlags, mask.Group{Guard: 111, First: 112, Count: 2}).
		SetGroup(UnitVirtualItems, mask.Group{Guard: 165, First: 166, Count: 3}).
		SetGroup(UnitAttackRoundBaseTime, mask.Group{Guard: 169, First: 170, Count: 2})

	for i, f := range []Field{UnitPowerUnk, UnitPowerUnk2, UnitPower, UnitMaxPower, UnitPowerRegenFlatModifier} {
		l.SetGroup(f, mask.Group{Guard: 114, First: 115 + i*10, Count: 10})
	}
	for i, f := range []Field{UnitStats, UnitStatPosBuff, UnitStatNegBuff} {
		l.SetGroup(f, mask.Group{Guard: 172, First: 173 + i*5, Count: 5})
	}
	for i, f := range []Field{UnitResistances, UnitPowerCostModifier, UnitPowerCostMultiplier} {
		l.SetGroup(f, mask.Group{Guard: 188, First: 189 + i*7, Count: 7})
	}
	for i, f := range []Field{UnitResistanceBuffModsPositive, UnitResistanceBuffModsNegative} {
		l.SetGroup(f, mask.Group{Guard: 210, First: 211 + i*7, Count: 7})
	}

	return l.
		SetRule(owner, UnitCritter, UnitRangedAttackRoundBaseTime,
			UnitStats, UnitStatPosBuff, UnitStatNegBuff,
			UnitPowerCostModifier, UnitPowerCostMultiplier, UnitBaseHealth,
			UnitAttackPower, UnitAttackPowerModPos, UnitAttackPowerModNeg, UnitAttackPowerMultiplier,
			UnitRangedAttackPower, UnitRangedAttackPowerModPos, UnitRangedAttackPowerModNeg,
			UnitRangedAttackPowerMultiplier, UnitSetAttackSpeedAura, UnitLifesteal,
			UnitMinRangedDamage, UnitMaxRangedDamage, UnitMaxHealthModifier, UnitUnk110).
		SetRule(ownerOrAll, UnitPowerUnk, UnitPowerUnk2).
		SetRule(ownerOrEmpath, UnitMinDamage, UnitMaxDamage, UnitMinOffHandDamage, UnitMaxOffHandDamage,
			UnitResistances).
		SetArray(UnitStateWorldEffectIDs, tracked.Decl{Max: 64}).
		SetArray(UnitPassiveSpells, tracked.Decl{Max: 256}).
		SetArray(UnitWorldEffects, tracked.Decl{Max: 64}).
		SetArray(UnitChannelObjects, tracked.Decl{Max: 64})
}

func playerV342() *Layout {
	return NewLayout("player", mask.Bits(104)).
		Seq(1, PlayerCustomizations, PlayerArenaCooldowns, PlayerUnsupported,
			PlayerDuelArbiter, PlayerWowAccount, PlayerLootTargetGUID,
			PlayerFlags, PlayerFlagsEx, PlayerGuildRankID, PlayerGuildDeleteDate, PlayerGuildLevel,
			PlayerPartyType, PlayerNativeSex, PlayerInebriation, PlayerPvpTitle,
			PlayerArenaFaction, PlayerPvpRank, PlayerUnk254, PlayerDuelTeam, PlayerGuildTimeStamp,
			PlayerTitle, PlayerFakeInebriation, PlayerVirtualRealm, PlayerCurrentSpecID,
			PlayerTaxiMountAnimKitID, PlayerCurrentBattlePetBreedQuality, PlayerHonorLevel,
			PlayerLogoutTime, PlayerFieldB0).
		SetGroup(PlayerQuestLog, mask.Group{Guard: 30, First: 31, Count: 25}).
		SetGroup(PlayerVisibleItems, mask.Group{Guard: 56, First: 57, Count: 19}).
		SetGroup(PlayerAvgItemLevel, mask.Group{Guard: 76, First: 77, Count: 6}).
		SetGroup(PlayerField3120, mask.Group{Guard: 83, First: 84, Count: 19}).
		SetRule(partyMember, PlayerQuestLog).
		SetArray(PlayerCustomizations, tracked.Decl{Max: 250}).
		SetArray(PlayerArenaCooldowns, tracked.Decl{Max: 64})
}

func skillV342() *Layout {
	l := NewLayout("skill", mask.Bits(1793))
	for i, f := range []Field{SkillLineID, SkillStep, SkillRank, SkillStartingRank, SkillMaxRank, SkillTempBonus, SkillPermBonus} {
		l.SetGroup(f, mask.Group{Guard: 0, First: 1 + i*256, Count: 256})
	}

	return l
}

func pvpV342() *Layout {
	return NewLayout("pvp", mask.Bits(19)).
		Seq(1, PVPDisqualified, PVPBracket, PVPRatingID,
			PVPWeeklyPlayed, PVPWeeklyWon, PVPSeasonPlayed, PVPSeasonWon,
			PVPRating, PVPWeeklyBestRating, PVPSeasonBestRating,
			PVPTierID, PVPWeeklyBestWinTierID, PVPField28, PVPField2C,
			PVPWeeklyRoundsPlayed, PVPWeeklyRoundsWon, PVPSeasonRoundsPlayed, PVPSeasonRoundsWon)
}

func gameObjectV342() *Layout {
	return NewLayout("gameobject", mask.Bits(20)).
		Seq(1, GameObjectStateWorldEffectIDs, GameObjectEnableDoodadSets, GameObjectWorldEffects,
			GameObjectDisplayID, GameObjectSpellVisualID, GameObjectStateSpellVisualID,
			GameObjectSpawnTrackingStateAnimID, GameObjectSpawnTrackingStateAnimKitID,
			GameObjectCreatedBy, GameObjectGuildGUID, GameObjectFlags, GameObjectParentRotation,
			GameObjectFactionTemplate, GameObjectLevel, GameObjectState, GameObjectTypeID,
			GameObjectPercentHealth, GameObjectArtKit, GameObjectCustomParam).
		SetArray(GameObjectStateWorldEffectIDs, tracked.Decl{Max: 64}).
		SetArray(GameObjectEnableDoodadSets, tracked.Decl{Max: 64}).
		SetArray(GameObjectWorldEffects, tracked.Decl{Max: 64})
}

func dynamicObjectV342() *Layout {
	return NewLayout("dynamicobject", mask.Bits(7)).
		Seq(1, DynamicObjectCaster, DynamicObjectType, DynamicObjectSpellXSpellVisualID,
			DynamicObjectSpellID, DynamicObjectRadius, DynamicObjectCastTime)
}

func corpseV342() *Layout {
	return NewLayout("corpse", mask.BlockSparse(32)).
		Seq(1, CorpseCustomizations, CorpseDynamicFlags, CorpseOwner, CorpsePartyGUID,
			CorpseGuildGUID, CorpseDisplayID, CorpseRaceID, CorpseSex, CorpseClass,
			CorpseFlags, CorpseFactionTemplate).
		SetGroup(CorpseItems, mask.Group{Guard: 12, First: 13, Count: 19}).
		SetArray(CorpseCustomizations, tracked.Decl{Max: 250})
}
