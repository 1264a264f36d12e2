package layout

import "strconv"

// Field identifies one field slot of an entity kind. Values are stable
// within a build; schemas map them to version-specific mask bits.
type Field uint16

const (
	NoField Field = iota

	// Object
	ObjectEntryID
	ObjectDynamicFlags
	ObjectScale

	// Item
	ItemArtifactPowers
	ItemGems
	ItemOwner
	ItemContainedIn
	ItemCreator
	ItemGiftCreator
	ItemStackCount
	ItemExpiration
	ItemDynamicFlags
	ItemPropertySeed
	ItemRandomPropertiesID
	ItemDurability
	ItemMaxDurability
	ItemCreatePlayedTime
	ItemContext
	ItemCreateTime
	ItemArtifactXP
	ItemAppearanceModID
	ItemModifiers
	ItemDynamicFlags2
	ItemDebugItemLevel
	ItemSpellCharges
	ItemEnchantments
	ItemBonusListIDs

	// Container
	ContainerNumSlots
	ContainerSlots

	// Unit
	UnitStateWorldEffectIDs
	UnitPassiveSpells
	UnitWorldEffects
	UnitChannelObjects
	UnitHealth
	UnitMaxHealth
	UnitDisplayID
	UnitStateSpellVisualID
	UnitStateAnimID
	UnitStateAnimKitID
	UnitCharm
	UnitSummon
	UnitCritter
	UnitCharmedBy
	UnitSummonedBy
	UnitCreatedBy
	UnitDemonCreator
	UnitLookAtControllerTarget
	UnitTarget
	UnitBattlePetCompanionGUID
	UnitBattlePetDBID
	UnitChannelData
	UnitSummonedByHomeRealm
	UnitRace
	UnitClassID
	UnitPlayerClassID
	UnitSex
	UnitDisplayPower
	UnitOverrideDisplayPowerID
	UnitLevel
	UnitEffectiveLevel
	UnitContentTuningID
	UnitScalingLevelMin
	UnitScalingLevelMax
	UnitScalingLevelDelta
	UnitScalingFactionGroup
	UnitScalingHealthItemLevelCurveID
	UnitScalingDamageItemLevelCurveID
	UnitFactionTemplate
	UnitFlags
	UnitFlags2
	UnitFlags3
	UnitAuraState
	UnitRangedAttackRoundBaseTime
	UnitBoundingRadius
	UnitCombatReach
	UnitDisplayScale
	UnitNativeDisplayID
	UnitNativeXDisplayScale
	UnitMountDisplayID
	UnitMinDamage
	UnitMaxDamage
	UnitMinOffHandDamage
	UnitMaxOffHandDamage
	UnitStandState
	UnitPetTalentPoints
	UnitVisFlags
	UnitAnimTier
	UnitPetNumber
	UnitPetNameTimestamp
	UnitPetExperience
	UnitPetNextLevelExperience
	UnitModCastingSpeed
	UnitModSpellHaste
	UnitModHaste
	UnitModRangedHaste
	UnitModHasteRegen
	UnitModTimeRate
	UnitCreatedBySpell
	UnitEmoteState
	UnitTrainingPointsUsed
	UnitTrainingPointsTotal
	UnitBaseMana
	UnitBaseHealth
	UnitSheatheState
	UnitPvpFlags
	UnitPetFlags
	UnitShapeshiftForm
	UnitAttackPower
	UnitAttackPowerModPos
	UnitAttackPowerModNeg
	UnitAttackPowerMultiplier
	UnitRangedAttackPower
	UnitRangedAttackPowerModPos
	UnitRangedAttackPowerModNeg
	UnitRangedAttackPowerMultiplier
	UnitSetAttackSpeedAura
	UnitLifesteal
	UnitMinRangedDamage
	UnitMaxRangedDamage
	UnitMaxHealthModifier
	UnitHoverHeight
	UnitMinItemLevelCutoff
	UnitMinItemLevel
	UnitMaxItemLevel
	UnitWildBattlePetLevel
	UnitBattlePetCompanionNameTimestamp
	UnitInteractSpellID
	UnitScaleDuration
	UnitLooksLikeMountID
	UnitLooksLikeCreatureID
	UnitLookAtControllerID
	UnitUnk106
	UnitGuildGUID
	UnitSkinningOwnerGUID
	UnitUnk109
	UnitUnk110
	UnitNpcFlags
	UnitPowerUnk
	UnitPowerUnk2
	UnitPower
	UnitMaxPower
	UnitPowerRegenFlatModifier
	UnitVirtualItems
	UnitAttackRoundBaseTime
	UnitStats
	UnitStatPosBuff
	UnitStatNegBuff
	UnitResistances
	UnitPowerCostModifier
	UnitPowerCostMultiplier
	UnitResistanceBuffModsPositive
	UnitResistanceBuffModsNegative

	// Player
	PlayerCustomizations
	PlayerArenaCooldowns
	PlayerUnsupported
	PlayerDuelArbiter
	PlayerWowAccount
	PlayerLootTargetGUID
	PlayerFlags
	PlayerFlagsEx
	PlayerGuildRankID
	PlayerGuildDeleteDate
	PlayerGuildLevel
	PlayerPartyType
	PlayerNativeSex
	PlayerInebriation
	PlayerPvpTitle
	PlayerArenaFaction
	PlayerPvpRank
	PlayerUnk254
	PlayerDuelTeam
	PlayerGuildTimeStamp
	PlayerTitle
	PlayerFakeInebriation
	PlayerVirtualRealm
	PlayerCurrentSpecID
	PlayerTaxiMountAnimKitID
	PlayerCurrentBattlePetBreedQuality
	PlayerHonorLevel
	PlayerLogoutTime
	PlayerFieldB0
	PlayerQuestLog
	PlayerVisibleItems
	PlayerAvgItemLevel
	PlayerField3120

	// Skill
	SkillLineID
	SkillStep
	SkillRank
	SkillStartingRank
	SkillMaxRank
	SkillTempBonus
	SkillPermBonus

	// PVP
	PVPDisqualified
	PVPBracket
	PVPRatingID
	PVPWeeklyPlayed
	PVPWeeklyWon
	PVPSeasonPlayed
	PVPSeasonWon
	PVPRating
	PVPWeeklyBestRating
	PVPSeasonBestRating
	PVPTierID
	PVPWeeklyBestWinTierID
	PVPField28
	PVPField2C
	PVPWeeklyRoundsPlayed
	PVPWeeklyRoundsWon
	PVPSeasonRoundsPlayed
	PVPSeasonRoundsWon

	// GameObject
	GameObjectStateWorldEffectIDs
	GameObjectEnableDoodadSets
	GameObjectWorldEffects
	GameObjectDisplayID
	GameObjectSpellVisualID
	GameObjectStateSpellVisualID
	GameObjectSpawnTrackingStateAnimID
	GameObjectSpawnTrackingStateAnimKitID
	GameObjectCreatedBy
	GameObjectGuildGUID
	GameObjectFlags
	GameObjectParentRotation
	GameObjectFactionTemplate
	GameObjectLevel
	GameObjectState
	GameObjectTypeID
	GameObjectPercentHealth
	GameObjectArtKit
	GameObjectCustomParam

	// DynamicObject
	DynamicObjectCaster
	DynamicObjectType
	DynamicObjectSpellXSpellVisualID
	DynamicObjectSpellID
	DynamicObjectRadius
	DynamicObjectCastTime

	// Corpse
	CorpseCustomizations
	CorpseDynamicFlags
	CorpseOwner
	CorpsePartyGUID
	CorpseGuildGUID
	CorpseDisplayID
	CorpseRaceID
	CorpseSex
	CorpseClass
	CorpseFlags
	CorpseFactionTemplate
	CorpseItems

	fieldCount
)

var fieldNames = [fieldCount]string{
	NoField:                               "NoField",
	ObjectEntryID:                         "ObjectEntryID",
	ObjectDynamicFlags:                    "ObjectDynamicFlags",
	ObjectScale:                           "ObjectScale",
	ItemArtifactPowers:                    "ItemArtifactPowers",
	ItemGems:                              "ItemGems",
	ItemOwner:                             "ItemOwner",
	ItemContainedIn:                       "ItemContainedIn",
	ItemCreator:                           "ItemCreator",
	ItemGiftCreator:                       "ItemGiftCreator",
	ItemStackCount:                        "ItemStackCount",
	ItemExpiration:                        "ItemExpiration",
	ItemDynamicFlags:                      "ItemDynamicFlags",
	ItemPropertySeed:                      "ItemPropertySeed",
	ItemRandomPropertiesID:                "ItemRandomPropertiesID",
	ItemDurability:                        "ItemDurability",
	ItemMaxDurability:                     "ItemMaxDurability",
	ItemCreatePlayedTime:                  "ItemCreatePlayedTime",
	ItemContext:                           "ItemContext",
	ItemCreateTime:                        "ItemCreateTime",
	ItemArtifactXP:                        "ItemArtifactXP",
	ItemAppearanceModID:                   "ItemAppearanceModID",
	ItemModifiers:                         "ItemModifiers",
	ItemDynamicFlags2:                     "ItemDynamicFlags2",
	ItemDebugItemLevel:                    "ItemDebugItemLevel",
	ItemSpellCharges:                      "ItemSpellCharges",
	ItemEnchantments:                      "ItemEnchantments",
	ItemBonusListIDs:                      "ItemBonusListIDs",
	ContainerNumSlots:                     "ContainerNumSlots",
	ContainerSlots:                        "ContainerSlots",
	UnitStateWorldEffectIDs:               "UnitStateWorldEffectIDs",
	UnitPassiveSpells:                     "UnitPassiveSpells",
	UnitWorldEffects:                      "UnitWorldEffects",
	UnitChannelObjects:                    "UnitChannelObjects",
	UnitHealth:                            "UnitHealth",
	UnitMaxHealth:                         "UnitMaxHealth",
	UnitDisplayID:                         "UnitDisplayID",
	UnitStateSpellVisualID:                "UnitStateSpellVisualID",
	UnitStateAnimID:                       "UnitStateAnimID",
	UnitStateAnimKitID:                    "UnitStateAnimKitID",
	UnitCharm:                             "UnitCharm",
	UnitSummon:                            "UnitSummon",
	UnitCritter:                           "UnitCritter",
	UnitCharmedBy:                         "UnitCharmedBy",
	UnitSummonedBy:                        "UnitSummonedBy",
	UnitCreatedBy:                         "UnitCreatedBy",
	UnitDemonCreator:                      "UnitDemonCreator",
	UnitLookAtControllerTarget:            "UnitLookAtControllerTarget",
	UnitTarget:                            "UnitTarget",
	UnitBattlePetCompanionGUID:            "UnitBattlePetCompanionGUID",
	UnitBattlePetDBID:                     "UnitBattlePetDBID",
	UnitChannelData:                       "UnitChannelData",
	UnitSummonedByHomeRealm:               "UnitSummonedByHomeRealm",
	UnitRace:                              "UnitRace",
	UnitClassID:                           "UnitClassID",
	UnitPlayerClassID:                     "UnitPlayerClassID",
	UnitSex:                               "UnitSex",
	UnitDisplayPower:                      "UnitDisplayPower",
	UnitOverrideDisplayPowerID:            "UnitOverrideDisplayPowerID",
	UnitLevel:                             "UnitLevel",
	UnitEffectiveLevel:                    "UnitEffectiveLevel",
	UnitContentTuningID:                   "UnitContentTuningID",
	UnitScalingLevelMin:                   "UnitScalingLevelMin",
	UnitScalingLevelMax:                   "UnitScalingLevelMax",
	UnitScalingLevelDelta:                 "UnitScalingLevelDelta",
	UnitScalingFactionGroup:               "UnitScalingFactionGroup",
	UnitScalingHealthItemLevelCurveID:     "UnitScalingHealthItemLevelCurveID",
	UnitScalingDamageItemLevelCurveID:     "UnitScalingDamageItemLevelCurveID",
	UnitFactionTemplate:                   "UnitFactionTemplate",
	UnitFlags:                             "UnitFlags",
	UnitFlags2:                            "UnitFlags2",
	UnitFlags3:                            "UnitFlags3",
	UnitAuraState:                         "UnitAuraState",
	UnitRangedAttackRoundBaseTime:         "UnitRangedAttackRoundBaseTime",
	UnitBoundingRadius:                    "UnitBoundingRadius",
	UnitCombatReach:                       "UnitCombatReach",
	UnitDisplayScale:                      "UnitDisplayScale",
	UnitNativeDisplayID:                   "UnitNativeDisplayID",
	UnitNativeXDisplayScale:               "UnitNativeXDisplayScale",
	UnitMountDisplayID:                    "UnitMountDisplayID",
	UnitMinDamage:                         "UnitMinDamage",
	UnitMaxDamage:                         "UnitMaxDamage",
	UnitMinOffHandDamage:                  "UnitMinOffHandDamage",
	UnitMaxOffHandDamage:                  "UnitMaxOffHandDamage",
	UnitStandState:                        "UnitStandState",
	UnitPetTalentPoints:                   "UnitPetTalentPoints",
	UnitVisFlags:                          "UnitVisFlags",
	UnitAnimTier:                          "UnitAnimTier",
	UnitPetNumber:                         "UnitPetNumber",
	UnitPetNameTimestamp:                  "UnitPetNameTimestamp",
	UnitPetExperience:                     "UnitPetExperience",
	UnitPetNextLevelExperience:            "UnitPetNextLevelExperience",
	UnitModCastingSpeed:                   "UnitModCastingSpeed",
	UnitModSpellHaste:                     "UnitModSpellHaste",
	UnitModHaste:                          "UnitModHaste",
	UnitModRangedHaste:                    "UnitModRangedHaste",
	UnitModHasteRegen:                     "UnitModHasteRegen",
	UnitModTimeRate:                       "UnitModTimeRate",
	UnitCreatedBySpell:                    "UnitCreatedBySpell",
	UnitEmoteState:                        "UnitEmoteState",
	UnitTrainingPointsUsed:                "UnitTrainingPointsUsed",
	UnitTrainingPointsTotal:               "UnitTrainingPointsTotal",
	UnitBaseMana:                          "UnitBaseMana",
	UnitBaseHealth:                        "UnitBaseHealth",
	UnitSheatheState:                      "UnitSheatheState",
	UnitPvpFlags:                          "UnitPvpFlags",
	UnitPetFlags:                          "UnitPetFlags",
	UnitShapeshiftForm:                    "UnitShapeshiftForm",
	UnitAttackPower:                       "UnitAttackPower",
	UnitAttackPowerModPos:                 "UnitAttackPowerModPos",
	UnitAttackPowerModNeg:                 "UnitAttackPowerModNeg",
	UnitAttackPowerMultiplier:             "UnitAttackPowerMultiplier",
	UnitRangedAttackPower:                 "UnitRangedAttackPower",
	UnitRangedAttackPowerModPos:           "UnitRangedAttackPowerModPos",
	UnitRangedAttackPowerModNeg:           "UnitRangedAttackPowerModNeg",
	UnitRangedAttackPowerMultiplier:       "UnitRangedAttackPowerMultiplier",
	UnitSetAttackSpeedAura:                "UnitSetAttackSpeedAura",
	UnitLifesteal:                         "UnitLifesteal",
	UnitMinRangedDamage:                   "UnitMinRangedDamage",
	UnitMaxRangedDamage:                   "UnitMaxRangedDamage",
	UnitMaxHealthModifier:                 "UnitMaxHealthModifier",
	UnitHoverHeight:                       "UnitHoverHeight",
	UnitMinItemLevelCutoff:                "UnitMinItemLevelCutoff",
	UnitMinItemLevel:                      "UnitMinItemLevel",
	UnitMaxItemLevel:                      "UnitMaxItemLevel",
	UnitWildBattlePetLevel:                "UnitWildBattlePetLevel",
	UnitBattlePetCompanionNameTimestamp:   "UnitBattlePetCompanionNameTimestamp",
	UnitInteractSpellID:                   "UnitInteractSpellID",
	UnitScaleDuration:                     "UnitScaleDuration",
	UnitLooksLikeMountID:                  "UnitLooksLikeMountID",
	UnitLooksLikeCreatureID:               "UnitLooksLikeCreatureID",
	UnitLookAtControllerID:                "UnitLookAtControllerID",
	UnitUnk106:                            "UnitUnk106",
	UnitGuildGUID:                         "UnitGuildGUID",
	UnitSkinningOwnerGUID:                 "UnitSkinningOwnerGUID",
	UnitUnk109:                            "UnitUnk109",
	UnitUnk110:                            "UnitUnk110",
	UnitNpcFlags:                          "UnitNpcFlags",
	UnitPowerUnk:                          "UnitPowerUnk",
	UnitPowerUnk2:                         "UnitPowerUnk2",
	UnitPower:                             "UnitPower",
	UnitMaxPower:                          "UnitMaxPower",
	UnitPowerRegenFlatModifier:            "UnitPowerRegenFlatModifier",
	UnitVirtualItems:                      "UnitVirtualItems",
	UnitAttackRoundBaseTime:               "UnitAttackRoundBaseTime",
	UnitStats:                             "UnitStats",
	UnitStatPosBuff:                       "UnitStatPosBuff",
	UnitStatNegBuff:                       "UnitStatNegBuff",
	UnitResistances:                       "UnitResistances",
	UnitPowerCostModifier:                 "UnitPowerCostModifier",
	UnitPowerCostMultiplier:               "UnitPowerCostMultiplier",
	UnitResistanceBuffModsPositive:        "UnitResistanceBuffModsPositive",
	UnitResistanceBuffModsNegative:        "UnitResistanceBuffModsNegative",
	PlayerCustomizations:                  "PlayerCustomizations",
	PlayerArenaCooldowns:                  "PlayerArenaCooldowns",
	PlayerUnsupported:                     "PlayerUnsupported",
	PlayerDuelArbiter:                     "PlayerDuelArbiter",
	PlayerWowAccount:                      "PlayerWowAccount",
	PlayerLootTargetGUID:                  "PlayerLootTargetGUID",
	PlayerFlags:                           "PlayerFlags",
	PlayerFlagsEx:                         "PlayerFlagsEx",
	PlayerGuildRankID:                     "PlayerGuildRankID",
	PlayerGuildDeleteDate:                 "PlayerGuildDeleteDate",
	PlayerGuildLevel:                      "PlayerGuildLevel",
	PlayerPartyType:                       "PlayerPartyType",
	PlayerNativeSex:                       "PlayerNativeSex",
	PlayerInebriation:                     "PlayerInebriation",
	PlayerPvpTitle:                        "PlayerPvpTitle",
	PlayerArenaFaction:                    "PlayerArenaFaction",
	PlayerPvpRank:                         "PlayerPvpRank",
	PlayerUnk254:                          "PlayerUnk254",
	PlayerDuelTeam:                        "PlayerDuelTeam",
	PlayerGuildTimeStamp:                  "PlayerGuildTimeStamp",
	PlayerTitle:                           "PlayerTitle",
	PlayerFakeInebriation:                 "PlayerFakeInebriation",
	PlayerVirtualRealm:                    "PlayerVirtualRealm",
	PlayerCurrentSpecID:                   "PlayerCurrentSpecID",
	PlayerTaxiMountAnimKitID:              "PlayerTaxiMountAnimKitID",
	PlayerCurrentBattlePetBreedQuality:    "PlayerCurrentBattlePetBreedQuality",
	PlayerHonorLevel:                      "PlayerHonorLevel",
	PlayerLogoutTime:                      "PlayerLogoutTime",
	PlayerFieldB0:                         "PlayerFieldB0",
	PlayerQuestLog:                        "PlayerQuestLog",
	PlayerVisibleItems:                    "PlayerVisibleItems",
	PlayerAvgItemLevel:                    "PlayerAvgItemLevel",
	PlayerField3120:                       "PlayerField3120",
	SkillLineID:                           "SkillLineID",
	SkillStep:                             "SkillStep",
	SkillRank:                             "SkillRank",
	SkillStartingRank:                     "SkillStartingRank",
	SkillMaxRank:                          "SkillMaxRank",
	SkillTempBonus:                        "SkillTempBonus",
	SkillPermBonus:                        "SkillPermBonus",
	PVPDisqualified:                       "PVPDisqualified",
	PVPBracket:                            "PVPBracket",
	PVPRatingID:                           "PVPRatingID",
	PVPWeeklyPlayed:                       "PVPWeeklyPlayed",
	PVPWeeklyWon:                          "PVPWeeklyWon",
	PVPSeasonPlayed:                       "PVPSeasonPlayed",
	PVPSeasonWon:                          "PVPSeasonWon",
	PVPRating:                             "PVPRating",
	PVPWeeklyBestRating:                   "PVPWeeklyBestRating",
	PVPSeasonBestRating:                   "PVPSeasonBestRating",
	PVPTierID:                             "PVPTierID",
	PVPWeeklyBestWinTierID:                "PVPWeeklyBestWinTierID",
	PVPField28:                            "PVPField28",
	PVPField2C:                            "PVPField2C",
	PVPWeeklyRoundsPlayed:                 "PVPWeeklyRoundsPlayed",
	PVPWeeklyRoundsWon:                    "PVPWeeklyRoundsWon",
	PVPSeasonRoundsPlayed:                 "PVPSeasonRoundsPlayed",
	PVPSeasonRoundsWon:                    "PVPSeasonRoundsWon",
	GameObjectStateWorldEffectIDs:         "GameObjectStateWorldEffectIDs",
	GameObjectEnableDoodadSets:            "GameObjectEnableDoodadSets",
	GameObjectWorldEffects:                "GameObjectWorldEffects",
	GameObjectDisplayID:                   "GameObjectDisplayID",
	GameObjectSpellVisualID:               "GameObjectSpellVisualID",
	GameObjectStateSpellVisualID:          "GameObjectStateSpellVisualID",
	GameObjectSpawnTrackingStateAnimID:    "GameObjectSpawnTrackingStateAnimID",
	GameObjectSpawnTrackingStateAnimKitID: "GameObjectSpawnTrackingStateAnimKitID",
	GameObjectCreatedBy:                   "GameObjectCreatedBy",
	GameObjectGuildGUID:                   "GameObjectGuildGUID",
	GameObjectFlags:                       "GameObjectFlags",
	GameObjectParentRotation:              "GameObjectParentRotation",
	GameObjectFactionTemplate:             "GameObjectFactionTemplate",
	GameObjectLevel:                       "GameObjectLevel",
	GameObjectState:                       "GameObjectState",
	GameObjectTypeID:                      "GameObjectTypeID",
	GameObjectPercentHealth:               "GameObjectPercentHealth",
	GameObjectArtKit:                      "GameObjectArtKit",
	GameObjectCustomParam:                 "GameObjectCustomParam",
	DynamicObjectCaster:                   "DynamicObjectCaster",
	DynamicObjectType:                     "DynamicObjectType",
	DynamicObjectSpellXSpellVisualID:      "DynamicObjectSpellXSpellVisualID",
	DynamicObjectSpellID:                  "DynamicObjectSpellID",
	DynamicObjectRadius:                   "DynamicObjectRadius",
	DynamicObjectCastTime:                 "DynamicObjectCastTime",
	CorpseCustomizations:                  "CorpseCustomizations",
	CorpseDynamicFlags:                    "CorpseDynamicFlags",
	CorpseOwner:                           "CorpseOwner",
	CorpsePartyGUID:                       "CorpsePartyGUID",
	CorpseGuildGUID:                       "CorpseGuildGUID",
	CorpseDisplayID:                       "CorpseDisplayID",
	CorpseRaceID:                          "CorpseRaceID",
	CorpseSex:                             "CorpseSex",
	CorpseClass:                           "CorpseClass",
	CorpseFlags:                           "CorpseFlags",
	CorpseFactionTemplate:                 "CorpseFactionTemplate",
	CorpseItems:                           "CorpseItems",
}

func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}

	return "Field(" + strconv.Itoa(int(f)) + ")"
}
