package layout

import (
	"errors"
	"testing"

	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/tracked"
	"github.com/arloliu/ufwire/visibility"
	"github.com/stretchr/testify/require"
)

// === Version Tests ===

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("3.4.2")
	require.NoError(t, err)
	require.Equal(t, V3_4_2, v)
	require.Equal(t, "3.4.2", v.String())

	v, err = ParseVersion("3.4.2.45166")
	require.NoError(t, err)
	require.Equal(t, 45166, v.Build)
	require.Equal(t, "3.4.2.45166", v.String())

	for _, bad := range []string{"", "3.4", "3.x.2", "3.4.2.1.0", "3.-1.2"} {
		_, err := ParseVersion(bad)
		require.ErrorIs(t, err, errs.ErrUnknownVersion, bad)
	}
}

func TestVersion_Compare(t *testing.T) {
	require.Equal(t, 0, V3_4_2.Compare(Version{3, 4, 2, 0}))
	require.Equal(t, -1, V3_4_2.Compare(Version{3, 4, 3, 0}))
	require.Equal(t, 1, V3_4_2.Compare(Version{3, 4, 1, 99}))
	require.Equal(t, -1, V3_4_2.Compare(Version{3, 4, 2, 1}))
}

// === Layout Tests ===

func TestLayout_Has_RequiresBlockGuard(t *testing.T) {
	l := Default().Unit
	m := mask.New(l.Mask().Bits)

	m.Set(l.Bit(UnitFlags))
	require.False(t, l.Has(m, UnitFlags), "block guard 32 clear")

	m.Set(32)
	require.True(t, l.Has(m, UnitFlags))
	require.False(t, l.Has(m, UnitHealth))
}

func TestLayout_Group(t *testing.T) {
	l := Default().Unit

	g := l.Group(UnitPower)
	require.Equal(t, mask.Group{Guard: 114, First: 135, Count: 10}, g)

	none := l.Group(UnitHealth)
	require.False(t, none.Has(mask.New(225)))
	require.False(t, none.Test(mask.New(225), 0))
}

func TestLayout_Rules(t *testing.T) {
	l := Default().Unit

	require.True(t, l.Visible(visibility.None, UnitHealth))
	require.False(t, l.Visible(visibility.None, UnitCritter))
	require.True(t, l.Visible(visibility.Owner, UnitCritter))
	require.True(t, l.Visible(visibility.UnitAll, UnitPowerUnk))
	require.False(t, l.Visible(visibility.UnitAll, UnitMinDamage))
	require.True(t, l.Visible(visibility.Empath, UnitMinDamage))
	require.True(t, Default().Player.Visible(visibility.PartyMember, PlayerQuestLog))
}

func TestLayout_Array(t *testing.T) {
	require.Equal(t, tracked.Decl{Max: 63, SizeBits: 6}, Default().Item.Array(ItemModifiers))
	require.Equal(t, tracked.Decl{}, Default().Item.Array(ItemOwner))
}

func TestLayout_Fields_BitOrder(t *testing.T) {
	fields := Default().Object.Fields()
	require.Equal(t, []Field{ObjectEntryID, ObjectDynamicFlags, ObjectScale}, fields)
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Layout
	}{
		{"bit beyond mask", func() *Layout { return NewLayout("x", mask.Bits(4)).Set(ObjectScale, 4) }},
		{"bit on guard", func() *Layout { return NewLayout("x", mask.Bits(40)).Set(ObjectScale, 32) }},
		{"shared bit", func() *Layout { return NewLayout("x", mask.Bits(4)).Seq(1, ObjectEntryID).Set(ObjectScale, 1) }},
		{"group overlaps field", func() *Layout {
			return NewLayout("x", mask.Bits(8)).Set(ObjectScale, 3).
				SetGroup(ItemSpellCharges, mask.Group{Guard: 1, First: 2, Count: 3})
		}},
		{"group beyond mask", func() *Layout {
			return NewLayout("x", mask.Bits(8)).SetGroup(ItemSpellCharges, mask.Group{Guard: 1, First: 2, Count: 7})
		}},
		{"invalid spec", func() *Layout { return NewLayout("x", mask.Bits(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.build().Validate(), errs.ErrInvalidSchema)
		})
	}
}

func TestLayout_Clone_Unfrozen(t *testing.T) {
	base := Default().Object
	require.Panics(t, func() { base.Set(ObjectScale, 2) }, "registered layouts are read-only")

	c := base.Clone()
	c.Set(ObjectScale, 1).Set(ObjectEntryID, 3)

	require.Equal(t, 3, base.Bit(ObjectScale))
	require.Equal(t, 1, c.Bit(ObjectScale))
	require.Equal(t, []Field{ObjectScale, ObjectDynamicFlags, ObjectEntryID}, c.Fields())
}

// === Schema Tests ===

func TestDefault_Valid(t *testing.T) {
	s := Default()

	require.NoError(t, s.Validate())
	require.Equal(t, V3_4_2, s.Version)
	require.Equal(t, 57, s.Skill.Mask().GuardBits())
	require.Equal(t, 8, s.Unit.Mask().GuardBits())
	require.Equal(t, 1, s.Corpse.Mask().GuardBits())
	require.True(t, s.IsProvisional(PlayerField3120))
	require.False(t, s.IsProvisional(UnitHealth))
}

func TestRegister_LookupAndVersions(t *testing.T) {
	s, err := Lookup(V3_4_2)
	require.NoError(t, err)
	require.Same(t, Default(), s)

	_, err = Lookup(Version{Major: 9})
	require.ErrorIs(t, err, errs.ErrUnknownVersion)

	require.ErrorIs(t, Register(Default().Clone(V3_4_2)), errs.ErrSchemaExists)
	require.ErrorIs(t, Register(nil), errs.ErrInvalidSchema)

	derived := Default().Clone(Version{Major: 3, Minor: 4, Patch: 2, Build: 1})
	derived.Unit.Set(UnitUnk106, 109).Set(UnitUnk109, 106)
	if err := Register(derived); !errors.Is(err, errs.ErrSchemaExists) {
		require.NoError(t, err)
	}
	require.Contains(t, Versions(), derived.Version)
	require.Equal(t, V3_4_2, Versions()[0])

	got, err := LookupFingerprint(derived.Fingerprint())
	require.NoError(t, err)
	require.Equal(t, derived.Version, got.Version)
}

func TestRegister_RejectsInvalid(t *testing.T) {
	bad := Default().Clone(Version{Major: 99})
	bad.Object.Set(ObjectScale, 9)

	require.ErrorIs(t, Register(bad), errs.ErrInvalidSchema)
	_, err := Lookup(bad.Version)
	require.ErrorIs(t, err, errs.ErrUnknownVersion)
}

func TestFingerprint(t *testing.T) {
	base := Default()
	same := base.Clone(Version{Major: 7})
	require.Equal(t, base.Fingerprint(), same.Fingerprint(), "version is not part of the fingerprint")

	moved := base.Clone(Version{Major: 7})
	moved.PVP.Set(PVPField28, 14).Set(PVPField2C, 13)
	require.NotEqual(t, base.Fingerprint(), moved.Fingerprint())

	regated := base.Clone(Version{Major: 7})
	regated.Unit.SetRule(visibility.AllOf(visibility.Owner, visibility.Empath), UnitMinDamage)
	require.NotEqual(t, base.Fingerprint(), regated.Fingerprint())
}

func TestField_String(t *testing.T) {
	require.Equal(t, "UnitHealth", UnitHealth.String())
	require.Equal(t, "Field(60000)", Field(60000).String())
}
