package visibility

import (
	"testing"

	"github.com/arloliu/ufwire/errs"
	"github.com/stretchr/testify/require"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		rule  Rule
		want  bool
	}{
		{"always visible", None, Rule{}, true},
		{"owner rule, owner viewer", Owner, AnyOf(Owner), true},
		{"owner rule, stranger", None, AnyOf(Owner), false},
		{"any, second capability", UnitAll, AnyOf(Owner, UnitAll), true},
		{"any, unrelated capability", Empath, AnyOf(Owner, UnitAll), false},
		{"all, both held", Owner | Empath, AllOf(Owner, Empath), true},
		{"all, one missing", Owner, AllOf(Owner, Empath), false},
		{"all, superset held", Owner | Empath | PartyMember, AllOf(Owner, Empath), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Visible(tt.flags, tt.rule))
		})
	}
}

func TestFlags_String(t *testing.T) {
	require.Equal(t, "none", None.String())
	require.Equal(t, "owner", Owner.String())
	require.Equal(t, "owner|empath", (Owner | Empath).String())
	require.Equal(t, "partymember|0x100", (PartyMember | Flags(0x100)).String())
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("Owner|partymember")
	require.NoError(t, err)
	require.Equal(t, Owner|PartyMember, f)

	f, err = ParseFlags("unitall, empath")
	require.NoError(t, err)
	require.Equal(t, UnitAll|Empath, f)

	f, err = ParseFlags("")
	require.NoError(t, err)
	require.Equal(t, None, f)

	f, err = ParseFlags("none")
	require.NoError(t, err)
	require.Equal(t, None, f)

	_, err = ParseFlags("owner|admin")
	require.ErrorIs(t, err, errs.ErrInvalidFlagName)
}

func TestParseFlags_RoundTripsString(t *testing.T) {
	for _, f := range []Flags{None, Owner, Owner | UnitAll, PartyMember | Empath} {
		got, err := ParseFlags(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
}

func TestRule_String(t *testing.T) {
	require.Equal(t, "always", Rule{}.String())
	require.Equal(t, "any(owner|unitall)", AnyOf(Owner, UnitAll).String())
	require.Equal(t, "all(owner|empath)", AllOf(Empath, Owner).String())
}
