package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectType_String(t *testing.T) {
	require.Equal(t, "Unit", TypeUnit.String())
	require.Equal(t, "Corpse", TypeCorpse.String())
	require.Equal(t, "Unknown", ObjectType(0).String())
	require.Len(t, ObjectTypes, 10)

	for _, typ := range ObjectTypes {
		require.True(t, typ.Valid(), typ.String())
	}
	require.False(t, ObjectType(0xB).Valid())
}

func TestOp(t *testing.T) {
	require.Equal(t, "Create", OpCreate.String())
	require.Equal(t, "Update", OpUpdate.String())
	require.False(t, Op(3).Valid())
}

func TestParseCompression(t *testing.T) {
	for name, want := range map[string]CompressionType{
		"none": CompressionNone,
		"zstd": CompressionZstd,
		"s2":   CompressionS2,
		"lz4":  CompressionLZ4,
	} {
		got, ok := ParseCompression(name)
		require.True(t, ok, name)
		require.Equal(t, want, got)
		require.NotEqual(t, "Unknown", got.String())
	}

	_, ok := ParseCompression("brotli")
	require.False(t, ok)
}
