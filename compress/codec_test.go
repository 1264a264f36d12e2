package compress

import (
	"bytes"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/arloliu/ufwire/format"
	"github.com/klauspost/compress/s2"
	"github.com/stretchr/testify/require"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// sampleSection resembles a record section: short headers, mostly-zero
// masks and repeating packed GUIDs.
func sampleSection(records int) []byte {
	var buf bytes.Buffer
	for i := range records {
		buf.Write([]byte{0x05, 0x02, 0x00, 0x00})
		buf.Write([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
		buf.Write([]byte{byte(i), 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01})
		buf.Write([]byte{0x0C, 0x00, 0x00, 0x00})
		buf.Write([]byte{0x80, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, byte(i), 0x01, 0x00, 0x00})
	}

	return buf.Bytes()
}

// === Codec Tests ===

func TestCodec_RoundTrip(t *testing.T) {
	data := sampleSection(500)
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "record")
			require.NoError(t, err)

			packed, err := codec.Compress(data)
			require.NoError(t, err)
			if ct != format.CompressionNone {
				require.Less(t, len(packed), len(data))
			}

			out, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestCodec_Empty(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, packed)

		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0x00, 0x01}
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}
}

func TestCodec_Concurrent(t *testing.T) {
	data := sampleSection(100)
	var wg sync.WaitGroup
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				packed, err := codec.Compress(data)
				if err != nil {
					t.Error(err)
					return
				}
				out, err := codec.Decompress(packed)
				if err != nil || !bytes.Equal(out, data) {
					t.Errorf("%s: concurrent round trip failed: %v", ct, err)
				}
			}()
		}
	}
	wg.Wait()
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0x7F), "record")
	require.ErrorContains(t, err, "invalid record compression")

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

// === Stats Tests ===

func TestCompressWithStats(t *testing.T) {
	data := sampleSection(200)
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	packed, stats, err := CompressWithStats(codec, format.CompressionZstd, data)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), stats.OriginalSize)
	require.Equal(t, int64(len(packed)), stats.CompressedSize)
	require.Less(t, stats.Ratio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)

	require.Zero(t, Stats{}.Ratio())
}

func TestLZ4Compressor_GrowsBuffer(t *testing.T) {
	// Highly repetitive input compresses far beyond 4:1.
	data := bytes.Repeat([]byte{0}, 1<<16)
	codec := NewLZ4Compressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(packed)*4, len(data))

	out, err := codec.Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestS2Compressor_BlockFormat(t *testing.T) {
	data := sampleSection(300)
	codec := NewS2Compressor()

	packed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(packed), len(data))

	n, err := s2.DecodedLen(packed)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	plain, err := s2.Decode(nil, packed)
	require.NoError(t, err)
	require.Equal(t, data, plain)
}

func TestS2Compressor_Decompress_DeclaredTooLarge(t *testing.T) {
	block := binary.AppendUvarint(nil, maxSectionSize+1)
	block = append(block, 0x00)

	_, err := NewS2Compressor().Decompress(block)
	require.ErrorIs(t, err, ErrSectionTooLarge)
}

func TestS2Compressor_Decompress_Corrupt(t *testing.T) {
	_, err := NewS2Compressor().Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSectionTooLarge)
}
