// Package compress provides the codecs applied to the record section of a
// capture file.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: the section is stored as is
//   - Zstd: best ratio, the default for fixtures
//   - S2: fast, for recording live sessions
//   - LZ4: fastest decompression
//
// Update streams compress well: masks are mostly zero and packed GUIDs
// repeat across records.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(section)
package compress
