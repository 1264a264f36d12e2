package compress

// ZstdCompressor gives the best ratio of the built-in codecs and is the
// default for capture files kept as regression fixtures.
//
// The pure-Go implementation is used unless the module is built with cgo
// and the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
