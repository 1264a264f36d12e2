package compress

// NoOpCompressor stores record sections uncompressed. Both directions
// return their input slice without copying.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
