package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor trades ratio for speed. It suits captures written while a
// session is being recorded.
//
// Sections are stored as S2 blocks, not streams: the capture index already
// frames them, and the block header carries the decoded length so
// Decompress can size its output once.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes with EncodeBetter.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 || len(data) > maxSectionSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSectionTooLarge, len(data))
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

// Decompress rejects a block whose declared length exceeds maxSectionSize
// before allocating for it.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxSectionSize {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes", ErrSectionTooLarge, n)
	}

	return s2.Decode(make([]byte, n), data)
}
