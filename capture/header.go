package capture

import (
	"fmt"

	"github.com/arloliu/ufwire/compress"
	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
)

// Header is the fixed 32-byte prefix of a capture file.
//
// The options word is always stored little-endian; its endianness bit
// selects the byte order of every other integer in the file.
type Header struct {
	Options     uint16                 // offset 0-1
	Version     uint8                  // offset 2
	Compression format.CompressionType // offset 3
	// Fingerprint identifies the layout schema the payloads were encoded with.
	Fingerprint uint64 // offset 4-11
	RecordCount uint32 // offset 12-15
	// PayloadOffset is the byte offset of the (possibly compressed) record
	// section.
	PayloadOffset uint32 // offset 16-19
	// RawLength is the uncompressed size of the record section.
	RawLength uint32 // offset 20-23
	// Checksum is the truncated xxHash64 of the uncompressed record section.
	Checksum uint32  // offset 24-27
	Reserved [4]byte // offset 28-31
}

func newHeader(bigEndian bool, compression format.CompressionType, fingerprint uint64) Header {
	h := Header{
		Options:       MagicCaptureV1,
		Version:       FormatVersion,
		Compression:   compression,
		Fingerprint:   fingerprint,
		PayloadOffset: PayloadOffset,
	}
	if bigEndian {
		h.Options |= EndiannessMask
	}

	return h
}

// IsBigEndian reports whether the file's integers are big-endian.
func (h Header) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// Engine returns the byte order engine selected by the options word.
func (h Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Validate checks the magic number, the reserved bits, the version and the
// compression type.
func (h *Header) Validate() error {
	if h.Options&MagicNumberMask != MagicCaptureV1 {
		return fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidHeaderFlags, h.Options&MagicNumberMask)
	}
	if h.Options&ReservedMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}
	if h.Version != FormatVersion {
		return fmt.Errorf("%w: format version %d", errs.ErrInvalidHeaderFlags, h.Version)
	}
	if _, err := compress.GetCodec(h.Compression); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}

	return nil
}

// Parse decodes a header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Version = data[2]
	h.Compression = format.CompressionType(data[3])

	engine := h.Engine()
	h.Fingerprint = engine.Uint64(data[4:12])
	h.RecordCount = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.RawLength = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint32(data[24:28])
	copy(h.Reserved[:], data[28:32])

	return h.Validate()
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	b[0] = byte(h.Options)
	b[1] = byte(h.Options >> 8)
	b[2] = h.Version
	b[3] = byte(h.Compression)

	engine := h.Engine()
	engine.PutUint64(b[4:12], h.Fingerprint)
	engine.PutUint32(b[12:16], h.RecordCount)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.RawLength)
	engine.PutUint32(b[24:28], h.Checksum)
	copy(b[28:32], h.Reserved[:])

	return b
}
