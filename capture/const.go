package capture

const (
	// Header option bits
	EndiannessMask  = 0x0002 // 0=little, 1=big
	ReservedMask    = 0x000D // must be zero
	MagicNumberMask = 0xFFF0 // magic number (bits 4-15)

	MagicCaptureV1 = 0xEC10 // magic number of version 1 capture files

	FormatVersion = 1
)

const (
	HeaderSize       = 32         // fixed file header size in bytes
	RecordHeaderSize = 1 + 1 + 2 + 16 + 4
	PayloadOffset    = HeaderSize // record section starts right after the header
)
