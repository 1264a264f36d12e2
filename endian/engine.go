// Package endian provides the byte order engines used for the byte-aligned
// integer fields of the update-field wire format.
//
// Update streams carry their scalar fields little-endian. The big-endian
// engine exists for capture files written on big-endian hosts and for tests
// that need to prove the cursor honors the configured order.
//
//	engine := endian.GetLittleEndianEngine()
//	r := bitstream.NewReader(data, bitstream.WithEngine(engine))
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so readers
// use the Uint* accessors and writers use the Append* variants of the same
// engine value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the wire default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine is the little-endian engine.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// Name returns a short name for the engine, used in logs and headers.
func Name(engine EndianEngine) string {
	switch engine {
	case binary.LittleEndian:
		return "little"
	case binary.BigEndian:
		return "big"
	default:
		return "custom"
	}
}
