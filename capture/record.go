package capture

import (
	"fmt"

	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/updatefield"
	"github.com/arloliu/ufwire/visibility"
)

// Record is one recorded update-field message.
//
// Payload is the raw Create or Update stream for a single object type. For
// records returned by a Reader it aliases the decompressed section.
type Record struct {
	Type    format.ObjectType
	Op      format.Op
	Flags   visibility.Flags
	GUID    updatefield.GUID
	Payload []byte
}

func (r *Record) validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: object type %d", errs.ErrInvalidRecord, r.Type)
	}
	if !r.Op.Valid() {
		return fmt.Errorf("%w: op %d", errs.ErrInvalidRecord, r.Op)
	}
	if uint64(len(r.Payload)) > 0xFFFFFFFF {
		return fmt.Errorf("%w: payload too large", errs.ErrInvalidRecord)
	}

	return nil
}

// appendRecord appends the encoded record to dst.
func appendRecord(dst []byte, engine endian.EndianEngine, r *Record) []byte {
	dst = append(dst, byte(r.Type), byte(r.Op))
	dst = engine.AppendUint16(dst, uint16(r.Flags))
	dst = engine.AppendUint64(dst, r.GUID.Low)
	dst = engine.AppendUint64(dst, r.GUID.High)
	dst = engine.AppendUint32(dst, uint32(len(r.Payload))) //nolint: gosec
	dst = append(dst, r.Payload...)

	return dst
}

// parseRecord decodes the record at the start of data and returns the
// number of bytes it occupies.
func parseRecord(data []byte, engine endian.EndianEngine, r *Record) (int, error) {
	if len(data) < RecordHeaderSize {
		return 0, fmt.Errorf("%w: truncated record header", errs.ErrInvalidRecord)
	}

	r.Type = format.ObjectType(data[0])
	r.Op = format.Op(data[1])
	r.Flags = visibility.Flags(engine.Uint16(data[2:4]))
	r.GUID.Low = engine.Uint64(data[4:12])
	r.GUID.High = engine.Uint64(data[12:20])
	size := int(engine.Uint32(data[20:24]))

	end := RecordHeaderSize + size
	if size < 0 || end > len(data) {
		return 0, fmt.Errorf("%w: payload of %d bytes overruns section", errs.ErrInvalidRecord, size)
	}
	r.Payload = data[RecordHeaderSize:end:end]

	return end, r.validate()
}
