package updatefield

import (
	"fmt"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/visibility"
)

// GUID is a 128-bit object identifier.
//
// On the wire it is packed: a byte mask for each half, then only the
// non-zero bytes of the low half followed by those of the high half.
type GUID struct {
	Low  uint64
	High uint64
}

// IsEmpty reports whether g is the zero GUID.
func (g GUID) IsEmpty() bool {
	return g.Low == 0 && g.High == 0
}

func (g GUID) String() string {
	return fmt.Sprintf("0x%016X%016X", g.High, g.Low)
}

// Read decodes a packed GUID.
func (g *GUID) Read(r *bitstream.Reader) {
	lowMask := r.ReadUint8()
	highMask := r.ReadUint8()
	g.Low = r.ReadPacked(lowMask)
	g.High = r.ReadPacked(highMask)
}

func (g *GUID) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	g.Read(r)
	return r.Err()
}

func (g *GUID) ReadUpdate(r *bitstream.Reader) error {
	g.Read(r)
	return r.Err()
}
