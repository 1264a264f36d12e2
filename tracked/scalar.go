package tracked

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/visibility"
)

// Int32 is an int32 array element. Create and Update read the same value.
type Int32 int32

func (v *Int32) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	*v = Int32(r.ReadInt32())
	return r.Err()
}

func (v *Int32) ReadUpdate(r *bitstream.Reader) error {
	return v.ReadCreate(r, visibility.None)
}

// Uint32 is a uint32 array element.
type Uint32 uint32

func (v *Uint32) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	*v = Uint32(r.ReadUint32())
	return r.Err()
}

func (v *Uint32) ReadUpdate(r *bitstream.Reader) error {
	return v.ReadCreate(r, visibility.None)
}

// Uint16 is a uint16 array element.
type Uint16 uint16

func (v *Uint16) ReadCreate(r *bitstream.Reader, _ visibility.Flags) error {
	*v = Uint16(r.ReadUint16())
	return r.Err()
}

func (v *Uint16) ReadUpdate(r *bitstream.Reader) error {
	return v.ReadCreate(r, visibility.None)
}
