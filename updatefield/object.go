package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

// ObjectData is the base block shared by every world object.
type ObjectData struct {
	binding

	EntryID      int32
	DynamicFlags uint32
	Scale        float32
}

func (d *ObjectData) Type() format.ObjectType {
	return format.TypeObject
}

// ReadCreate reads the three fields unconditionally. Dynamic flags are not
// notified on create.
func (d *ObjectData) ReadCreate(r *bitstream.Reader, _ visibility.Flags, _ notify.Sink) error {
	d.EntryID = r.ReadInt32()
	d.DynamicFlags = r.ReadUint32()
	d.Scale = r.ReadFloat32()

	return r.Err()
}

func (d *ObjectData) ReadUpdate(r *bitstream.Reader, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Object

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	r.AlignToByte()

	if l.Has(m, layout.ObjectEntryID) {
		d.EntryID = r.ReadInt32()
	}
	if l.Has(m, layout.ObjectDynamicFlags) {
		old := d.DynamicFlags
		d.DynamicFlags = r.ReadUint32()
		if notifying(r) {
			sink.ObjectDynamicFlags(old, d.DynamicFlags)
		}
	}
	if l.Has(m, layout.ObjectScale) {
		d.Scale = r.ReadFloat32()
	}

	return r.Err()
}

func (d *ObjectData) Clone() *ObjectData {
	c := *d
	return &c
}

func (d *ObjectData) Snapshot() Entity { return d.Clone() }

func (d *ObjectData) Restore(src Entity) { *d = *mustSameType[ObjectData](src) }
