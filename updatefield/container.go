package updatefield

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

const containerSlots = 36

// ContainerData is the slot block of a bag.
type ContainerData struct {
	binding

	Slots    [containerSlots]GUID
	NumSlots uint32
}

func (d *ContainerData) Type() format.ObjectType {
	return format.TypeContainer
}

func (d *ContainerData) ReadCreate(r *bitstream.Reader, _ visibility.Flags, _ notify.Sink) error {
	for i := range d.Slots {
		d.Slots[i].Read(r)
	}
	d.NumSlots = r.ReadUint32()

	return r.Err()
}

// ReadUpdate notifies every changed slot with the low half of the new GUID.
// The old value is always reported as 0.
func (d *ContainerData) ReadUpdate(r *bitstream.Reader, sink notify.Sink) error {
	sink = notify.OrNop(sink)
	l := d.Schema().Container

	m, err := readMask(r, l)
	if err != nil {
		return err
	}
	r.AlignToByte()

	if l.Has(m, layout.ContainerNumSlots) {
		d.NumSlots = r.ReadUint32()
	}
	if g := l.Group(layout.ContainerSlots); g.Has(m) {
		for i := range d.Slots {
			if !g.Test(m, i) {
				continue
			}
			d.Slots[i].Read(r)
			if !notifying(r) {
				return r.Err()
			}
			sink.ContainerSlot(0, d.Slots[i].Low, i)
		}
	}

	return r.Err()
}

func (d *ContainerData) Clone() *ContainerData {
	c := *d
	return &c
}

func (d *ContainerData) Snapshot() Entity { return d.Clone() }

func (d *ContainerData) Restore(src Entity) { *d = *mustSameType[ContainerData](src) }
