// Package tracked implements the change-tracked dynamic array used by entity
// fields whose length varies at runtime.
//
// Create decodes a count followed by that many elements. Update is split in
// two phases that callers must drive separately:
//
//  1. ReadUpdateMask reads the resize indicator, the new size and the
//     per-element changed bitmap. No element payload is consumed.
//  2. ReadUpdateElements decodes the payload of every changed element.
//
// An entity with several arrays runs phase 1 for all of them in declaration
// order, aligns the cursor, then runs phase 2 for all of them in the same
// order. Interleaving the phases desynchronizes the stream.
package tracked

import (
	"fmt"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/visibility"
)

// DefaultMax is the capacity used when a declaration leaves Max unset.
const DefaultMax = 1024

// DefaultSizeBits is the width of the update-path size field when a
// declaration leaves SizeBits unset.
const DefaultSizeBits = 32

// Element is a record stored in an Array.
type Element interface {
	ReadCreate(r *bitstream.Reader, flags visibility.Flags) error
	ReadUpdate(r *bitstream.Reader) error
}

// Decl declares an array field: its capacity and the width of the size
// field sent when the array is resized by an update.
type Decl struct {
	Max      int
	SizeBits int
}

// Capacity returns the maximum element count.
func (d Decl) Capacity() int {
	if d.Max <= 0 {
		return DefaultMax
	}

	return d.Max
}

// Width returns the bit width of the update-path size field.
func (d Decl) Width() int {
	if d.SizeBits <= 0 {
		return DefaultSizeBits
	}

	return d.SizeBits
}

// Array is a dynamic array of T with per-element change tracking.
//
// P is the pointer type of T and must implement Element; it lets Array
// store values inline instead of boxing every element. Element types are
// expected to be plain values: Clone copies them by assignment.
//
// The zero value is an empty array ready for use.
type Array[T any, P interface {
	*T
	Element
}] struct {
	values  []T
	changed mask.Mask
	prevLen int
	touched bool
	pending bool
}

// Len returns the number of elements.
func (a *Array[T, P]) Len() int {
	return len(a.values)
}

// At returns a pointer to element i.
func (a *Array[T, P]) At(i int) *T {
	return &a.values[i]
}

// Values returns the elements. The slice aliases the array's storage.
func (a *Array[T, P]) Values() []T {
	return a.values
}

// Touched reports whether the last update carried a mask for this array.
func (a *Array[T, P]) Touched() bool {
	return a.touched
}

// HasChanged reports whether element i was marked changed by the last
// update mask.
func (a *Array[T, P]) HasChanged(i int) bool {
	return a.changed.Test(i)
}

// Clone returns an independent copy of the array, including its update
// metadata.
func (a *Array[T, P]) Clone() Array[T, P] {
	out := *a
	if a.values != nil {
		out.values = append([]T(nil), a.values...)
	}
	out.changed = a.changed.Clone()

	return out
}

// SetCount resizes the array to n fresh elements for a Create decode whose
// count was read by the caller, e.g. as a bit field.
func (a *Array[T, P]) SetCount(r *bitstream.Reader, n int, decl Decl) error {
	if n < 0 || n > decl.Capacity() {
		r.Fail(fmt.Errorf("%w: %d elements, capacity %d", errs.ErrCapacityExceeded, n, decl.Capacity()))
		return r.Err()
	}

	a.values = make([]T, n)
	a.changed = mask.Mask{}
	a.prevLen = 0
	a.touched = false
	a.pending = false

	return r.Err()
}

// ReadCreateCount reads the element count as a byte-aligned uint32 and
// resizes the array to hold that many fresh elements.
//
// Entities that place the count away from the elements call this at the
// count's position and ReadCreateElements later.
func (a *Array[T, P]) ReadCreateCount(r *bitstream.Reader, decl Decl) error {
	n := r.ReadUint32()
	if r.Err() != nil {
		return r.Err()
	}
	if uint64(n) > uint64(decl.Capacity()) {
		r.Fail(fmt.Errorf("%w: %d elements, capacity %d", errs.ErrCapacityExceeded, n, decl.Capacity()))
		return r.Err()
	}

	return a.SetCount(r, int(n), decl)
}

// ReadCreateElements decodes Len() elements with their Create path.
func (a *Array[T, P]) ReadCreateElements(r *bitstream.Reader, flags visibility.Flags) error {
	for i := range a.values {
		if err := P(&a.values[i]).ReadCreate(r, flags); err != nil {
			return err
		}
	}

	return r.Err()
}

// ReadCreate reads the count and then every element.
func (a *Array[T, P]) ReadCreate(r *bitstream.Reader, flags visibility.Flags, decl Decl) error {
	if err := a.ReadCreateCount(r, decl); err != nil {
		return err
	}

	return a.ReadCreateElements(r, flags)
}

// ReadUpdateMask runs update phase 1: the resize bit, the new size when
// resized, and the changed bitmap over the new size. Only metadata is
// updated; shrinking drops trailing elements, growing appends zero
// elements that phase 2 fills through their Create path.
func (a *Array[T, P]) ReadUpdateMask(r *bitstream.Reader, decl Decl) error {
	a.prevLen = len(a.values)
	a.touched = true
	a.pending = true

	n := len(a.values)
	if r.ReadBit() {
		size := r.ReadBits(decl.Width())
		if r.Err() != nil {
			return r.Err()
		}
		if uint64(size) > uint64(decl.Capacity()) {
			r.Fail(fmt.Errorf("%w: resize to %d, capacity %d", errs.ErrCapacityExceeded, size, decl.Capacity()))
			return r.Err()
		}
		n = int(size)
	}

	switch {
	case n == 0:
		a.changed = mask.Mask{}
	case n <= mask.BlockBits:
		a.changed = mask.FromBlocks(n, r.ReadBits(n))
	default:
		m, err := mask.Read(r, mask.BlockSparse(n))
		if err != nil {
			return err
		}
		a.changed = m
	}
	if r.Err() != nil {
		return r.Err()
	}

	a.resize(n)

	return nil
}

// ReadUpdateElements runs update phase 2. Changed elements that existed
// before this update decode a delta; elements added by the resize decode a
// full Create. It fails with ErrArrayPhase when phase 1 did not run first.
func (a *Array[T, P]) ReadUpdateElements(r *bitstream.Reader) error {
	if !a.pending {
		r.Fail(fmt.Errorf("%w: element payload before update mask", errs.ErrArrayPhase))
		return r.Err()
	}
	a.pending = false

	for i := range a.values {
		if !a.changed.Test(i) {
			continue
		}

		var err error
		if i < a.prevLen {
			err = P(&a.values[i]).ReadUpdate(r)
		} else {
			err = P(&a.values[i]).ReadCreate(r, visibility.None)
		}
		if err != nil {
			return err
		}
	}

	return r.Err()
}

// ReadUpdate runs both update phases back to back with an alignment in
// between, for records that own a single array and nothing else.
func (a *Array[T, P]) ReadUpdate(r *bitstream.Reader, decl Decl) error {
	if err := a.ReadUpdateMask(r, decl); err != nil {
		return err
	}
	r.AlignToByte()

	return a.ReadUpdateElements(r)
}

func (a *Array[T, P]) resize(n int) {
	switch {
	case n < len(a.values):
		clear(a.values[n:])
		a.values = a.values[:n]
	case n > len(a.values):
		grown := make([]T, n)
		copy(grown, a.values)
		a.values = grown
	}
	if a.prevLen > n {
		a.prevLen = n
	}
}
