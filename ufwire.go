// Package ufwire decodes the update-field replication protocol: full entity
// snapshots (Create) and deltas (Update) sent bit-packed by the server.
//
// The protocol is layered:
//
//   - bitstream: the bit cursor every decoder reads from
//   - mask: change masks, single-block or block-sparse
//   - tracked: dynamic arrays with two-phase updates
//   - visibility: capability flags gating Create sections
//   - layout: versioned bit-index tables for every entity kind
//   - updatefield: the entity kinds themselves
//   - notify: callbacks fired as watched fields change
//
// This package ties them together behind Decoder, which makes every decode
// all-or-nothing: on failure the destination entity is restored to its
// state before the call.
//
// # Basic Usage
//
//	dec, _ := ufwire.NewDecoder(ufwire.WithSink(mySink))
//
//	var unit updatefield.UnitData
//	if _, err := dec.Create(createPayload, visibility.Owner, &unit); err != nil {
//	    return err
//	}
//	if _, err := dec.Update(updatePayload, &unit); err != nil {
//	    return err
//	}
//
// Decode errors classify with errors.Is against errs.ErrOutOfData,
// errs.ErrCapacityExceeded and errs.ErrStructural.
package ufwire

import (
	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/updatefield"
	"github.com/arloliu/ufwire/visibility"
)

// Result describes a successful or failed decode.
type Result struct {
	// Bits is the number of bits consumed from the payload.
	Bits int
}

// Bytes returns the number of bytes touched by the decode.
func (r Result) Bytes() int {
	return (r.Bits + 7) / 8
}

// entityPtr constrains P to a pointer to T that is an entity.
type entityPtr[T any] interface {
	*T
	updatefield.Entity
}

// DecodeCreate decodes a new entity of kind T from r. Unlike Decoder it
// works on a caller-owned reader, so several entities packed in one buffer
// can be decoded back to back.
func DecodeCreate[T any, P entityPtr[T]](r *bitstream.Reader, flags visibility.Flags, sink notify.Sink) (*T, error) {
	var v T
	if err := P(&v).ReadCreate(r, flags, notify.OrNop(sink)); err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	return &v, nil
}

// DecodeUpdate applies a delta read from r to dst. dst is left unchanged
// when the delta fails to decode.
func DecodeUpdate[T any, P entityPtr[T]](r *bitstream.Reader, dst P, sink notify.Sink) error {
	snap := dst.Snapshot()
	err := dst.ReadUpdate(r, notify.OrNop(sink))
	if err == nil {
		err = r.Err()
	}
	if err != nil {
		dst.Restore(snap)
		return err
	}

	return nil
}
