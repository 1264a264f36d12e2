// Package capture stores recorded update-field messages in a compact file
// for offline inspection and regression fixtures.
//
// A capture is a 32-byte Header followed by a record section compressed
// with one of the compress codecs. Each record carries the object type,
// the message kind, the viewer's visibility flags, the object GUID and the
// raw payload:
//
//	type(1) op(1) flags(2) guid.low(8) guid.high(8) len(4) payload(len)
//
// The header stores the fingerprint of the layout schema the payloads were
// encoded with, so a reader can refuse files that would decode with the
// wrong bit positions.
package capture
