package ufwire

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/updatefield"
	"github.com/arloliu/ufwire/visibility"
)

// Decoder decodes Create and Update payloads into entities.
//
// Sink callbacks run behind notify.Safe: a panicking callback is logged and
// never aborts a decode.
//
// A Decoder holds configuration only. It is safe for concurrent use as long
// as concurrent calls target different entities; whether the sink tolerates
// concurrent callbacks is up to the sink.
type Decoder struct {
	schema         *layout.Schema
	sink           notify.Sink
	logger         zerolog.Logger
	engine         endian.EndianEngine
	strictTrailing bool
}

// NewDecoder creates a Decoder for the built-in schema, little-endian
// payloads, no sink and no logging, then applies opts.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{
		schema: layout.Default(),
		sink:   notify.Nop(),
		logger: zerolog.Nop(),
		engine: endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}
	d.sink = notify.Safe(d.sink, d.sinkPanicked)

	return d, nil
}

// sinkPanicked reports a recovered sink panic. Decoding continues with the
// value already committed to the field.
func (d *Decoder) sinkPanicked(kind notify.Kind, recovered any) {
	d.logger.Error().
		Stringer("kind", kind).
		Interface("panic", recovered).
		Msg("sink panicked")
}

// Schema returns the schema entities are bound to while decoding.
func (d *Decoder) Schema() *layout.Schema {
	return d.schema
}

// Create decodes a full snapshot from data into dst, reading the sections
// flags make visible. On error dst is restored to its previous state and
// the returned Result reports where decoding stopped.
func (d *Decoder) Create(data []byte, flags visibility.Flags, dst updatefield.Entity) (Result, error) {
	return d.decode(data, dst, "create", func(r *bitstream.Reader) error {
		return dst.ReadCreate(r, flags, d.sink)
	})
}

// Update applies a delta from data to dst. On error dst is restored to its
// previous state.
func (d *Decoder) Update(data []byte, dst updatefield.Entity) (Result, error) {
	return d.decode(data, dst, "update", func(r *bitstream.Reader) error {
		return dst.ReadUpdate(r, d.sink)
	})
}

func (d *Decoder) decode(data []byte, dst updatefield.Entity, op string, fn func(*bitstream.Reader) error) (Result, error) {
	if dst == nil {
		return Result{}, errs.ErrNilDestination
	}

	snap := dst.Snapshot()
	dst.SetSchema(d.schema)

	r := bitstream.NewReader(data, bitstream.WithEngine(d.engine))
	err := fn(r)
	if err == nil {
		err = r.Err()
	}
	if err == nil && d.strictTrailing {
		if used := (r.BitPos() + 7) / 8; used < len(data) {
			err = fmt.Errorf("%w: %d of %d bytes unread", errs.ErrTrailingData, len(data)-used, len(data))
		}
	}

	res := Result{Bits: r.BitPos()}
	if err != nil {
		dst.Restore(snap)
		d.logger.Debug().
			Err(err).
			Str("op", op).
			Stringer("type", dst.Type()).
			Int("bit", res.Bits).
			Int("size", len(data)).
			Msg("decode failed")

		return res, err
	}

	return res, nil
}
