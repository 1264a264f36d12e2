package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/arloliu/ufwire"
	"github.com/arloliu/ufwire/capture"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/updatefield"
	"github.com/arloliu/ufwire/visibility"
)

// Stats summarizes one or more replays.
type Stats struct {
	Records  int
	Creates  int
	Updates  int
	Failures int
	// Bytes is the total payload size; Bits is what the decoder consumed.
	Bytes   int64
	Bits    int64
	Elapsed time.Duration
}

// Merge adds o to s.
func (s *Stats) Merge(o Stats) {
	s.Records += o.Records
	s.Creates += o.Creates
	s.Updates += o.Updates
	s.Failures += o.Failures
	s.Bytes += o.Bytes
	s.Bits += o.Bits
	s.Elapsed += o.Elapsed
}

// Replayer applies capture records to a Store.
type Replayer struct {
	store       *Store
	logger      zerolog.Logger
	limiter     *rate.Limiter
	decoderOpts []ufwire.DecoderOption
	flags       *visibility.Flags
	stopOnError bool
}

// New creates a Replayer with an empty store.
func New(opts ...Option) (*Replayer, error) {
	p := &Replayer{
		store:  NewStore(),
		logger: zerolog.Nop(),
	}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Store returns the store records are applied to.
func (p *Replayer) Store() *Store {
	return p.store
}

// Apply decodes every record of c in order with the schema c was written
// with.
//
// A failing record is logged and counted, and the entity keeps its state
// from before the record; replay continues unless WithStopOnError is set.
// Apply returns early with ctx.Err() when ctx is canceled.
func (p *Replayer) Apply(ctx context.Context, c *capture.Reader) (Stats, error) {
	start := time.Now()
	var stats Stats

	opts := append([]ufwire.DecoderOption{ufwire.WithSchema(c.Schema()), ufwire.WithLogger(p.logger)}, p.decoderOpts...)
	dec, err := ufwire.NewDecoder(opts...)
	if err != nil {
		return stats, err
	}

	for i, rec := range c.All() {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				stats.Elapsed = time.Since(start)
				return stats, err
			}
		}

		stats.Records++
		stats.Bytes += int64(len(rec.Payload))

		bits, err := p.applyRecord(dec, rec)
		stats.Bits += int64(bits)
		if rec.Op == format.OpCreate {
			stats.Creates++
		} else {
			stats.Updates++
		}
		if err == nil {
			continue
		}

		stats.Failures++
		p.logger.Warn().
			Err(err).
			Int("record", i).
			Stringer("type", rec.Type).
			Stringer("op", rec.Op).
			Stringer("guid", rec.GUID).
			Msg("record failed")

		if p.stopOnError {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("record %d: %w", i, err)
		}
	}

	stats.Elapsed = time.Since(start)

	return stats, nil
}

func (p *Replayer) applyRecord(dec *ufwire.Decoder, rec capture.Record) (int, error) {
	key := Key{Type: rec.Type, GUID: rec.GUID}

	switch rec.Op {
	case format.OpCreate:
		e, created, err := p.store.Ensure(key)
		if err != nil {
			return 0, err
		}
		flags := rec.Flags
		if p.flags != nil {
			flags = *p.flags
		}
		res, err := dec.Create(rec.Payload, flags, e)
		if err != nil && created {
			p.store.Delete(key)
		}

		return res.Bits, err
	case format.OpUpdate:
		e, err := p.store.Lookup(key)
		if err != nil {
			return 0, err
		}
		res, err := dec.Update(rec.Payload, e)

		return res.Bits, err
	default:
		return 0, fmt.Errorf("%w: op %d", errs.ErrInvalidRecord, rec.Op)
	}
}

// Entity returns the decoded block of type t for guid.
func (p *Replayer) Entity(t format.ObjectType, guid updatefield.GUID) (updatefield.Entity, bool) {
	return p.store.Get(Key{Type: t, GUID: guid})
}
