package replay

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/arloliu/ufwire"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/visibility"
)

// Option configures a Replayer.
type Option = options.Option[*Replayer]

// WithLogger sets the logger for record failures.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(p *Replayer) {
		p.logger = logger
	})
}

// WithSink forwards field change notifications to sink.
func WithSink(sink notify.Sink) Option {
	return options.NoError(func(p *Replayer) {
		p.decoderOpts = append(p.decoderOpts, ufwire.WithSink(sink))
	})
}

// WithStrictTrailing rejects payloads with unread bytes.
func WithStrictTrailing() Option {
	return options.NoError(func(p *Replayer) {
		p.decoderOpts = append(p.decoderOpts, ufwire.WithStrictTrailing())
	})
}

// WithRate paces replay to at most perSecond records per second. Zero
// disables pacing.
func WithRate(perSecond float64, burst int) Option {
	return options.New(func(p *Replayer) error {
		if perSecond < 0 || burst < 0 {
			return fmt.Errorf("%w: rate %v burst %d", errs.ErrInvalidOption, perSecond, burst)
		}
		if perSecond == 0 {
			p.limiter = nil
			return nil
		}
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))

		return nil
	})
}

// WithStopOnError aborts Apply at the first failing record instead of
// counting the failure and moving on.
func WithStopOnError() Option {
	return options.NoError(func(p *Replayer) {
		p.stopOnError = true
	})
}

// WithFlagsOverride decodes every Create with flags instead of the
// flags recorded with it.
func WithFlagsOverride(flags visibility.Flags) Option {
	return options.NoError(func(p *Replayer) {
		p.flags = &flags
	})
}

// WithStore replays into s instead of a fresh store.
func WithStore(s *Store) Option {
	return options.New(func(p *Replayer) error {
		if s == nil {
			return fmt.Errorf("%w: nil store", errs.ErrInvalidOption)
		}
		p.store = s

		return nil
	})
}
