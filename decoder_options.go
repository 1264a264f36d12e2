package ufwire

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithSchema decodes with s instead of the built-in schema.
func WithSchema(s *layout.Schema) DecoderOption {
	return options.New(func(d *Decoder) error {
		if s == nil {
			return fmt.Errorf("%w: nil schema", errs.ErrInvalidOption)
		}
		d.schema = s

		return nil
	})
}

// WithVersion decodes with the registered schema of version v.
func WithVersion(v layout.Version) DecoderOption {
	return options.New(func(d *Decoder) error {
		s, err := layout.Lookup(v)
		if err != nil {
			return err
		}
		d.schema = s

		return nil
	})
}

// WithSink sets the sink notified of watched field changes. A nil sink
// discards notifications.
func WithSink(sink notify.Sink) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.sink = notify.OrNop(sink)
	})
}

// WithLogger sets the logger used to report failed decodes at debug level.
func WithLogger(logger zerolog.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.logger = logger
	})
}

// WithLittleEndian reads integers little-endian. It is the default.
func WithLittleEndian() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian reads integers big-endian, for payloads produced on
// big-endian hosts.
func WithBigEndian() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.engine = endian.GetBigEndianEngine()
	})
}

// WithStrictTrailing makes a decode fail with errs.ErrTrailingData when whole
// bytes remain after the entity.
func WithStrictTrailing() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.strictTrailing = true
	})
}
