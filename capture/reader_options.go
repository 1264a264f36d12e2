package capture

import (
	"fmt"

	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/layout"
)

// ReaderOption configures Open.
type ReaderOption = options.Option[*Reader]

// WithExpectedSchema requires the capture to have been written with a
// schema whose fingerprint matches s. Without it, Open resolves the
// schema from the registry by fingerprint.
func WithExpectedSchema(s *layout.Schema) ReaderOption {
	return options.New(func(r *Reader) error {
		if s == nil {
			return fmt.Errorf("%w: nil schema", errs.ErrInvalidOption)
		}
		r.schema = s

		return nil
	})
}

// WithSkipChecksum accepts a capture whose checksum does not match.
func WithSkipChecksum() ReaderOption {
	return options.NoError(func(r *Reader) {
		r.skipChecksum = true
	})
}
