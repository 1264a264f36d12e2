package capture

import (
	"fmt"

	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/layout"
)

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithCompression selects the codec for the record section. The default
// is Zstd.
func WithCompression(ct format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		if _, err := compressCodec(ct); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
		}
		w.compression = ct

		return nil
	})
}

// WithWriterSchema records s as the schema the payloads were encoded with.
func WithWriterSchema(s *layout.Schema) WriterOption {
	return options.New(func(w *Writer) error {
		if s == nil {
			return fmt.Errorf("%w: nil schema", errs.ErrInvalidOption)
		}
		w.schema = s

		return nil
	})
}

// WithBigEndian writes header and record integers big-endian.
func WithBigEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.bigEndian = true
	})
}
