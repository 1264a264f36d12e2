package capture

import (
	"io"

	"github.com/arloliu/ufwire/compress"
	"github.com/arloliu/ufwire/endian"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/internal/hash"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/internal/pool"
	"github.com/arloliu/ufwire/layout"
)

// Writer accumulates records and produces a capture file.
//
// A Writer is not safe for concurrent use. After Finish it rejects further
// records with errs.ErrWriterFinished.
type Writer struct {
	schema      *layout.Schema
	compression format.CompressionType
	bigEndian   bool

	engine   endian.EndianEngine
	section  *pool.ByteBuffer
	count    uint32
	finished bool
	stats    compress.Stats
}

// NewWriter creates a Writer for the default schema and Zstd compression.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		schema:      layout.Default(),
		compression: format.CompressionZstd,
	}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	w.engine = endian.GetLittleEndianEngine()
	if w.bigEndian {
		w.engine = endian.GetBigEndianEngine()
	}
	w.section = pool.GetSectionBuffer()

	return w, nil
}

// Add appends rec to the record section.
func (w *Writer) Add(rec Record) error {
	if w.finished {
		return errs.ErrWriterFinished
	}
	if err := rec.validate(); err != nil {
		return err
	}

	w.section.Grow(RecordHeaderSize + len(rec.Payload))
	w.section.B = appendRecord(w.section.B, w.engine, &rec)
	w.count++

	return nil
}

// Len returns the number of records added so far.
func (w *Writer) Len() int {
	return int(w.count)
}

// Finish compresses the record section and returns the complete file. The
// section buffer goes back to its pool; the Writer cannot be reused.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	w.finished = true
	defer func() {
		pool.PutSectionBuffer(w.section)
		w.section = nil
	}()

	raw := w.section.Bytes()
	codec, err := compressCodec(w.compression)
	if err != nil {
		return nil, err
	}
	packed, stats, err := compress.CompressWithStats(codec, w.compression, raw)
	if err != nil {
		return nil, err
	}
	w.stats = stats

	h := newHeader(w.bigEndian, w.compression, w.schema.Fingerprint())
	h.RecordCount = w.count
	h.RawLength = uint32(len(raw)) //nolint: gosec
	h.Checksum = hash.Checksum32(raw)

	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, h.Bytes()...)
	out = append(out, packed...)

	return out, nil
}

// WriteTo finishes the capture and writes it to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	data, err := w.Finish()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(data)

	return int64(n), err
}

// Stats reports the compression of the record section. It is zero until
// Finish has run.
func (w *Writer) Stats() compress.Stats {
	return w.stats
}

func compressCodec(ct format.CompressionType) (compress.Codec, error) {
	return compress.GetCodec(ct)
}
