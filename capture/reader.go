package capture

import (
	"fmt"
	"iter"
	"os"

	"github.com/arloliu/ufwire/compress"
	"github.com/arloliu/ufwire/errs"
	"github.com/arloliu/ufwire/internal/hash"
	"github.com/arloliu/ufwire/internal/options"
	"github.com/arloliu/ufwire/layout"
)

// Reader gives access to the records of a capture file. It is immutable
// after Open and safe for concurrent iteration.
type Reader struct {
	header       Header
	schema       *layout.Schema
	skipChecksum bool
	size         int
	records      []Record
}

// Open parses and verifies a capture file held in data.
//
// The header, the checksum of the decompressed record section and the
// schema fingerprint are checked before any record is parsed. Record
// payloads alias the decompressed section, which is data itself for
// uncompressed captures.
func Open(data []byte, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{size: len(data)}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}
	if err := r.header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}
	if err := r.resolveSchema(); err != nil {
		return nil, err
	}

	off := int(r.header.PayloadOffset)
	if off < HeaderSize || off > len(data) {
		return nil, fmt.Errorf("%w: payload offset %d", errs.ErrInvalidRecord, off)
	}

	codec, err := compress.GetCodec(r.header.Compression)
	if err != nil {
		return nil, err
	}
	section, err := codec.Decompress(data[off:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
	}
	if len(section) != int(r.header.RawLength) {
		return nil, fmt.Errorf("%w: section is %d bytes, header says %d",
			errs.ErrInvalidRecord, len(section), r.header.RawLength)
	}
	if !r.skipChecksum && hash.Checksum32(section) != r.header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	if err := r.parseRecords(section); err != nil {
		return nil, err
	}

	return r, nil
}

// OpenFile reads and opens the capture at path.
func OpenFile(path string, opts ...ReaderOption) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Open(data, opts...)
}

func (r *Reader) resolveSchema() error {
	fp := r.header.Fingerprint
	if r.schema != nil {
		if r.schema.Fingerprint() != fp {
			return fmt.Errorf("%w: capture %016x, expected %016x (%s)",
				errs.ErrSchemaMismatch, fp, r.schema.Fingerprint(), r.schema.Version)
		}

		return nil
	}

	s, err := layout.LookupFingerprint(fp)
	if err != nil {
		return fmt.Errorf("%w: no registered schema with fingerprint %016x", errs.ErrSchemaMismatch, fp)
	}
	r.schema = s

	return nil
}

func (r *Reader) parseRecords(section []byte) error {
	engine := r.header.Engine()
	r.records = make([]Record, 0, r.header.RecordCount)

	for len(section) > 0 {
		var rec Record
		n, err := parseRecord(section, engine, &rec)
		if err != nil {
			return fmt.Errorf("record %d: %w", len(r.records), err)
		}
		r.records = append(r.records, rec)
		section = section[n:]
	}

	if len(r.records) != int(r.header.RecordCount) {
		return fmt.Errorf("%w: %d records, header says %d",
			errs.ErrInvalidRecord, len(r.records), r.header.RecordCount)
	}

	return nil
}

// Header returns the parsed file header.
func (r *Reader) Header() Header {
	return r.header
}

// Schema returns the schema the capture was written with.
func (r *Reader) Schema() *layout.Schema {
	return r.schema
}

// Len returns the number of records.
func (r *Reader) Len() int {
	return len(r.records)
}

// Size returns the size of the capture file in bytes.
func (r *Reader) Size() int {
	return r.size
}

// Record returns the i-th record.
func (r *Reader) Record(i int) Record {
	return r.records[i]
}

// All yields the records in file order with their index.
func (r *Reader) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, rec := range r.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}
