package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/ufwire/bitstream"
	"github.com/arloliu/ufwire/capture"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/mask"
	"github.com/arloliu/ufwire/updatefield"
	"github.com/arloliu/ufwire/visibility"
)

// probeSize is larger than any zero-state Create payload.
const probeSize = 1 << 16

type genConfig struct {
	units       int
	updates     int
	compression format.CompressionType
	schema      *layout.Schema
}

func runGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ufdump gen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	out := fs.String("o", "session.ufcap", "output file")
	units := fs.Int("units", 8, "number of units")
	updates := fs.Int("updates", 16, "updates per unit")
	codec := fs.String("compression", "zstd", "none, zstd, s2 or lz4")
	version := fs.String("version", "", "protocol version, default is the built-in schema")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := genConfig{units: *units, updates: *updates, schema: layout.Default()}
	ct, ok := format.ParseCompression(*codec)
	if !ok {
		return fmt.Errorf("unknown compression %q", *codec)
	}
	cfg.compression = ct
	if *version != "" {
		v, err := layout.ParseVersion(*version)
		if err != nil {
			return err
		}
		if cfg.schema, err = layout.Lookup(v); err != nil {
			return err
		}
	}

	data, err := generate(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil { //nolint: gosec
		return err
	}
	printer.Fprintf(stdout, "wrote %s: %d units, %d bytes\n", *out, cfg.units, len(data))

	return nil
}

// generate builds a synthetic session: each unit is created with an
// object block and a zero-state unit block, then receives health, level
// and dynamic flag updates.
func generate(cfg genConfig) ([]byte, error) {
	w, err := capture.NewWriter(capture.WithCompression(cfg.compression), capture.WithWriterSchema(cfg.schema))
	if err != nil {
		return nil, err
	}

	unitCreate, err := zeroCreate(format.TypeUnit, visibility.None)
	if err != nil {
		return nil, err
	}

	for i := range cfg.units {
		guid := updatefield.GUID{Low: uint64(0x1000 + i), High: 0x0F << 56} //nolint: gosec

		recs := []capture.Record{
			{Type: format.TypeObject, Op: format.OpCreate, GUID: guid, Payload: objectCreate(int32(100+i), 0, 1)}, //nolint: gosec
			{Type: format.TypeUnit, Op: format.OpCreate, GUID: guid, Payload: unitCreate},
		}
		for u := range cfg.updates {
			health := int64(1000 - u*10)
			recs = append(recs, capture.Record{
				Type: format.TypeUnit, Op: format.OpUpdate, GUID: guid,
				Payload: unitUpdate(cfg.schema, health, int32(1+u/4)), //nolint: gosec
			})
			if u%4 == 0 {
				recs = append(recs, capture.Record{
					Type: format.TypeObject, Op: format.OpUpdate, GUID: guid,
					Payload: objectFlagsUpdate(cfg.schema, uint32(u)), //nolint: gosec
				})
			}
		}

		for _, rec := range recs {
			if err := w.Add(rec); err != nil {
				return nil, err
			}
		}
	}

	return w.Finish()
}

// zeroCreate returns an all-zero Create payload of exactly the length a
// decoder consumes for type t seen with flags.
func zeroCreate(t format.ObjectType, flags visibility.Flags) ([]byte, error) {
	e, err := updatefield.New(t)
	if err != nil {
		return nil, err
	}

	r := bitstream.NewReader(make([]byte, probeSize))
	if err := e.ReadCreate(r, flags, nil); err != nil {
		return nil, fmt.Errorf("probe %s create: %w", t, err)
	}

	return make([]byte, (r.BitPos()+7)/8), nil
}

func objectCreate(entry int32, flags uint32, scale float32) []byte {
	w := bitstream.NewWriter()
	w.WriteInt32(entry)
	w.WriteUint32(flags)
	w.WriteFloat32(scale)

	return w.Bytes()
}

func objectFlagsUpdate(s *layout.Schema, flags uint32) []byte {
	l := s.Object
	w := bitstream.NewWriter()
	mask.WriteBits(w, l.Mask(), 0, l.Bit(layout.ObjectDynamicFlags))
	w.AlignToByte()
	w.WriteUint32(flags)

	return w.Bytes()
}

func unitUpdate(s *layout.Schema, health int64, level int32) []byte {
	l := s.Unit
	w := bitstream.NewWriter()
	mask.WriteBits(w, l.Mask(), 0, l.Bit(layout.UnitHealth), l.Bit(layout.UnitLevel))
	w.AlignToByte()
	w.WriteInt64(health)
	w.WriteInt32(level)

	return w.Bytes()
}
