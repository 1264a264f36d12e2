package main

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arloliu/ufwire/capture"
	"github.com/arloliu/ufwire/replay"
)

var printer = message.NewPrinter(language.English)

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}

	return durafmt.Parse(d).LimitFirstN(2).String()
}

func printSummary(w io.Writer, results []replay.FileResult, wall time.Duration) {
	for _, res := range results {
		if res.Err != nil {
			printer.Fprintf(w, "%s: FAILED: %v\n", res.Path, res.Err)
			continue
		}
		s := res.Stats
		printer.Fprintf(w, "%s: %d records (%d creates, %d updates, %d failed), %s payload, %s\n",
			res.Path, s.Records, s.Creates, s.Updates, s.Failures,
			humanize.Bytes(uint64(s.Bytes)), formatDuration(s.Elapsed)) //nolint: gosec
	}

	total := replay.Total(results)
	printer.Fprintf(w, "total: %d files, %d records, %d failed, %s payload, %d bits decoded in %s\n",
		len(results), total.Records, total.Failures,
		humanize.Bytes(uint64(total.Bytes)), total.Bits, formatDuration(wall)) //nolint: gosec
}

func listCapture(w io.Writer, path string, opts []capture.ReaderOption) error {
	c, err := capture.OpenFile(path, opts...)
	if err != nil {
		return err
	}

	h := c.Header()
	printer.Fprintf(w, "%s: %s, schema %s, %s compression, %d records, %s on disk (%s raw)\n",
		path, formatVersion(h), c.Schema().Version, h.Compression, c.Len(),
		humanize.Bytes(uint64(c.Size())), humanize.Bytes(uint64(h.RawLength))) //nolint: gosec

	for i, rec := range c.All() {
		printer.Fprintf(w, "  #%d %s %s %s flags=%s %d bytes\n",
			i, rec.Op, rec.Type, rec.GUID, rec.Flags, len(rec.Payload))
	}

	return nil
}

func formatVersion(h capture.Header) string {
	if h.IsBigEndian() {
		return printer.Sprintf("v%d big-endian", h.Version)
	}

	return printer.Sprintf("v%d little-endian", h.Version)
}
