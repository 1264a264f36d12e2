// Command ufdump replays recorded update-field captures and prints what
// they contain.
//
//	ufdump [-config ufdump.toml] [-version 3.4.2] [-flags owner|partymember]
//	       [-workers N] [-rate N] [-profile cpu|mem] [-list] capture...
//	ufdump gen [-o session.ufcap] [-units N] [-updates N] [-compression zstd]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/arloliu/ufwire/capture"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/notify"
	"github.com/arloliu/ufwire/replay"
	"github.com/arloliu/ufwire/visibility"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ufdump:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "gen" {
		return runGen(args[1:], stdout, stderr)
	}

	return runDump(ctx, args, stdout, stderr)
}

func runDump(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ufdump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "TOML config file")
		list       = fs.Bool("list", false, "print every record before replaying")
		flagCfg    = defaultConfig()
	)
	fs.StringVar(&flagCfg.Version, "version", flagCfg.Version, "protocol version to require, e.g. 3.4.2")
	fs.StringVar(&flagCfg.Flags, "flags", flagCfg.Flags, "visibility flags overriding the recorded ones, e.g. owner|partymember")
	fs.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "captures replayed concurrently")
	fs.Float64Var(&flagCfg.Rate, "rate", flagCfg.Rate, "records per second per capture, 0 for unlimited")
	fs.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level")
	fs.BoolVar(&flagCfg.LogEvents, "events", flagCfg.LogEvents, "log every field change notification")
	fs.BoolVar(&flagCfg.StrictTrailing, "strict", flagCfg.StrictTrailing, "reject payloads with unread bytes")
	fs.BoolVar(&flagCfg.StopOnError, "stop-on-error", flagCfg.StopOnError, "stop a capture at its first failing record")
	fs.BoolVar(&flagCfg.SkipChecksum, "skip-checksum", flagCfg.SkipChecksum, "accept captures with a bad checksum")
	fs.StringVar(&flagCfg.Profile, "profile", flagCfg.Profile, "write a cpu or mem profile")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no capture files given")
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}
	cfg = overlayFlags(cfg, flagCfg, fs)
	if err := cfg.validate(); err != nil {
		return err
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	readerOpts, replayOpts, err := buildOptions(cfg, logger)
	if err != nil {
		return err
	}

	if *list {
		for _, path := range fs.Args() {
			if err := listCapture(stdout, path, readerOpts); err != nil {
				return err
			}
		}
	}

	start := time.Now()
	results, runErr := replay.RunFiles(ctx, fs.Args(), cfg.Workers, readerOpts, replayOpts...)
	printSummary(stdout, results, time.Since(start))

	return runErr
}

// overlayFlags copies the explicitly set flags from flagCfg onto cfg.
func overlayFlags(cfg, flagCfg Config, fs *flag.FlagSet) Config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "version":
			cfg.Version = flagCfg.Version
		case "flags":
			cfg.Flags = flagCfg.Flags
		case "workers":
			cfg.Workers = flagCfg.Workers
		case "rate":
			cfg.Rate = flagCfg.Rate
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		case "events":
			cfg.LogEvents = flagCfg.LogEvents
		case "strict":
			cfg.StrictTrailing = flagCfg.StrictTrailing
		case "stop-on-error":
			cfg.StopOnError = flagCfg.StopOnError
		case "skip-checksum":
			cfg.SkipChecksum = flagCfg.SkipChecksum
		case "profile":
			cfg.Profile = flagCfg.Profile
		}
	})

	return cfg
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "ufdump").Logger(), nil
}

func buildOptions(cfg Config, logger zerolog.Logger) ([]capture.ReaderOption, []replay.Option, error) {
	var readerOpts []capture.ReaderOption
	if cfg.Version != "" {
		v, err := layout.ParseVersion(cfg.Version)
		if err != nil {
			return nil, nil, err
		}
		schema, err := layout.Lookup(v)
		if err != nil {
			return nil, nil, err
		}
		readerOpts = append(readerOpts, capture.WithExpectedSchema(schema))
	}
	if cfg.SkipChecksum {
		readerOpts = append(readerOpts, capture.WithSkipChecksum())
	}

	replayOpts := []replay.Option{
		replay.WithLogger(logger),
		replay.WithRate(cfg.Rate, cfg.Burst),
	}
	if cfg.Flags != "" {
		flags, err := visibility.ParseFlags(cfg.Flags)
		if err != nil {
			return nil, nil, err
		}
		replayOpts = append(replayOpts, replay.WithFlagsOverride(flags))
	}
	if cfg.LogEvents {
		sink := notify.Safe(notify.NewLogSink(logger), func(kind notify.Kind, recovered any) {
			logger.Error().Stringer("kind", kind).Interface("panic", recovered).Msg("sink panicked")
		})
		replayOpts = append(replayOpts, replay.WithSink(sink))
	}
	if cfg.StrictTrailing {
		replayOpts = append(replayOpts, replay.WithStrictTrailing())
	}
	if cfg.StopOnError {
		replayOpts = append(replayOpts, replay.WithStopOnError())
	}

	return readerOpts, replayOpts, nil
}
