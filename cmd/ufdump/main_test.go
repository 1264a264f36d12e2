package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ufwire/capture"
	"github.com/arloliu/ufwire/format"
	"github.com/arloliu/ufwire/layout"
	"github.com/arloliu/ufwire/replay"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// === Config Tests ===

func TestLoadConfig_Overlay(t *testing.T) {
	path := writeFile(t, "ufdump.toml", `
workers = 2
flags = " owner|partymember "
strict_trailing = true
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "owner|partymember", cfg.Flags)
	require.True(t, cfg.StrictTrailing)
	require.Equal(t, "info", cfg.LogLevel, "unset keys keep their defaults")
	require.Equal(t, 1, cfg.Burst)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(writeFile(t, "bad.toml", `workers = 0`))
	require.ErrorContains(t, err, "workers")

	_, err = loadConfig(writeFile(t, "bad.toml", `profile = "block"`))
	require.ErrorContains(t, err, "profile")

	_, err = loadConfig(writeFile(t, "bad.toml", `colour = "red"`))
	require.ErrorContains(t, err, "unknown key")

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestOverlayFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flagCfg := defaultConfig()
	fs.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "")
	fs.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "")
	require.NoError(t, fs.Parse([]string{"-workers", "9"}))

	fileCfg := defaultConfig()
	fileCfg.Workers = 2
	fileCfg.LogLevel = "debug"

	cfg := overlayFlags(fileCfg, flagCfg, fs)
	require.Equal(t, 9, cfg.Workers, "explicit flag wins")
	require.Equal(t, "debug", cfg.LogLevel, "unset flag keeps the file value")
}

func TestBuildOptions_Invalid(t *testing.T) {
	logger, err := newLogger(&bytes.Buffer{}, "info")
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.Version = "9.9.9"
	_, _, err = buildOptions(cfg, logger)
	require.Error(t, err)

	cfg = defaultConfig()
	cfg.Flags = "everyone"
	_, _, err = buildOptions(cfg, logger)
	require.Error(t, err)

	_, err = newLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

// === Gen Tests ===

func TestGenerate_ReplaysCleanly(t *testing.T) {
	data, err := generate(genConfig{units: 3, updates: 5, compression: format.CompressionS2, schema: layout.Default()})
	require.NoError(t, err)

	c, err := capture.Open(data)
	require.NoError(t, err)
	require.Equal(t, 3*(2+5+2), c.Len())

	p, err := replay.New(replay.WithStrictTrailing())
	require.NoError(t, err)
	stats, err := p.Apply(context.Background(), c)
	require.NoError(t, err)
	require.Zero(t, stats.Failures)
	require.Equal(t, 6, stats.Creates)
}

func TestRun_GenThenDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ufcap")
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"gen", "-o", path, "-units", "2", "-updates", "4"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "2 units")

	stdout.Reset()
	err := run(context.Background(), []string{"-list", "-strict", "-workers", "2", path}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "#0 Create Object")
	require.Contains(t, out, "14 records (4 creates, 10 updates, 0 failed)")
	require.Contains(t, out, "total: 1 files")
}

func TestRun_DumpErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run(context.Background(), nil, &stdout, &stderr))

	bad := writeFile(t, "bad.ufcap", "nope")
	err := run(context.Background(), []string{bad}, &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, stdout.String(), "FAILED")
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, (500 * time.Microsecond).String(), formatDuration(500*time.Microsecond))
	require.Contains(t, formatDuration(90*time.Second), "1 minute")
}
