package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the dump settings. Values come from the defaults, then the
// TOML file, then explicitly set flags.
type Config struct {
	Version        string  `toml:"version"`
	Flags          string  `toml:"flags"`
	Workers        int     `toml:"workers"`
	Rate           float64 `toml:"rate"`
	Burst          int     `toml:"burst"`
	LogLevel       string  `toml:"log_level"`
	LogEvents      bool    `toml:"log_events"`
	StrictTrailing bool    `toml:"strict_trailing"`
	StopOnError    bool    `toml:"stop_on_error"`
	SkipChecksum   bool    `toml:"skip_checksum"`
	Profile        string  `toml:"profile"`
}

func defaultConfig() Config {
	return Config{
		Workers:  4,
		Burst:    1,
		LogLevel: "info",
	}
}

// loadConfig overlays the keys present in the file at path onto the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("version") {
		cfg.Version = strings.TrimSpace(raw.Version)
	}
	if meta.IsDefined("flags") {
		cfg.Flags = strings.TrimSpace(raw.Flags)
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("rate") {
		cfg.Rate = raw.Rate
	}
	if meta.IsDefined("burst") {
		cfg.Burst = raw.Burst
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_events") {
		cfg.LogEvents = raw.LogEvents
	}
	if meta.IsDefined("strict_trailing") {
		cfg.StrictTrailing = raw.StrictTrailing
	}
	if meta.IsDefined("stop_on_error") {
		cfg.StopOnError = raw.StopOnError
	}
	if meta.IsDefined("skip_checksum") {
		cfg.SkipChecksum = raw.SkipChecksum
	}
	if meta.IsDefined("profile") {
		cfg.Profile = strings.TrimSpace(raw.Profile)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Rate < 0 {
		return fmt.Errorf("rate must not be negative, got %v", c.Rate)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unsupported profile %q (expected cpu or mem)", c.Profile)
	}

	return nil
}
