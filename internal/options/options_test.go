package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type decodeConfig struct {
	version string
	strict  bool
	calls   []string
}

func withVersion(v string) Option[*decodeConfig] {
	return New(func(c *decodeConfig) error {
		if v == "" {
			return errors.New("empty version")
		}
		c.version = v
		c.calls = append(c.calls, "version")

		return nil
	})
}

func withStrict() Option[*decodeConfig] {
	return NoError(func(c *decodeConfig) {
		c.strict = true
		c.calls = append(c.calls, "strict")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &decodeConfig{}

	err := Apply(cfg, withStrict(), withVersion("3.4.2"))

	require.NoError(t, err)
	require.Equal(t, "3.4.2", cfg.version)
	require.True(t, cfg.strict)
	require.Equal(t, []string{"strict", "version"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &decodeConfig{}

	err := Apply(cfg, withVersion(""), withStrict())

	require.EqualError(t, err, "empty version")
	require.False(t, cfg.strict)
	require.Empty(t, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &decodeConfig{}

	require.NoError(t, Apply(cfg, nil, withStrict()))
	require.True(t, cfg.strict)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &decodeConfig{}

	require.NoError(t, Apply(cfg))
	require.Equal(t, &decodeConfig{}, cfg)
}
