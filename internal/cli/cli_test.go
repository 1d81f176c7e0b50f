package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("model flag", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"--model", "model.hcl"}, &out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "model.hcl", cfg.ModelPath)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.AdvancePerRound)
	})

	t.Run("shorthand flags", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"-m", "model.hcl", "-t", "target.hcl"}, &out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "model.hcl", cfg.ModelPath)
		assert.Equal(t, "target.hcl", cfg.TargetPath)
	})

	t.Run("positional model path", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"model.hcl"}, &out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "model.hcl", cfg.ModelPath)
	})

	t.Run("advance-per-round off", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{"--advance-per-round=false", "model.hcl"}, &out)
		require.NoError(t, err)
		assert.False(t, cfg.AdvancePerRound)
	})

	t.Run("no arguments prints usage", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help requests clean exit", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"--help"}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"--bogus"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log format", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"--log-format", "xml", "model.hcl"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "log-format")
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"--log-level", "loud", "model.hcl"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "log-level")
	})
}
