package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullFlags(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	args := []string{
		"-config", "fleet.yaml",
		"-env", "dev",
		"-strict",
		"-watch",
		"-o", "descriptors.json",
		"-log-format", "json",
		"-log-level", "debug",
	}

	cfg, shouldExit, err := Parse(args, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "fleet.yaml", cfg.ConfigPath)
	assert.Equal(t, "dev", cfg.Environment)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "descriptors.json", cfg.OutputPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-env", "dev", "fleet.yaml"}, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "fleet.yaml", cfg.ConfigPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Strict)
}

func TestParse_NoPathShowsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-env", "dev"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing env", []string{"fleet.yaml"}, "missing required flag: -env"},
		{"bad log format", []string{"-env", "dev", "-log-format", "xml", "fleet.yaml"}, "invalid log-format"},
		{"bad log level", []string{"-env", "dev", "-log-level", "loud", "fleet.yaml"}, "invalid log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tt.args, &out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected an *ExitError")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.wantMsg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}
