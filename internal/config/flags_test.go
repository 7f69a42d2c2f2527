package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_LongNames(t *testing.T) {
	args := []string{
		"-schema", "user-chain-api",
		"-env-file", "/etc/pool/.env",
		"-output", "/etc/pool/api.json",
		"-int-policy", "lenient",
		"-no-validate",
		"-debug",
		"-log-level", "warn",
		"-config", "/etc/pool/cfggen.json",
	}

	cfg, err := parseFlags(args, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{
		Generator: Generator{
			Schema:         "user-chain-api",
			EnvFile:        "/etc/pool/.env",
			Output:         "/etc/pool/api.json",
			IntPolicy:      "lenient",
			SkipValidation: true,
			Debug:          true,
		},
		Log:          Log{Level: "warn"},
		JSONFilePath: "/etc/pool/cfggen.json",
	}, cfg)
}

func TestParseFlags_ShortNames(t *testing.T) {
	cfg, err := parseFlags([]string{"-s", "chain-switcher", "-o", "out.json", "-c", "opts.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "chain-switcher", cfg.Generator.Schema)
	assert.Equal(t, "out.json", cfg.Generator.Output)
	assert.Equal(t, "opts.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-port", "80"}},
		{name: "missing value", args: []string{"-schema"}},
		{name: "positional argument", args: []string{"-s", "chain-switcher", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args, &bytes.Buffer{})
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "-int-policy")
}
