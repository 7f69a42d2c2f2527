package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseEnv ──────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	environment := map[string]string{
		"CFGGEN_SCHEMA":          "chain-switcher",
		"CFGGEN_ENV_FILE":        "/etc/pool/.env",
		"CFGGEN_OUTPUT":          "/etc/pool/switcher.json",
		"CFGGEN_INT_POLICY":      "lenient",
		"CFGGEN_SKIP_VALIDATION": "true",
		"CFGGEN_DEBUG":           "1",
		"CFGGEN_LOG_LEVEL":       "warn",
		"CFGGEN_CONFIG":          "/etc/pool/cfggen.json",
	}

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg, environment))

	assert.Equal(t, StructuredConfig{
		Generator: Generator{
			Schema:         "chain-switcher",
			EnvFile:        "/etc/pool/.env",
			Output:         "/etc/pool/switcher.json",
			IntPolicy:      "lenient",
			SkipValidation: true,
			Debug:          true,
		},
		Log:          Log{Level: "warn"},
		JSONFilePath: "/etc/pool/cfggen.json",
	}, cfg)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg, map[string]string{}))
	assert.Equal(t, StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	var cfg StructuredConfig
	err := parseEnv(&cfg, map[string]string{"CFGGEN_DEBUG": "maybe"})
	assert.Error(t, err)
}
