// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level container for the generator's runtime
// options. It is populated by merging values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Generator selects the rule-set, the input and output locations and
	// the coercion policy.
	Generator Generator `envPrefix:"CFGGEN_"`

	// Log holds logging options.
	Log Log `envPrefix:"CFGGEN_LOG_"`

	// JSONFilePath is the optional path to a JSON options file.
	// Populated via the CFGGEN_CONFIG environment variable or the -config flag.
	JSONFilePath string `env:"CFGGEN_CONFIG"`
}

// Generator holds the options of a single generation run.
type Generator struct {
	// Schema is the name of the rule-set to apply (e.g. "chain-switcher").
	// Env: CFGGEN_SCHEMA
	Schema string `env:"SCHEMA"`

	// EnvFile is an optional dotenv file read as extra inputs. Process
	// environment values take precedence over the file.
	// Env: CFGGEN_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// Output is the path the document is written to; "-" means stdout.
	// Env: CFGGEN_OUTPUT
	Output string `env:"OUTPUT"`

	// IntPolicy is "strict" or "lenient"; see rules.IntPolicy.
	// Env: CFGGEN_INT_POLICY
	IntPolicy string `env:"INT_POLICY"`

	// SkipValidation disables the JSON Schema check of the document.
	// Env: CFGGEN_SKIP_VALIDATION
	SkipValidation bool `env:"SKIP_VALIDATION"`

	// Debug logs the document with secrets masked.
	// Env: CFGGEN_DEBUG
	Debug bool `env:"DEBUG"`
}

// Log holds logging options.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: CFGGEN_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied after all sources are merged.
const (
	StdoutOutput     = "-"
	DefaultIntPolicy = "strict"
	DefaultLogLevel  = "info"
)

// GetStructuredConfig loads, merges, and validates the runtime options from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables taken from environment
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// A nil environment reads the process environment.
func GetStructuredConfig(args []string, environment map[string]string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(environment).
		withFlags(args).
		withJSON().
		build()
}
