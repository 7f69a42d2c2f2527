// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/pool-cfggen/internal/rules"
)

// applyDefaults fills options no source has set. Debug always logs at
// debug level, whatever level was requested.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Generator.Output == "" {
		cfg.Generator.Output = StdoutOutput
	}
	if cfg.Generator.IntPolicy == "" {
		cfg.Generator.IntPolicy = DefaultIntPolicy
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Generator.Debug {
		cfg.Log.Level = zerolog.DebugLevel.String()
	}
}

// validate checks that the final merged [StructuredConfig] is usable.
// The schema name is checked for presence only; the registry lookup
// happens when the run starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.Generator.Schema == "" {
		return ErrMissingSchema
	}

	if _, err := rules.ParseIntPolicy(cfg.Generator.IntPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIntPolicy, err)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	return nil
}

// IntPolicy returns the parsed integer policy. It is only meaningful on a
// validated config.
func (cfg *StructuredConfig) IntPolicy() rules.IntPolicy {
	p, _ := rules.ParseIntPolicy(cfg.Generator.IntPolicy)
	return p
}
