// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command cfggen renders the JSON configuration file of a pool service from
// environment variables.
//
// Usage:
//
//	cfggen -schema chain-switcher [-env-file .env] [-o switcher.json]
//
// The document goes to stdout unless -o names a file. Logs go to stderr.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/pool-cfggen/internal/config"
	"github.com/MKhiriev/pool-cfggen/internal/document"
	"github.com/MKhiriev/pool-cfggen/internal/inputs"
	"github.com/MKhiriev/pool-cfggen/internal/logger"
	"github.com/MKhiriev/pool-cfggen/internal/rules"
	"github.com/MKhiriev/pool-cfggen/internal/schemas"
	"github.com/MKhiriev/pool-cfggen/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes one generation and returns the process exit code.
func run(args, environ []string, stdout, stderr io.Writer) int {
	log := logger.New(stderr, "cfggen")

	env := inputs.Environ(environ)
	cfg, err := config.GetStructuredConfig(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return 2
	}
	logBuildInfo(log)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = generate(cfg, env, stdout, log); err != nil {
		log.Error().Err(err).Str("schema", cfg.Generator.Schema).Msg("error generating config")
		return 1
	}
	return 0
}

func generate(cfg *config.StructuredConfig, env inputs.Map, stdout io.Writer, log *logger.Logger) error {
	schema, err := schemas.Lookup(cfg.Generator.Schema)
	if err != nil {
		return err
	}

	var src inputs.Source = env
	if cfg.Generator.EnvFile != "" {
		fileValues, err := inputs.DotEnv(cfg.Generator.EnvFile)
		if err != nil {
			return err
		}
		src = inputs.Layered(env, fileValues)
	}

	doc, err := rules.NewBuilder(schema, cfg.IntPolicy(), log).Build(src)
	if err != nil {
		return err
	}

	if !cfg.Generator.SkipValidation {
		validator, err := validators.ForSchema(schema.Name)
		if err != nil {
			return err
		}
		if err = validator.Validate(doc); err != nil {
			return err
		}
	}

	if cfg.Generator.Debug {
		masked, err := doc.Masked().MarshalJSON()
		if err != nil {
			return fmt.Errorf("error encoding masked document: %w", err)
		}
		log.Debug().RawJSON("document", masked).Msg("generated document")
	}

	var buf bytes.Buffer
	if err = document.Encode(&buf, doc); err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	if cfg.Generator.Output == config.StdoutOutput {
		if _, err = stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("error writing document: %w", err)
		}
		return nil
	}

	if err = writeFile(cfg.Generator.Output, buf.Bytes()); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}
	log.Info().Str("output", cfg.Generator.Output).Int("keys", doc.Len()).Msg("config written")
	return nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers see either the old file or the complete new one.
func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
