package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// FlagSetName is the program name shown in usage output.
const FlagSetName = "cfggen"

// ParseFlags parses the command-line options in args (without the program
// name).
//
// Flags:
//
//	-s/-schema rule-set name
//	-env-file dotenv file with extra inputs
//	-o/-output output path, "-" for stdout
//	-int-policy strict|lenient
//	-no-validate skip the JSON Schema check
//	-debug log the masked document
//	-log-level zerolog level name
//	-c/-config JSON options file path
//
// flag.ErrHelp is returned for -h/-help.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, os.Stderr)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet(FlagSetName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Generator.Schema, "s", "", "Rule-set name (alias)")
	fs.StringVar(&cfg.Generator.Schema, "schema", "", "Rule-set name")
	fs.StringVar(&cfg.Generator.EnvFile, "env-file", "", "Dotenv file with extra inputs")
	fs.StringVar(&cfg.Generator.Output, "o", "", "Output path, - for stdout (alias)")
	fs.StringVar(&cfg.Generator.Output, "output", "", "Output path, - for stdout")
	fs.StringVar(&cfg.Generator.IntPolicy, "int-policy", "", "Integer policy: strict or lenient")
	fs.BoolVar(&cfg.Generator.SkipValidation, "no-validate", false, "Skip the JSON Schema check")
	fs.BoolVar(&cfg.Generator.Debug, "debug", false, "Log the generated document with secrets masked")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON options file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON options file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return &cfg, nil
}
