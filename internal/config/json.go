package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of a JSON options file.
type StructuredJSONConfig struct {
	Generator struct {
		Schema         string `json:"schema"`
		EnvFile        string `json:"env_file"`
		Output         string `json:"output"`
		IntPolicy      string `json:"int_policy"`
		SkipValidation bool   `json:"skip_validation"`
		Debug          bool   `json:"debug"`
	} `json:"generator"`

	Log struct {
		Level string `json:"level"`
	} `json:"log"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Generator: Generator{
			Schema:         jsonCfg.Generator.Schema,
			EnvFile:        jsonCfg.Generator.EnvFile,
			Output:         jsonCfg.Generator.Output,
			IntPolicy:      jsonCfg.Generator.IntPolicy,
			SkipValidation: jsonCfg.Generator.SkipValidation,
			Debug:          jsonCfg.Generator.Debug,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
