// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/MKhiriev/pool-cfggen/internal/document"
	"github.com/MKhiriev/pool-cfggen/internal/schemas"
)

// SchemaValidator checks a document against a compiled JSON Schema.
type SchemaValidator struct {
	name   string
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles raw (a draft-07 JSON Schema) under name and
// returns it as the Validator interface.
func NewSchemaValidator(name string, raw []byte) (Validator, error) {
	url := "mem://schemas/" + name + ".json"

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidSchema, name, err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidSchema, name, err)
	}

	return &SchemaValidator{name: name, schema: compiled}, nil
}

// ForSchema returns the validator for the output of the named rule-set.
func ForSchema(name string) (Validator, error) {
	raw, err := schemas.JSONSchema(name)
	if err != nil {
		return nil, err
	}
	return NewSchemaValidator(name, raw)
}

// Validate serializes doc exactly as it will be emitted and checks the
// result against the schema.
func (v *SchemaValidator) Validate(doc *document.Document) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}

	if err := v.schema.Validate(decoded); err != nil {
		return fmt.Errorf("%w %s: %w", ErrSchemaMismatch, v.name, err)
	}
	return nil
}
