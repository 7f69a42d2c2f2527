package validators

import "errors"

var (
	// ErrInvalidSchema indicates a JSON Schema that fails to compile.
	ErrInvalidSchema = errors.New("invalid JSON schema")
	// ErrSchemaMismatch indicates a document that does not satisfy its
	// JSON Schema.
	ErrSchemaMismatch = errors.New("document does not match schema")
)
