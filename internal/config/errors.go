package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// options are incomplete or invalid.
var (
	// ErrMissingSchema indicates that no rule-set name was given.
	ErrMissingSchema = errors.New("schema name is required")
	// ErrInvalidIntPolicy indicates an unknown integer coercion policy.
	ErrInvalidIntPolicy = errors.New("invalid integer policy")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
