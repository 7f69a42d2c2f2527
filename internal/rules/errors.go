package rules

import (
	"errors"
	"fmt"
)

// Failure classes. Every error returned by [Builder.Build] wraps exactly one
// of them inside a [*FieldError].
var (
	// ErrMissingRequiredField indicates a required input that is absent or
	// empty after trimming.
	ErrMissingRequiredField = errors.New("missing or empty")
	// ErrInvalidListContent indicates a comma-separated list holding an
	// empty element.
	ErrInvalidListContent = errors.New("list contains an empty element")
	// ErrInvalidJSON indicates a JSON-valued input that does not parse or
	// parses to an empty or wrongly shaped value.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrReferentialViolation indicates a value missing from the value set
	// of another field, or a map breaking its coverage rules.
	ErrReferentialViolation = errors.New("referential check failed")
	// ErrInvalidInteger indicates a non-numeric integer input under the
	// strict integer policy.
	ErrInvalidInteger = errors.New("not a base-10 integer")
	// ErrUnknownField indicates a rule-set referencing a field that has not
	// been validated yet.
	ErrUnknownField = errors.New("references an unvalidated field")
)

// FieldError is the diagnostic for the first field that failed.
type FieldError struct {
	// Field is the input name (or output path for schema errors).
	Field string
	// Detail narrows the failure down, e.g. the parser message or the
	// referenced field name.
	Detail string
	// Value is the offending raw text. It stays empty for secret fields.
	Value string
	// Err is one of the failure classes above.
	Err error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Field, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Value != "" {
		msg += ": " + e.Value
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error, detail, value string) *FieldError {
	return &FieldError{Field: field, Err: err, Detail: detail, Value: value}
}
