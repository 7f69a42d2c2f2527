package rules

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/pool-cfggen/internal/document"
)

// requireTrimmedString returns the trimmed input or ErrMissingRequiredField.
func (e *evaluation) requireTrimmedString(name string) (string, error) {
	raw, ok := e.src.Lookup(name)
	v := strings.TrimSpace(raw)
	if !ok || v == "" {
		return "", fieldError(name, ErrMissingRequiredField, "", "")
	}
	return v, nil
}

// optionalTrimmedString returns the trimmed input, or def when the name is
// absent. A present empty value stays empty.
func (e *evaluation) optionalTrimmedString(name, def string) string {
	raw, ok := e.src.Lookup(name)
	if !ok {
		return def
	}
	return strings.TrimSpace(raw)
}

// requireCommaSeparatedList splits the input on ',' and trims every element.
// Element order is kept.
func (e *evaluation) requireCommaSeparatedList(name string) ([]string, error) {
	raw, ok := e.src.Lookup(name)
	trimmed := strings.TrimSpace(raw)
	if !ok || trimmed == "" {
		return nil, fieldError(name, ErrMissingRequiredField, "", "")
	}

	items := strings.Split(trimmed, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
		if items[i] == "" {
			return nil, fieldError(name, ErrInvalidListContent, fmt.Sprintf("element %d", i), raw)
		}
	}
	return items, nil
}

// parseBooleanFlag matches the raw, untrimmed input against TruthyTokens.
func (e *evaluation) parseBooleanFlag(name string) bool {
	raw, ok := e.src.Lookup(name)
	return ok && isTruthy(raw)
}

// parseIntWithDefault parses the trimmed input as a base-10 integer. Absent
// and blank inputs yield def.
func (e *evaluation) parseIntWithDefault(name string, def int64) (int64, error) {
	raw, ok := e.src.Lookup(name)
	v := strings.TrimSpace(raw)
	if !ok || v == "" {
		return def, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		return n, nil
	}
	if e.policy == IntLenient {
		return leadingInt(v), nil
	}
	return 0, fieldError(name, ErrInvalidInteger, "", raw)
}

// leadingInt parses an optional sign followed by digits at the start of s.
// Anything else, or overflow, yields 0.
func leadingInt(s string) int64 {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseJSONOrFail requires a non-empty input holding valid JSON that is not
// an empty collection and holds no empty value, and returns it in compact
// form. Secret inputs are never echoed.
func (e *evaluation) parseJSONOrFail(f Field) (document.RawJSON, error) {
	raw, err := e.requireTrimmedString(f.Input)
	if err != nil {
		return nil, err
	}
	echo := raw
	if f.Secret {
		echo = ""
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fieldError(f.Input, ErrInvalidJSON, err.Error(), echo)
	}

	if f.Object {
		if _, ok := parsed.(map[string]any); !ok {
			return nil, fieldError(f.Input, ErrInvalidJSON, "must be a JSON object", echo)
		}
	}

	if f.StringValues {
		if obj, ok := parsed.(map[string]any); ok {
			for k, v := range obj {
				if _, ok := v.(string); !ok {
					return nil, fieldError(f.Input, ErrInvalidJSON, "value of "+strconv.Quote(k)+" must be a string", echo)
				}
			}
		}
	}

	if detail := emptiness(parsed); detail != "" {
		return nil, fieldError(f.Input, ErrInvalidJSON, detail, echo)
	}

	compact, err := document.CompactJSON([]byte(raw))
	if err != nil {
		return nil, fieldError(f.Input, ErrInvalidJSON, err.Error(), echo)
	}
	return compact, nil
}

// emptiness describes why parsed is an empty collection or holds an empty
// value; it returns "" for acceptable values.
func emptiness(parsed any) string {
	var values []any
	switch v := parsed.(type) {
	case map[string]any:
		for _, item := range v {
			values = append(values, item)
		}
	case []any:
		values = v
	default:
		return ""
	}

	if len(values) == 0 {
		return "cannot be empty"
	}
	for _, item := range values {
		if item == nil || item == "" {
			return "contains an empty value"
		}
	}
	return ""
}

// buildDynamicMap looks up prefix+key for every key. Strict maps require
// every lookup; lenient maps leave out absent or empty ones.
func (e *evaluation) buildDynamicMap(keys []string, f Field) (*document.Document, error) {
	out := document.New()
	owners := make(map[string]string)
	expected := 0

	for _, key := range keys {
		if slices.Contains(f.Skip, key) {
			continue
		}
		expected++
		name := f.Input + key

		var value string
		if f.Strict {
			v, err := e.requireTrimmedString(name)
			if err != nil {
				return nil, err
			}
			value = v
		} else {
			value = e.optionalTrimmedString(name, "")
			if value == "" {
				continue
			}
		}

		if f.UniqueValues {
			if owner, dup := owners[value]; dup {
				return nil, fieldError(name, ErrReferentialViolation, "same value as "+f.Input+owner, "")
			}
			owners[value] = key
		}

		if f.Secret {
			out.SetSecret(key, value)
		} else {
			out.Set(key, value)
		}
	}

	if f.OneOrAll && out.Len() != 1 && out.Len() != expected {
		detail := fmt.Sprintf("%d of %d %s entries set, want exactly one or all", out.Len(), expected, f.Keys)
		return nil, fieldError(f.Input+"*", ErrReferentialViolation, detail, "")
	}
	return out, nil
}

// crossReferenceCheck fails if any value is not an element of allowed.
func crossReferenceCheck(values []string, allowed []string, field, allowedField string) error {
	for _, v := range values {
		if !slices.Contains(allowed, v) {
			return fieldError(field, ErrReferentialViolation, "not found in "+allowedField, v)
		}
	}
	return nil
}
