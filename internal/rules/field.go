// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

// Kind selects how a [Field] is read, coerced and validated.
type Kind int

const (
	// KindRequiredString is a trimmed string that must be non-empty.
	KindRequiredString Kind = iota + 1
	// KindOptionalString is a trimmed string with a default for absent input.
	KindOptionalString
	// KindRequiredList is a comma-separated list of non-empty trimmed items.
	KindRequiredList
	// KindFlag is a boolean feature flag; it never fails.
	KindFlag
	// KindInt is a base-10 integer with a default.
	KindInt
	// KindJSON is a raw JSON value. Empty collections and empty values
	// are rejected.
	KindJSON
	// KindRecord is a nested record built from its child fields.
	KindRecord
	// KindWhen is a conditional group: its children are validated and
	// emitted only when the controlling flag is true.
	KindWhen
	// KindDynamicMap maps every element of a validated list to the input
	// named prefix+element.
	KindDynamicMap
)

var kindNames = map[Kind]string{
	KindRequiredString: "required-string",
	KindOptionalString: "optional-string",
	KindRequiredList:   "required-list",
	KindFlag:           "flag",
	KindInt:            "int",
	KindJSON:           "json",
	KindRecord:         "record",
	KindWhen:           "when",
	KindDynamicMap:     "dynamic-map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Field is the declarative rule attached to one output key.
//
// Paths used by DefaultFrom, MemberOf, Keys and Flag are dotted output paths
// of fields declared earlier (e.g. "AvailableCoins", "Kafka.Brokers").
type Field struct {
	Kind Kind
	// Key is the output key. Empty for KindWhen.
	Key string
	// Input is the input name; for KindDynamicMap it is the name prefix.
	Input string

	// Default is used by KindOptionalString when Input is absent.
	Default string
	// DefaultInt is used by KindInt when Input is absent or blank.
	DefaultInt int64
	// DefaultFrom, when set, makes the KindInt default the value of the
	// referenced integer multiplied by DefaultFactor.
	DefaultFrom   string
	DefaultFactor int64

	// MemberOf requires the value (or every list element) to be an element
	// of the referenced list.
	MemberOf string
	// Suffix is appended to a non-empty string value that does not end with it.
	Suffix string
	// Secret marks the value for redaction in masked output.
	Secret bool

	// Object requires the JSON value to be an object.
	Object bool
	// StringValues requires every value of a JSON object to be a string.
	StringValues bool

	// Keys is the list driving a KindDynamicMap.
	Keys string
	// Strict makes every dynamic map lookup required; otherwise absent or
	// empty lookups are left out of the map.
	Strict bool
	// Skip lists driving elements that are never looked up.
	Skip []string
	// UniqueValues rejects two keys mapping to the same value.
	UniqueValues bool
	// OneOrAll requires the map to hold exactly one key or every
	// non-skipped key.
	OneOrAll bool

	// Flag is the controlling flag path of a KindWhen.
	Flag string
	// Fields are the children of a KindRecord or KindWhen.
	Fields []Field
}

// Schema is a named, ordered rule-set. Field order is the output order.
type Schema struct {
	Name   string
	Fields []Field
}

func RequiredString(key, input string) Field {
	return Field{Kind: KindRequiredString, Key: key, Input: input}
}

func OptionalString(key, input, def string) Field {
	return Field{Kind: KindOptionalString, Key: key, Input: input, Default: def}
}

func RequiredList(key, input string) Field {
	return Field{Kind: KindRequiredList, Key: key, Input: input}
}

func Flag(key, input string) Field {
	return Field{Kind: KindFlag, Key: key, Input: input}
}

func Int(key, input string, def int64) Field {
	return Field{Kind: KindInt, Key: key, Input: input, DefaultInt: def}
}

func JSON(key, input string) Field {
	return Field{Kind: KindJSON, Key: key, Input: input}
}

func Record(key string, fields ...Field) Field {
	return Field{Kind: KindRecord, Key: key, Fields: fields}
}

// When gates fields behind the flag at path flag.
func When(flag string, fields ...Field) Field {
	return Field{Kind: KindWhen, Flag: flag, Fields: fields}
}

// DynamicMap builds key → input[prefix+element] for every element of the
// list at path keys.
func DynamicMap(key, keys, prefix string, strict bool) Field {
	return Field{Kind: KindDynamicMap, Key: key, Keys: keys, Input: prefix, Strict: strict}
}

func (f Field) WithSecret() Field {
	f.Secret = true
	return f
}

func (f Field) WithMemberOf(path string) Field {
	f.MemberOf = path
	return f
}

func (f Field) WithDefaultFrom(path string, factor int64) Field {
	f.DefaultFrom = path
	f.DefaultFactor = factor
	return f
}

func (f Field) WithSuffix(suffix string) Field {
	f.Suffix = suffix
	return f
}

func (f Field) WithStringValues() Field {
	f.StringValues = true
	return f
}

func (f Field) WithObject() Field {
	f.Object = true
	return f
}

func (f Field) WithSkip(keys ...string) Field {
	f.Skip = append(append([]string(nil), f.Skip...), keys...)
	return f
}

func (f Field) WithUniqueValues() Field {
	f.UniqueValues = true
	return f
}

func (f Field) WithOneOrAll() Field {
	f.OneOrAll = true
	return f
}

// Evaluation phases. Top-level fields run phase by phase so that flags,
// conditional groups and dynamic maps always see the values they depend on.
const (
	phaseScalar = iota + 1
	phaseJSON
	phaseFlag
	phaseConditional
	phaseDynamic
)

func (f Field) phase() int {
	switch f.Kind {
	case KindJSON:
		return phaseJSON
	case KindFlag:
		return phaseFlag
	case KindWhen:
		return phaseConditional
	case KindDynamicMap:
		return phaseDynamic
	case KindRecord:
		p := phaseScalar
		for _, child := range f.Fields {
			p = max(p, child.phase())
		}
		return p
	default:
		return phaseScalar
	}
}
