// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document implements the ordered configuration tree emitted by the
// generator.
//
// A Document keeps its keys in insertion order so that the serialized JSON
// follows the field order downstream deserializers expect. Values are one of:
// string, int64, bool, []string, RawJSON or a nested *Document (used both for
// nested records and for string→string maps).
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Placeholder replaces secret values in masked copies of a Document.
const Placeholder = "***"

// Document is an ordered tree of named values.
type Document struct {
	values *orderedmap.OrderedMap[string, any]
	secret map[string]bool
}

// New returns an empty Document.
func New() *Document {
	return &Document{
		values: orderedmap.New[string, any](),
		secret: make(map[string]bool),
	}
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its position.
func (d *Document) Set(key string, value any) {
	d.values.Set(key, value)
	delete(d.secret, key)
}

// SetSecret stores value under key and marks it for redaction by [Document.Masked].
func (d *Document) SetSecret(key string, value any) {
	d.Set(key, value)
	d.secret[key] = true
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	return d.values.Get(key)
}

// Path resolves a dotted path such as "Kafka.Brokers" through nested documents.
func (d *Document) Path(path string) (any, bool) {
	cur := d
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur.values.Get(part)
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		next, ok := v.(*Document)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.values.Len())
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return d.values.Len()
}

// IsSecret reports whether key was stored with [Document.SetSecret].
func (d *Document) IsSecret(key string) bool {
	return d.secret[key]
}

// Append copies every key of other into d, in other's order, keeping the
// secret markers.
func (d *Document) Append(other *Document) {
	for pair := other.values.Oldest(); pair != nil; pair = pair.Next() {
		if other.secret[pair.Key] {
			d.SetSecret(pair.Key, pair.Value)
			continue
		}
		d.Set(pair.Key, pair.Value)
	}
}

// Masked returns a deep copy of d in which every secret value is replaced
// with [Placeholder]. The receiver is left untouched.
func (d *Document) Masked() *Document {
	out := New()
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		if d.secret[pair.Key] {
			out.SetSecret(pair.Key, Placeholder)
			continue
		}
		v := pair.Value
		if nested, ok := v.(*Document); ok {
			v = nested.Masked()
		}
		out.Set(pair.Key, v)
	}
	return out
}

// MarshalJSON encodes the document as a JSON object in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.values.MarshalJSON()
}

// Encode writes d to w as indented JSON followed by a newline.
func Encode(w io.Writer, d *Document) error {
	raw, err := d.MarshalJSON()
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "    "); err != nil {
		return fmt.Errorf("error indenting document: %w", err)
	}
	out.WriteByte('\n')

	_, err = w.Write(out.Bytes())
	return err
}
