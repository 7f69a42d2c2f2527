// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inputs provides the read-only name→value namespace the generator
// reads its fields from.
//
// A Source distinguishes an absent name from a name that is present with an
// empty value; field rules treat the two states differently. Sources are
// built once before generation starts and are never mutated afterwards.
package inputs

//go:generate mockgen -source=source.go -destination=../mock/source_mock.go -package=mock

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// Source is a flat namespace of named string values.
type Source interface {
	// Lookup returns the raw value stored under name and whether the name
	// is present at all.
	Lookup(name string) (string, bool)
}

// Map is a Source backed by a plain map. It is used for explicit inputs in
// tests and as the snapshot type for the other constructors.
type Map map[string]string

// Lookup implements [Source].
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Environ snapshots a list of "NAME=value" pairs, as returned by
// os.Environ, into a Map. Entries without '=' are kept as present with an
// empty value. When a name repeats, the last entry wins.
func Environ(environ []string) Map {
	m := make(Map, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			continue
		}
		m[name] = value
	}
	return m
}

// DotEnv reads a dotenv file into a Map.
func DotEnv(path string) (Map, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}
	return Map(values), nil
}

type layered []Source

// Layered combines sources so that the first source holding a name wins.
// A name present with an empty value in an earlier source still shadows
// later sources.
func Layered(sources ...Source) Source {
	return layered(sources)
}

func (l layered) Lookup(name string) (string, bool) {
	for _, src := range l {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}
