// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rules implements the generic engine that turns an input namespace
// into a configuration document according to a declarative [Schema].
//
// A build is a single sequential pass:
//  1. unconditional scalar, list and record fields;
//  2. JSON-valued fields;
//  3. boolean feature flags;
//  4. conditional groups whose flag is true;
//  5. dynamic-key maps driven by already validated lists;
//  6. assembly of all fragments in declaration order.
//
// The first failing field aborts the build with a [*FieldError]; no partial
// document is ever returned.
package rules

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/pool-cfggen/internal/document"
	"github.com/MKhiriev/pool-cfggen/internal/inputs"
	"github.com/MKhiriev/pool-cfggen/internal/logger"
)

// Builder evaluates one Schema.
type Builder struct {
	schema Schema
	policy IntPolicy
	log    *logger.Logger
}

// NewBuilder returns a Builder for schema. A nil log disables logging.
func NewBuilder(schema Schema, policy IntPolicy, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{
		schema: schema,
		policy: policy,
		log:    log,
	}
}

// Build reads src and returns the assembled document, or the first
// validation failure. Build does not modify src and may be called any number
// of times; identical inputs give identical documents.
func (b *Builder) Build(src inputs.Source) (*document.Document, error) {
	e := &evaluation{
		src:    src,
		policy: b.policy,
		values: make(map[string]any),
		log:    b.log,
	}

	fields := b.schema.Fields
	order := make([]int, len(fields))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, c int) int {
		return fields[a].phase() - fields[c].phase()
	})

	fragments := make([]*document.Document, len(fields))
	for _, i := range order {
		frag := document.New()
		if err := e.eval("", fields[i], frag); err != nil {
			return nil, fmt.Errorf("%s: %w", b.schema.Name, err)
		}
		fragments[i] = frag
	}

	doc := document.New()
	for _, frag := range fragments {
		doc.Append(frag)
	}

	b.log.Debug().
		Str("schema", b.schema.Name).
		Int("fields", doc.Len()).
		Msg("config document assembled")

	return doc, nil
}

// evaluation holds the state of one Build call.
type evaluation struct {
	src    inputs.Source
	policy IntPolicy
	// values holds every validated value by dotted output path.
	values map[string]any
	log    *logger.Logger
}

// eval validates f and stores its output in into. prefix is the dotted path
// of the enclosing record ("" at top level, "UserAutoRegAPI." inside it).
func (e *evaluation) eval(prefix string, f Field, into *document.Document) error {
	path := prefix + f.Key

	var value any
	switch f.Kind {
	case KindRequiredString:
		v, err := e.requireTrimmedString(f.Input)
		if err != nil {
			return err
		}
		v = withSuffix(v, f.Suffix)
		if err := e.checkMembership(f, []string{v}); err != nil {
			return err
		}
		value = v

	case KindOptionalString:
		v := withSuffix(e.optionalTrimmedString(f.Input, f.Default), f.Suffix)
		if v != "" {
			if err := e.checkMembership(f, []string{v}); err != nil {
				return err
			}
		}
		value = v

	case KindRequiredList:
		v, err := e.requireCommaSeparatedList(f.Input)
		if err != nil {
			return err
		}
		if err := e.checkMembership(f, v); err != nil {
			return err
		}
		value = v

	case KindFlag:
		value = e.parseBooleanFlag(f.Input)

	case KindInt:
		def := f.DefaultInt
		if f.DefaultFrom != "" {
			base, err := e.intAt(f.DefaultFrom, path)
			if err != nil {
				return err
			}
			def = base * f.DefaultFactor
		}
		v, err := e.parseIntWithDefault(f.Input, def)
		if err != nil {
			if f.Secret {
				return redact(err)
			}
			return err
		}
		value = v

	case KindJSON:
		v, err := e.parseJSONOrFail(f)
		if err != nil {
			return err
		}
		value = v

	case KindRecord:
		rec := document.New()
		for _, child := range f.Fields {
			if err := e.eval(path+".", child, rec); err != nil {
				return err
			}
		}
		value = rec

	case KindWhen:
		on, err := e.boolAt(f.Flag)
		if err != nil {
			return err
		}
		if !on {
			e.log.Debug().Str("flag", f.Flag).Msg("conditional group disabled")
			return nil
		}
		for _, child := range f.Fields {
			if err := e.eval(prefix, child, into); err != nil {
				return err
			}
		}
		return nil

	case KindDynamicMap:
		keys, err := e.listAt(f.Keys, path)
		if err != nil {
			return err
		}
		m, err := e.buildDynamicMap(keys, f)
		if err != nil {
			return err
		}
		value = m

	default:
		return fieldError(path, ErrUnknownField, "unsupported field kind "+f.Kind.String(), "")
	}

	e.values[path] = value
	if f.Secret {
		into.SetSecret(f.Key, value)
	} else {
		into.Set(f.Key, value)
	}

	e.log.Debug().Str("field", path).Stringer("kind", f.Kind).Msg("field validated")
	return nil
}

func (e *evaluation) checkMembership(f Field, values []string) error {
	if f.MemberOf == "" {
		return nil
	}
	allowed, err := e.listAt(f.MemberOf, f.Input)
	if err != nil {
		return err
	}
	if err := crossReferenceCheck(values, allowed, f.Input, f.MemberOf); err != nil {
		if f.Secret {
			return redact(err)
		}
		return err
	}
	return nil
}

func (e *evaluation) listAt(path, referrer string) ([]string, error) {
	v, ok := e.values[path].([]string)
	if !ok {
		return nil, fieldError(referrer, ErrUnknownField, path+" is not a validated list", "")
	}
	return v, nil
}

func (e *evaluation) intAt(path, referrer string) (int64, error) {
	v, ok := e.values[path].(int64)
	if !ok {
		return 0, fieldError(referrer, ErrUnknownField, path+" is not a validated integer", "")
	}
	return v, nil
}

func (e *evaluation) boolAt(path string) (bool, error) {
	v, ok := e.values[path].(bool)
	if !ok {
		return false, fieldError(path, ErrUnknownField, "not a validated flag", "")
	}
	return v, nil
}

func withSuffix(v, suffix string) string {
	if v == "" || suffix == "" || strings.HasSuffix(v, suffix) {
		return v
	}
	return v + suffix
}

// redact drops the echoed value from a field error.
func redact(err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		fe.Value = ""
	}
	return err
}
