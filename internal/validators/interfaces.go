// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks assembled configuration documents before they
// are emitted.
//
// Field rules already guarantee each value on its own; a Validator checks
// the document as a whole, the way the consuming service will read it.
//
// Usage patterns:
//  1. Obtain a Validator for a rule-set with [ForSchema].
//  2. Call Validate on the built document before writing it out.
package validators

import "github.com/MKhiriev/pool-cfggen/internal/document"

// Validator defines a whole-document validation step.
type Validator interface {
	// Validate returns nil if doc is acceptable to its consumer.
	Validate(doc *document.Document) error
}
