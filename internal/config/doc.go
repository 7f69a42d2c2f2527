// Package config loads the generator's own runtime options: which rule-set
// to apply, where to read extra inputs from, where to write the document,
// and how to log.
//
// Options are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (CFGGEN_*)
//  2. Command-line flags
//  3. JSON options file (-config / CFGGEN_CONFIG)
//
// The main entry point is [GetStructuredConfig].
package config
