// Package yaml implements config.Loader for YAML fleet definitions, the
// primary on-disk format. Decoding is strict: unknown keys and missing
// required fields are load errors, so the validator and expander never see
// a half-formed model.
package yaml
