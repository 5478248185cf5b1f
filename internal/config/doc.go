// Package config defines the format-agnostic model of a fabric fleet
// definition, along with the Loader interface for reading it from various
// sources.
//
// The `config.Config` is the single source of truth for the `validate` and
// `expand` packages. Concrete implementations of the Loader interface, such
// as for YAML or HCL, are provided in separate packages.
package config
