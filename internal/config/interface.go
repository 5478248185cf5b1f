package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads a fleet definition from the given path and translates it
	// into the format-agnostic model. It fails fast on malformed documents
	// and on missing required fields (entity names, subscriber sources);
	// structural rules such as quantity bounds are left to the validator.
	Load(ctx context.Context, path string) (*Config, error)
}
