package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath  string // yaml or hcl fleet definition, file or directory
	Environment string // environment to expand

	Strict     bool   // run the topology lint before expansion
	Watch      bool   // re-run the pipeline on config file changes
	OutputPath string // descriptor destination, empty or "-" for stdout

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Environment == "" {
		return nil, errors.New("Environment is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
