package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath    string // grid .hcl files
	ModulesPath string // manifest .hcl files

	// Passes is how many times the whole grid is invoked. Each pass invokes
	// every loop instance exactly once; state carries across passes.
	Passes int

	// NamesURL points at a running host whose live sampler/scheduler names
	// should be used. Empty selects the built-in fallback lists.
	NamesURL string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}
	if cfg.Passes < 1 {
		return nil, errors.New("Passes must be at least 1")
	}
	return &cfg, nil
}
