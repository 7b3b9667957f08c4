package app

import (
	"errors"
	"os"
)

// DefaultHostType identifies the CLI host in configuration host sections.
const DefaultHostType = "cli"

// Config holds everything an App instance needs to run one service cycle.
type Config struct {
	ConfigPath string            // service configuration file (.hcl or .json)
	HostType   string            // key into the configuration's host sections
	Overrides  map[string]string // explicit parameter overrides, highest priority
	IncludeEnv bool              // consult SERVICE_-prefixed environment variables

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.HostType == "" {
		cfg.HostType = DefaultHostType
	}
	return &cfg, nil
}

// DefaultConfigPath returns the configuration path used when the caller
// supplies none: the SERVICE_CONFIG_PATH environment variable, then the
// conventional ./service/config.hcl.
func DefaultConfigPath() string {
	if p := os.Getenv("SERVICE_CONFIG_PATH"); p != "" {
		return p
	}
	return "./service/config.hcl"
}
