package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable consulted when --config is not
// given.
const configEnv = "EYEUTIL_CONFIG"

// Config holds tool defaults that are not worth retyping on every call.
// Flags override whatever is configured here.
type Config struct {
	Order      string  `yaml:"order"`
	DumpLength int64   `yaml:"dump_length"`
	MinStrLen  int     `yaml:"min_string_length"`
	Logging    Logging `yaml:"logging"`
}

// Logging holds the logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Order:      "little",
		DumpLength: 256,
		MinStrLen:  1,
		Logging:    Logging{Level: "info"},
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults, so a
// file only needs the keys it wants to change.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads the file named by the --config flag or $EYEUTIL_CONFIG,
// falling back to the defaults when neither is set.
func resolveConfig(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
