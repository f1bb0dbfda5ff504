package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileNames lists the files searched for configuration, in order.
var configFileNames = []string{
	".gitflow.yml",
	".gitflow.yaml",
	"gitflow.yml",
}

// LoadFromFile reads and parses a gitflow configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses gitflow configuration from raw YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Discover loads configuration for a working directory: the defaults, with
// any config file found in dir merged on top. A missing file is not an error.
func Discover(dir string) (*Config, error) {
	cfg := DefaultConfig()

	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		return Merge(cfg, fileCfg), nil
	}

	return cfg, nil
}
