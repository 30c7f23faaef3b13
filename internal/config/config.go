// Package config loads the optional moodlog user config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/chaz8081/moodlog/internal/mood"
	yaml "gopkg.in/yaml.v3"
)

// EnvDBPath overrides the database path from the config file.
const EnvDBPath = "MOODLOG_DBPATH"

// Config represents config.yaml.
type Config struct {
	DBPath  string `yaml:"dbpath,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Load reads and parses the config file at path. A missing file yields an
// empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses config.yaml content from bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// ApplyEnv lets MOODLOG_DBPATH take priority over the file value.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
}

// Validate checks the config for correctness.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return nil
	}
	if _, err := mood.ValidateDBPath(c.DBPath); err != nil {
		return fmt.Errorf("config dbpath: %w", err)
	}
	return nil
}
