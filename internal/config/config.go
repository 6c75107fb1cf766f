// Package config loads percolation run settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of one percolation run.
// Zero Seed means "seed from the runtime".
type Config struct {
	N        int    `yaml:"n"`
	Trials   int    `yaml:"trials"`
	Seed     uint64 `yaml:"seed"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with one worker and warn logging. N and Trials
// are left zero and must be set by the file or the command line.
func Default() Config {
	return Config{
		Workers:  1,
		LogLevel: "warn",
	}
}

// Load reads path over Default(). Fields absent from the file keep their
// defaults; unknown fields are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.N <= 0:
		return fmt.Errorf("%w: n must be a positive integer, got %d", ErrInvalidConfig, c.N)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be a positive integer, got %d", ErrInvalidConfig, c.Trials)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}
