// Package config loads the settings of the ytime command from a TOML or YAML file
package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ErrInvalidOutputFormat = errors.New("output format must be 'text' or 'json'")

type Config struct {
	// LeapSecondsFile is a YAML or TOML leap second table that replaces the built-in one. Relative paths are
	// resolved against the directory of the configuration file.
	LeapSecondsFile string `toml:"leap_seconds_file" yaml:"leap_seconds_file"`

	// Format is the output format, "text" or "json"
	Format string `toml:"format" yaml:"format"`

	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{Format: FormatText}
}

// Load reads a configuration file. Files ending in .toml are read as TOML and everything else as YAML. Settings
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file: %w", err)
	}
	defer f.Close()

	cfg := Default()

	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
		}
	} else {
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
		}
	}

	if cfg.LeapSecondsFile != "" {
		cfg.LeapSecondsFile = os.ExpandEnv(cfg.LeapSecondsFile)
		if !filepath.IsAbs(cfg.LeapSecondsFile) {
			cfg.LeapSecondsFile = filepath.Join(filepath.Dir(path), cfg.LeapSecondsFile)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config '%s': %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w, got '%s'", ErrInvalidOutputFormat, c.Format)
	}
}
