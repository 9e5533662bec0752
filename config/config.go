// Package config loads tempstats settings from a YAML file.
//
// Example configuration:
//
//	sensor: mcp9808
//	samples: 10
//	interval: 2s
//	target: 21.5
//	threshold: 0
//	format: json
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given. It's fine for it not to
// exist.
const DefaultPath = "~/.tempstats.yaml"

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	// Sensor is the name of the registered sensor used by the sense command.
	Sensor string `yaml:"sensor"`

	// Samples is the number of readings the sense command takes.
	Samples int `yaml:"samples"`

	// Interval is the time between consecutive sensor readings.
	Interval Duration `yaml:"interval"`

	// Target is the value the closest command compares against. If unset
	// the closest command finds the reading closest to zero.
	Target *float64 `yaml:"target"`

	// Threshold is the default for the below and atleast commands.
	Threshold float64 `yaml:"threshold"`

	// Format is either "text" or "json".
	Format string `yaml:"format"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func Default() *Config {
	return &Config{
		Sensor:   "dummy",
		Samples:  5,
		Interval: Duration(time.Second),
		Format:   FormatText,
	}
}

// Load reads the config file at path, expanding a leading ~. If path is
// DefaultPath and the file doesn't exist, Load returns Default().
func Load(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data. Unset fields take their values from
// Default().
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Sensor == "" {
		return errors.New("sensor must not be empty")
	}
	if c.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Samples)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval cannot be negative, got %s", c.Interval.Duration())
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	return nil
}
