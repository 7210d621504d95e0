// Package config loads the avlout command configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/aerotools/avlout/pkg/avlout"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the avlout command configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty"`
	// Concurrency limits parallel file parsing (0 = number of CPUs).
	Concurrency int `yaml:"concurrency"`
	// Strictness maps a file extension (ft, fn, ...) to strict or lenient.
	Strictness map[string]string `yaml:"strictness"`
	// Outputs lists the output names read from a run directory, e.g. Totals, StripForces.
	// Empty means the outputs AVL writes for every run case (all but SystemMatrix and Eigenvalues).
	Outputs []string `yaml:"outputs"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "warn",
		Strictness: map[string]string{},
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks extensions, strictness values, output names and the log level.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	for ext, s := range c.Strictness {
		if !avlout.Format(strings.ToLower(ext)).Known() {
			return fmt.Errorf("strictness: unknown output extension %q", ext)
		}
		switch avlout.Strictness(s) {
		case avlout.Strict, avlout.Lenient:
		default:
			return fmt.Errorf("strictness: %q must be strict or lenient", s)
		}
	}
	for _, name := range c.Outputs {
		if _, ok := avlout.FormatByOutput(name); !ok {
			return fmt.Errorf("outputs: invalid output %q", name)
		}
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative")
	}
	return nil
}

// Formats returns the formats named by Outputs, or the per-case session outputs.
func (c *Config) Formats() []avlout.Format {
	if len(c.Outputs) == 0 {
		return avlout.SessionFormats()
	}
	formats := make([]avlout.Format, 0, len(c.Outputs))
	for _, name := range c.Outputs {
		if f, ok := avlout.FormatByOutput(name); ok {
			formats = append(formats, f)
		}
	}
	return formats
}

// Options converts the configuration to parse options using logger.
func (c *Config) Options(logger *zap.Logger) avlout.Options {
	opts := avlout.DefaultOptions()
	opts.Logger = logger
	opts.Concurrency = c.Concurrency
	if len(c.Strictness) > 0 {
		opts.Strictness = make(map[avlout.Format]avlout.Strictness, len(c.Strictness))
		for ext, s := range c.Strictness {
			opts.Strictness[avlout.Format(strings.ToLower(ext))] = avlout.Strictness(s)
		}
	}
	return opts
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
