// Package config loads lvpuzzle settings from an optional YAML file and
// LVPUZZLE_* environment variables. Precedence is defaults < file < env;
// command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "lvpuzzle.yaml"

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all lvpuzzle configuration.
type Config struct {
	// InputDir holds day<N>.txt files used when a day has no explicit input.
	InputDir string `yaml:"input_dir"`

	// Inputs maps a day number to an explicit input path.
	Inputs map[int]string `yaml:"inputs"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures diagnostics on stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// envOverlay lists the environment variables that override the file.
type envOverlay struct {
	InputDir  string `env:"LVPUZZLE_INPUT_DIR"`
	LogLevel  string `env:"LVPUZZLE_LOG_LEVEL"`
	LogFormat string `env:"LVPUZZLE_LOG_FORMAT"`
}

// Default returns the built-in configuration: inputs/day<N>.txt, warnings
// and errors only, console encoding.
func Default() *Config {
	return &Config{
		InputDir: "inputs",
		Inputs:   map[int]string{},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads path (a missing file means defaults) and overlays the process
// environment.
func Load(path string) (*Config, error) {
	return load(path, env.Options{})
}

// LoadWithEnv is Load with an explicit environment instead of os.Environ.
func LoadWithEnv(path string, environ map[string]string) (*Config, error) {
	return load(path, env.Options{Environment: environ})
}

func load(path string, opts env.Options) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	overlay, err := env.ParseAsWithOptions[envOverlay](opts)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	cfg.apply(overlay)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) apply(o envOverlay) {
	if o.InputDir != "" {
		c.InputDir = o.InputDir
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
}

// Validate checks enumerated fields. Log levels are checked when the
// logger is built.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want console or json)", ErrInvalid, c.Logging.Format)
	}
	for day, p := range c.Inputs {
		if day < 1 {
			return fmt.Errorf("%w: inputs key %d (days start at 1)", ErrInvalid, day)
		}
		if p == "" {
			return fmt.Errorf("%w: inputs[%d] is empty", ErrInvalid, day)
		}
	}

	return nil
}

// InputPath returns the input file for day: an explicit Inputs entry, or
// InputDir/day<N>.txt.
func (c *Config) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok {
		return p
	}
	return filepath.Join(c.InputDir, fmt.Sprintf("day%d.txt", day))
}
