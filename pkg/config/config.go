// Package config loads runtime settings from a .env file and AOC_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Prefix is prepended to every variable name, e.g. AOC_INPUT_DIR.
const Prefix = "AOC"

// Defaults mirrored by the struct tags below.
const (
	DefaultInputDir  = "inputs"
	DefaultDatastore = "aoc.db"
	DefaultLogLevel  = "info"
	DefaultWorkers   = 1
	DefaultColor     = "auto"
)

// Config holds environment-based configuration.
type Config struct {
	// InputDir holds puzzle inputs named day_NN.txt.
	// Env: AOC_INPUT_DIR (default: inputs)
	InputDir string `envconfig:"INPUT_DIR" default:"inputs"`

	// Datastore is the answer history database.
	// Env: AOC_DATASTORE (default: aoc.db)
	Datastore string `envconfig:"DATASTORE" default:"aoc.db"`

	// LogLevel is the zap level name.
	// Env: AOC_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Workers bounds concurrent seed-range translation.
	// Env: AOC_WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`

	// Color is auto, always or never.
	// Env: AOC_COLOR (default: auto)
	Color string `envconfig:"COLOR" default:"auto"`
}

// LoadFromEnv loads configuration from AOC_* environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the .env file at envPath (skipped when missing), then the
// environment, and validates the result.
func Load(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", envPath, err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always or never", c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
