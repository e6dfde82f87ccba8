// Package config loads pipeloop settings from a YAML file, a .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultPart     = 1
	DefaultLogLevel = "warn"
)

// Environment variables read by ApplyEnv.
const (
	EnvInput    = "PIPELOOP_INPUT"
	EnvPart     = "PIPELOOP_PART"
	EnvLogLevel = "PIPELOOP_LOG_LEVEL"
	EnvVerbose  = "PIPELOOP_VERBOSE"
	EnvMaxSteps = "PIPELOOP_MAX_STEPS"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Part:     DefaultPart,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads and parses the YAML file at path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the process environment. Missing files are ignored; existing variables
// are never overwritten.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overlays PIPELOOP_* environment variables onto cfg and validates
// the result.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvInput); ok {
		cfg.Input = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPart); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ValidationError{Field: "part", Message: fmt.Sprintf("%s=%q is not a number", EnvPart, v)}
		}
		cfg.Part = n
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ValidationError{Field: "verbose", Message: fmt.Sprintf("%s=%q is not a boolean", EnvVerbose, v)}
		}
		cfg.Verbose = b
	}
	if v, ok := os.LookupEnv(EnvMaxSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ValidationError{Field: "max_steps", Message: fmt.Sprintf("%s=%q is not a number", EnvMaxSteps, v)}
		}
		cfg.MaxSteps = n
	}

	return Validate(cfg)
}

// Validate checks that cfg holds usable values.
func Validate(cfg *Config) error {
	if cfg.Part != 1 && cfg.Part != 2 {
		return ValidationError{Field: "part", Message: fmt.Sprintf("must be 1 or 2, got %d", cfg.Part)}
	}
	if cfg.MaxSteps < 0 {
		return ValidationError{Field: "max_steps", Message: "must be non-negative"}
	}
	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return ValidationError{Field: "log_level", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)}
		}
	}

	return nil
}
