package config

import "fmt"

// Config holds the settings of the pipeloop command. Values come from the
// defaults, then an optional YAML file, then the environment, then flags.
type Config struct {
	// Input is the path of the grid file. Empty means the built-in sample.
	Input string `yaml:"input"`

	// Part selects the answer: 1 for the farthest distance, 2 for the
	// interior tile count.
	Part int `yaml:"part"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`

	// Verbose logs every tile the loop walk enters.
	Verbose bool `yaml:"verbose"`

	// MaxSteps bounds the loop walk; zero means the grid size.
	MaxSteps int `yaml:"max_steps"`
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}
