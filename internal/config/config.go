// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied by MergeWithDefaults when a field is left empty.
const (
	DefaultTeamSize  = 7
	DefaultPort      = 8080
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "text"
	DefaultWorkers   = 4
	DefaultRuns      = 1000
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Team building
	TeamSize int     `json:"team_size,omitempty" yaml:"team_size,omitempty" validate:"gte=0"` // Members per full team
	Seed     *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`                            // Fixed random seed (reproducible builds)

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty" validate:"gte=0,lte=65535"` // HTTP listen port

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=text json"`

	// Simulation
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0"` // Concurrent simulation runs
	Runs    int `json:"runs,omitempty" yaml:"runs,omitempty" validate:"gte=0"`       // Builds per simulation
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
// (.yaml and .yml are YAML, anything else is JSON).
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are allowed everywhere since they mean "use the default".
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TeamSize:  DefaultTeamSize,
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Workers:   DefaultWorkers,
		Runs:      DefaultRuns,
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TeamSize == 0 {
		result.TeamSize = defaults.TeamSize
	}
	if result.Seed == nil {
		result.Seed = defaults.Seed
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Runs == 0 {
		result.Runs = defaults.Runs
	}

	return result
}
