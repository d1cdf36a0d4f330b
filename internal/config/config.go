// Package config holds the minpairs configuration, loaded from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"minpairs/internal/generator"
)

// Config holds all minpairs configuration.
type Config struct {
	// Input data files
	Data DataConfig `yaml:"data"`

	// Generation engine settings
	Generation GenerationConfig `yaml:"generation"`

	// Output settings
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the input CSV files.
type DataConfig struct {
	LexiconPath   string `yaml:"lexicon"`
	SequencesPath string `yaml:"sequences"`
}

// GenerationConfig tunes the generation engine.
type GenerationConfig struct {
	// Pairs is the target number of pairs per run.
	Pairs int `yaml:"pairs"`
	// Violations selects the violation policy: "all" or "first".
	Violations string `yaml:"violations"`
	// SlotAttempts bounds word re-selection at a verb slot.
	SlotAttempts int `yaml:"slot_attempts"`
	// BudgetMultiplier sizes the template retry budget as pairs × multiplier.
	BudgetMultiplier int `yaml:"budget_multiplier"`
	// Runs is the number of independent parallel runs.
	Runs int `yaml:"runs"`
}

// OutputConfig controls where generated pairs go.
type OutputConfig struct {
	// DatabasePath is the SQLite file for persisted runs; empty disables
	// persistence.
	DatabasePath string `yaml:"database_path"`
	// Quiet suppresses per-pair terminal output.
	Quiet bool `yaml:"quiet"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			LexiconPath:   "lexicon.csv",
			SequencesPath: "sequences.csv",
		},
		Generation: GenerationConfig{
			Pairs:            120,
			Violations:       string(generator.ViolateAll),
			SlotAttempts:     generator.DefaultSlotAttempts,
			BudgetMultiplier: generator.DefaultBudgetMultiplier,
			Runs:             1,
		},
		Output: OutputConfig{},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("MINPAIRS_DB"); path != "" {
		c.Output.DatabasePath = path
	}
	if path := os.Getenv("MINPAIRS_LEXICON"); path != "" {
		c.Data.LexiconPath = path
	}
	if path := os.Getenv("MINPAIRS_SEQUENCES"); path != "" {
		c.Data.SequencesPath = path
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch generator.Policy(c.Generation.Violations) {
	case generator.ViolateAll, generator.ViolateFirst:
	default:
		return fmt.Errorf("invalid violations policy %q (want %q or %q)",
			c.Generation.Violations, generator.ViolateAll, generator.ViolateFirst)
	}
	if c.Generation.Pairs < 0 {
		return fmt.Errorf("generation.pairs must not be negative, got %d", c.Generation.Pairs)
	}
	if c.Generation.Runs < 0 {
		return fmt.Errorf("generation.runs must not be negative, got %d", c.Generation.Runs)
	}
	return nil
}

// Policy returns the configured violation policy.
func (c *Config) Policy() generator.Policy {
	return generator.Policy(c.Generation.Violations)
}
