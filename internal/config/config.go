package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level agent.yaml configuration.
type Config struct {
	User   UserConfig   `yaml:"user"`
	Ledger LedgerConfig `yaml:"ledger"`
	Model  ModelConfig  `yaml:"model"`
}

// UserConfig identifies the person the agent talks to.
type UserConfig struct {
	Name string `yaml:"name"`
}

// LedgerConfig locates the transaction data and the rule table.
type LedgerConfig struct {
	Path    string `yaml:"path,omitempty"` // single CSV file; empty = scan DataDir
	DataDir string `yaml:"data_dir"`
	Format  string `yaml:"format"` // importer format name, e.g. "sparkasse"
	Rules   string `yaml:"rules"`  // rule table YAML; empty = built-in table

	// ReferenceYear is the year month names resolve to. The source data
	// decides nothing here; months outside this year will not resolve.
	ReferenceYear int `yaml:"reference_year"`
}

// ModelConfig controls the intent classifier.
type ModelConfig struct {
	Name           string `yaml:"name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the classification timeout as a duration.
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// Load reads an agent.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(userName string) *Config {
	return &Config{
		User: UserConfig{
			Name: userName,
		},
		Ledger: LedgerConfig{
			DataDir:       "data",
			Format:        "sparkasse",
			Rules:         "rules/category-rules.yaml",
			ReferenceYear: 2025,
		},
		Model: ModelConfig{
			Name:           "gemini-2.5-flash",
			TimeoutSeconds: 15,
		},
	}
}
