package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultTable is the well-metadata table managed by the tool.
const DefaultTable = "wells"

// Config represents the flat wells configuration
type Config struct {
	Version string `json:"version"`
	DBPath  string `json:"db_path"`          // path to the SQLite database file
	Table   string `json:"table,omitempty"`  // well table name, defaults to "wells"
}

// Default returns a config pointing at .wells/wells.db under dir.
func Default(dir string) *Config {
	return &Config{
		Version: "1",
		DBPath:  filepath.Join(dir, ".wells", "wells.db"),
		Table:   DefaultTable,
	}
}

// LoadConfig reads .wells/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".wells", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	wellsDir := filepath.Join(dir, ".wells")
	if err := os.MkdirAll(wellsDir, 0755); err != nil {
		return fmt.Errorf("failed to create .wells dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(wellsDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
