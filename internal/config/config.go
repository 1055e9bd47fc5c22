// Package config handles loading and saving user configuration for kazky.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user configuration.
type Config struct {
	// CorpusPath is the default lemma summary CSV, used when a command
	// gets no explicit path. May be a local path or an http(s) URL.
	CorpusPath string `yaml:"corpus_path"`

	// RowCap bounds how many rows a query renders. Zero falls back to
	// the built-in cap of 1000.
	RowCap int `yaml:"row_cap"`

	// StorySort orders the story list: "name", "words" or "new".
	StorySort string `yaml:"story_sort"`

	// CleanNames strips the collection title from story names on load.
	CleanNames bool `yaml:"clean_names"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		CorpusPath: "lemma_summary.csv",
		RowCap:     0,
		StorySort:  "name",
		CleanNames: true,
	}
}

// Load reads config.yaml from a directory. A missing file yields the
// defaults, not an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.yaml")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to config.yaml in a directory.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kazky"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
