// Package config loads and saves the user-facing configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AIConfig toggles the individual AI features. Each one degrades
// gracefully when disabled or when no API key is present.
type AIConfig struct {
	EnableAuthorLookup       bool `yaml:"enable_author_lookup"`
	EnableDuplicateDetection bool `yaml:"enable_duplicate_detection"`
	EnableExplanations       bool `yaml:"enable_explanations"`
	EnableWebSearchAuthor    bool `yaml:"enable_web_search_author"`
}

// StorageConfig selects the storage backend.
type StorageConfig struct {
	// Backend is "jsonfile" or "sqlite".
	Backend string `yaml:"backend"`
	// Path overrides the default data file location when set.
	Path string `yaml:"path,omitempty"`
}

// DailyConfig controls the daily quote feature.
type DailyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the on-disk configuration.
type Config struct {
	Theme            string        `yaml:"theme"`
	CustomCategories []string      `yaml:"custom_categories,omitempty"`
	Storage          StorageConfig `yaml:"storage"`
	AI               AIConfig      `yaml:"ai"`
	Daily            DailyConfig   `yaml:"daily"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:   "auto",
		Storage: StorageConfig{Backend: "jsonfile"},
		AI: AIConfig{
			EnableAuthorLookup:       true,
			EnableDuplicateDetection: true,
			EnableExplanations:       true,
			EnableWebSearchAuthor:    true,
		},
		Daily: DailyConfig{Enabled: true},
	}
}

// DefaultPath returns the config file location: $QUOTES_CONFIG when set,
// otherwise the platform user config dir.
func DefaultPath() (string, error) {
	if p := os.Getenv("QUOTES_CONFIG"); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config dir: %w", err)
	}
	return filepath.Join(base, "quotes", "config.yaml"), nil
}

// DefaultDataDir returns where quote data lives: $QUOTES_DATA_DIR when
// set, otherwise ~/.local/share/quotes.
func DefaultDataDir() (string, error) {
	if p := os.Getenv("QUOTES_DATA_DIR"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "quotes"), nil
}

// Load reads the config file at path. A missing file yields the defaults;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
