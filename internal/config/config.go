// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ratefinder/internal/logging"
)

// Config is the main application configuration.
// It is a plain value passed into the components that need it; there is
// no package-level instance.
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Data contains rate-sheet loading configuration
	Data DataConfig `json:"data"`

	// Cache contains cache configuration
	Cache CacheConfig `json:"cache"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DataConfig contains rate-sheet loading settings
type DataConfig struct {
	// Directory is where rate-sheet PDFs are looked up
	Directory string `json:"directory"`

	// MaxFileSizeMB is the maximum accepted PDF size
	MaxFileSizeMB int `json:"max_file_size_mb"`

	// VariantsFile optionally overrides the built-in service alias table (YAML)
	VariantsFile string `json:"variants_file,omitempty"`
}

// CacheConfig contains cache-related settings
type CacheConfig struct {
	// Enabled enables search result caching
	Enabled bool `json:"enabled"`

	// TTLSeconds is how long cached results stay valid
	TTLSeconds int `json:"ttl_seconds"`

	// Path is the SQLite cache file; empty selects the in-memory cache
	Path string `json:"path,omitempty"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	base := filepath.Join(homeDir, ".ratefinder")

	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Directory:     filepath.Join(base, "rates"),
			MaxFileSizeMB: 50,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 3600,
			Path:       filepath.Join(base, "cache.db"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
