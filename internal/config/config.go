// ABOUTME: Tracker configuration with backend selection and recovery thresholds.
// ABOUTME: Handles settings, preferences, and the storage backend factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/wodtrack/internal/analytics"
	"github.com/harperreed/wodtrack/internal/charm"
	"github.com/harperreed/wodtrack/internal/storage"
)

// Config stores wodtrack configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or
	// "charm" (Charm KV with cloud sync).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// wodtrack.db here. Supports ~ expansion for home directory.
	// Defaults to ~/.local/share/wodtrack.
	DataDir string `json:"data_dir,omitempty"`

	// MinSleepHours is the sleep threshold below which the recovery
	// scorer accrues deficit points. Defaults to 7.
	MinSleepHours float64 `json:"min_sleep_hours,omitempty"`

	// GapResetDays is the largest gap between check-ins that still
	// counts as a continued training streak. Defaults to 2.
	GapResetDays int `json:"gap_reset_days,omitempty"`

	// WeightUnit is the display unit for load scores: "kg" (default)
	// or "lb".
	WeightUnit string `json:"weight_unit,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetWeightUnit returns the configured weight unit, defaulting to "kg".
func (c *Config) GetWeightUnit() string {
	if c.WeightUnit == "" {
		return "kg"
	}
	return c.WeightUnit
}

// RecoveryConfig returns the recovery thresholds, applying defaults for
// unset fields.
func (c *Config) RecoveryConfig() analytics.Config {
	cfg := analytics.DefaultConfig()
	if c.MinSleepHours > 0 {
		cfg.MinSleepHours = c.MinSleepHours
	}
	if c.GapResetDays > 0 {
		cfg.GapResetDays = c.GapResetDays
	}
	return cfg
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the
// configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "wodtrack.db")
		return storage.Open(dbPath)
	case "charm":
		return charm.Open()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "wodtrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
