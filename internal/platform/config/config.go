package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration, loaded from
// config.yaml inside the data directory.
type Config struct {
	// DataDir holds the persisted slots (and the config file itself).
	// Not serialized; resolved from the --data flag or $HOME.
	DataDir string `yaml:"-"`

	// Store selects the slot storage backend. Supported values:
	//   - "json" (default): one JSON file per slot
	//   - "sqlite": a single slots table in planner.db
	Store string `yaml:"store"`

	// WeekStart controls which weekday opens a calendar row.
	// Supported values: "monday" (default) or "sunday".
	WeekStart string `yaml:"week_start"`
}

func DefaultConfig() *Config {
	return &Config{
		Store:     "json",
		WeekStart: "monday",
	}
}

// Normalize fills missing or unknown values with defaults so that
// partially-filled configs from older versions still behave.
func (c *Config) Normalize() {
	switch c.Store {
	case "json", "sqlite":
	default:
		c.Store = "json"
	}
	switch c.WeekStart {
	case "monday", "sunday":
	default:
		c.WeekStart = "monday"
	}
}

// DBPath is the sqlite database location for the "sqlite" backend.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "planner.db")
}

func (c *Config) path() string {
	return filepath.Join(c.DataDir, "config.yaml")
}

// Load reads the config file under dataDir, creating a default one on
// first run. An empty dataDir resolves to $HOME/.studyplan.
func Load(dataDir string) (*Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".studyplan")
	}

	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	data, err := os.ReadFile(cfg.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := Save(cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.DataDir = dataDir
	cfg.Normalize()
	return cfg, nil
}

// Save writes the config as YAML with 0600 permissions.
func Save(cfg *Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(cfg.path(), data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
