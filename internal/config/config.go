package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/benaskins/passman/internal/vault"
)

// Config holds optional settings loaded from ~/.passman/config.yaml.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	LogLevel     string `yaml:"log_level"`
}

// DefaultPath returns the default config file path: ~/.passman/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".passman", "config.yaml")
}

// Load reads a YAML config file from path. If the file does not exist,
// it returns an empty Config and no error. An empty or all-comment file
// also returns an empty Config with no error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Database returns the vault file path, falling back to ./database.json.
func (c *Config) Database() string {
	if c.DatabasePath == "" {
		return vault.DefaultPath
	}
	return c.DatabasePath
}

// Level parses LogLevel ("debug", "info", "warn", "error").
// Empty or unknown values yield slog.LevelWarn.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if c.LogLevel == "" || level.UnmarshalText([]byte(c.LogLevel)) != nil {
		return slog.LevelWarn
	}
	return level
}
