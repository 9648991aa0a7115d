// Package config loads server settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hailam/chesscore/internal/board"
)

// Config holds the server settings. Zero fields in a file keep their
// defaults.
type Config struct {
	Addr      string `yaml:"addr"`
	DataDir   string `yaml:"data_dir"`
	InMemory  bool   `yaml:"in_memory"`
	LogBadger bool   `yaml:"log_badger"`
	StartFEN  string `yaml:"start_fen"`
}

// Default returns the settings used when no file is given. An empty
// DataDir means the platform data directory.
func Default() Config {
	return Config{
		Addr: ":8080",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("'%s': %v", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("'%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("'%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.InMemory && c.DataDir != "" {
		return errors.New("data_dir and in_memory are mutually exclusive")
	}
	if c.StartFEN != "" {
		if _, err := board.ParseFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start_fen: %w", err)
		}
	}
	return nil
}

// Marshal renders the settings as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
