// Package config loads the terminal's grid dimensions and pattern-trigger
// settings from disk, defaulting to a sensible configuration when no file
// is present.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds everything a Session needs to start: the grid size and the
// auto-restart pattern trigger settings.
type Config struct {
	Rows int `json:"rows" toml:"rows"`
	Cols int `json:"cols" toml:"cols"`

	SuccessPatterns      []string `json:"success_patterns" toml:"success_patterns"`
	AutoRestartOnSuccess bool     `json:"auto_restart_on_success" toml:"auto_restart_on_success"`
}

// DefaultConfig returns the baseline 24x80 configuration with pattern
// triggering disabled.
func DefaultConfig() *Config {
	return &Config{
		Rows:                 24,
		Cols:                 80,
		SuccessPatterns:      []string{},
		AutoRestartOnSuccess: false,
	}
}

// GetConfigPath returns the default location of the JSON config file,
// creating its parent directory if necessary.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gridterm.json"
	}
	configDir := filepath.Join(homeDir, ".config", "gridterm")
	os.MkdirAll(configDir, 0755)
	return filepath.Join(configDir, "config.json")
}

// Load reads the JSON config file at GetConfigPath, falling back to
// DefaultConfig if it does not exist.
func Load() (*Config, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as indented JSON to GetConfigPath.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(GetConfigPath(), data, 0644)
}

// LoadTOML reads a TOML config override from path, starting from
// DefaultConfig and overwriting only the fields present in the file. This
// is the path power users take to hand-edit success patterns without
// fighting JSON string escaping in a shell list.
func LoadTOML(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
