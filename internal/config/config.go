// Package config resolves the idid configuration directory, the optional
// YAML config file, and the accomplishment log path.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings from config.yaml. Every field has a
// working zero value; a missing config file yields an empty Config.
type Config struct {
	// TSV overrides the accomplishment log path.
	TSV string `yaml:"tsv,omitempty"`
	// Quiet suppresses praise messages from add and start.
	Quiet bool `yaml:"quiet,omitempty"`
	// Editor is used by the edit command when $EDITOR is unset.
	Editor string `yaml:"editor,omitempty"`
}

// Dir returns the idid configuration directory.
//
// Resolution:
//   - $IDID_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/idid if set (respects XDG on any platform)
//   - %AppData%/idid on Windows
//   - ~/.config/idid on macOS and Linux
func Dir() string {
	if dir := os.Getenv("IDID_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "idid")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "idid")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "idid")
}

// Load reads config.yaml from the configuration directory. A missing
// file or unresolvable directory is not an error; both return an empty
// Config.
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return &Config{}, nil
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
