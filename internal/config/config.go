// Package config loads and persists the binding table used by the
// hotkey daemons: which key combinations are grabbed and what each
// one does when pressed.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
)

// Binding maps one key combination to an action.
type Binding struct {
	Combo   string   `toml:"combo"`
	Action  string   `toml:"action"`
	Text    string   `toml:"text,omitempty"`
	Command []string `toml:"command,omitempty"`
}

// Config is the on-disk configuration for hktray.
type Config struct {
	LogLevel string    `toml:"log_level,omitempty"`
	Bindings []Binding `toml:"binding"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Bindings: []Binding{
			{Combo: "ctrl+alt+b", Action: "beep"},
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "hotkey", "config.toml"), nil
}

// Load reads the configuration at path. An empty path uses DefaultPath.
// A missing file is not an error: the defaults are returned instead.
func Load(path string) (*Config, error) {
	var err error
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories
// as needed. An empty path uses DefaultPath.
func Save(cfg *Config, path string) error {
	var err error
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Validate checks that every binding has a parseable combo and a named
// action, and that no two bindings claim the same combination.
func (c *Config) Validate() error {
	seen := make(map[hotkey.Hotkey]string, len(c.Bindings))
	for i, b := range c.Bindings {
		hk, err := hotkey.ParseCombo(b.Combo)
		if err != nil {
			return fmt.Errorf("binding %d: %w", i+1, err)
		}
		if prev, ok := seen[hk]; ok {
			return fmt.Errorf("binding %d: combo %q already bound (first as %q)", i+1, b.Combo, prev)
		}
		seen[hk] = b.Combo
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): no action named", i+1, b.Combo)
		}
	}
	return nil
}
