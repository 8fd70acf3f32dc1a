package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotkey", "config.toml")

	want := &Config{
		LogLevel: "debug",
		Bindings: []Binding{
			{Combo: "ctrl+shift+c", Action: "clip", Text: "hello"},
			{Combo: "super+enter", Action: "exec", Command: []string{"xterm", "-e", "top"}},
		},
	}
	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[binding]\ncombo = broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadCombo(t *testing.T) {
	cfg := &Config{Bindings: []Binding{{Combo: "ctrl+bogus", Action: "beep"}}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestValidateRejectsDuplicateCombo(t *testing.T) {
	cfg := &Config{Bindings: []Binding{
		{Combo: "ctrl+shift+a", Action: "beep"},
		{Combo: "shift+ctrl+a", Action: "clip", Text: "x"},
	}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already bound")
}

func TestValidateRejectsMissingAction(t *testing.T) {
	cfg := &Config{Bindings: []Binding{{Combo: "f5", Action: ""}}}

	assert.Error(t, cfg.Validate())
}
