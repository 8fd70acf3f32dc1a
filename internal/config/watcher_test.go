package config

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reloadSink struct {
	mu   sync.Mutex
	cfgs []*Config
}

func (s *reloadSink) add(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfgs = append(s.cfgs, cfg)
}

func (s *reloadSink) last() *Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cfgs) == 0 {
		return nil
	}
	return s.cfgs[len(s.cfgs)-1]
}

func TestWatcherReloadsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(&Config{Bindings: []Binding{{Combo: "f1", Action: "beep"}}}, path))

	sink := &reloadSink{}
	w, err := Watch(path, zerolog.Nop(), sink.add)
	require.NoError(t, err)
	defer w.Close()

	next := &Config{Bindings: []Binding{{Combo: "ctrl+f2", Action: "beep"}}}
	require.NoError(t, Save(next, path))

	require.Eventually(t, func() bool {
		cfg := sink.last()
		return cfg != nil && len(cfg.Bindings) == 1 && cfg.Bindings[0].Combo == "ctrl+f2"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherStartsBeforeFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	sink := &reloadSink{}
	w, err := Watch(path, zerolog.Nop(), sink.add)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, Save(&Config{Bindings: []Binding{{Combo: "super+k", Action: "beep"}}}, path))

	require.Eventually(t, func() bool {
		return sink.last() != nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherKeepsPreviousOnInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(&Config{Bindings: []Binding{{Combo: "f1", Action: "beep"}}}, path))

	sink := &reloadSink{}
	w, err := Watch(path, zerolog.Nop(), sink.add)
	require.NoError(t, err)
	defer w.Close()

	// Invalid combo: the watcher must not hand this to the callback.
	bad := &Config{Bindings: []Binding{{Combo: "ctrl+bogus", Action: "beep"}}}
	require.NoError(t, Save(bad, path))

	time.Sleep(3 * debounceDelay)
	assert.Nil(t, sink.last())
}

func TestWatcherCloseIdempotentCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	w, err := Watch(path, zerolog.Nop(), func(*Config) {})
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
