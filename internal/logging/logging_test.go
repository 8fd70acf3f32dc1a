package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("HOTKEY_LOG_PATH", "/tmp/hotkey-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/hotkey-env-log" {
		t.Errorf("got %q, want /tmp/hotkey-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("HOTKEY_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestFlagWinsOverEnv(t *testing.T) {
	t.Setenv("HOTKEY_LOG_PATH", "/tmp/from-env")
	got, err := ResolveDir("/tmp/from-flag")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/from-flag" {
		t.Errorf("got %q, want /tmp/from-flag", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"", zerolog.NoLevel, false},
		{"verbose", zerolog.NoLevel, false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNewFromEnvLevel(t *testing.T) {
	t.Setenv("HOTKEY_LOG_LEVEL", "debug")
	t.Setenv("HOTKEY_LOG_FORMAT", "json")
	logger := NewFromEnv()
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("got level %v, want debug", logger.GetLevel())
	}
}

func TestNewFileCreatesLog(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "nested", "logs")

	logger, closer, err := NewFile(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Info().Str("combo", "ctrl+shift+k").Msg("registered")

	data, err := os.ReadFile(filepath.Join(dir, "hotkey_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "registered") {
		t.Errorf("log file missing message, got: %q", line)
	}
	if !strings.Contains(line, "ctrl+shift+k") {
		t.Errorf("log file missing field, got: %q", line)
	}
}

func TestNewFileAppends(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := NewFile(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Msg("first")
	closer.Close()

	logger, closer, err = NewFile(dir, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	logger.Info().Msg("second")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, "hotkey_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("expected both runs in the log, got: %q", string(data))
	}
}
