// Package logging builds the zerolog loggers used by the hotkey daemons
// and resolves where file-backed logs live on each OS.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Config holds logger construction options.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// New creates a logger writing to stderr with the given configuration.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
			NoColor:    false,
		}
	case "json":
		// JSON is the default zerolog format.
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a stderr logger configured from environment variables.
// HOTKEY_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// HOTKEY_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level, ok := ParseLevel(os.Getenv("HOTKEY_LOG_LEVEL")); ok {
		cfg.Level = level
	}

	if format := os.Getenv("HOTKEY_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty
// names report ok=false.
func ParseLevel(s string) (zerolog.Level, bool) {
	switch s {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	}
	return zerolog.NoLevel, false
}

// ResolveDir picks the log directory for file-backed loggers.
func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absWorkingDir(flagPath)
	}

	// Priority 2: HOTKEY_LOG_PATH environment variable
	if envPath := os.Getenv("HOTKEY_LOG_PATH"); envPath != "" {
		return absWorkingDir(envPath)
	}

	// Priority 3: default OS-specific location
	return getDefaultDir()
}

func absWorkingDir(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

// NewFile creates a logger appending to hotkey_log.txt in dir, creating
// the directory if needed. The caller closes the returned file when done.
func NewFile(dir string, cfg Config) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, "hotkey_log.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	writer := zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: cfg.TimeFormat,
		NoColor:    true,
	}
	logger := zerolog.New(writer).
		Level(cfg.Level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()

	return logger, f, nil
}
