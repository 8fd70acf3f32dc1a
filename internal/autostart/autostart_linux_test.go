//go:build linux

package autostart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnableDisable(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Enabled() {
		t.Fatal("enabled before Enable")
	}
	if err := Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !Enabled() {
		t.Fatal("not enabled after Enable")
	}

	path, err := desktopPath()
	if err != nil {
		t.Fatalf("desktopPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	exe, _ := os.Executable()
	if !strings.Contains(string(data), "Exec="+exe) {
		t.Errorf("entry does not point at %s:\n%s", exe, data)
	}

	if err := Disable(); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if Enabled() {
		t.Fatal("still enabled after Disable")
	}
	// Disabling twice is fine.
	if err := Disable(); err != nil {
		t.Fatalf("second Disable: %v", err)
	}
}

func TestDesktopPathFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", t.TempDir())

	path, err := desktopPath()
	if err != nil {
		t.Fatalf("desktopPath: %v", err)
	}
	want := filepath.Join(os.Getenv("HOME"), ".config", "autostart", desktopName)
	if path != want {
		t.Errorf("path = %s, want %s", path, want)
	}
}
