//go:build windows

package hotkey

import (
	"testing"

	"github.com/rs/zerolog"
)

// Handles are tracked per backend, so releasing one that was never
// grabbed (or releasing twice) is a no-op instead of an
// ERROR_HOTKEY_NOT_REGISTERED from the hotkey thread.
func TestWinUnregisterUnknownHandle(t *testing.T) {
	b, err := newBackend(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer b.close()

	if err := b.unregister(12345); err != nil {
		t.Fatalf("unknown handle: %v", err)
	}
}

func TestWinUnregisterTwice(t *testing.T) {
	b, err := newBackend(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer b.close()

	h, err := b.register(ModCtrl|ModShift|ModAlt, KeyF11)
	if err != nil {
		t.Skipf("grab unavailable in this session: %v", err)
	}
	if err := b.unregister(h); err != nil {
		t.Fatal(err)
	}
	if err := b.unregister(h); err != nil {
		t.Fatalf("second release: %v", err)
	}
}
