//go:build darwin

package hotkey

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// Registration and release are plain Carbon calls that work from any
// thread; only delivery depends on the main thread's event loop. A
// full cycle from a test goroutine must therefore succeed without one.
func TestCarbonRegisterCycle(t *testing.T) {
	b, err := newBackend(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer b.close()

	h, err := b.register(ModCtrl|ModShift|ModAlt, KeyF11)
	if err != nil {
		t.Skipf("grab unavailable in this session: %v", err)
	}
	if got := b.pump(nil); len(got) != 0 {
		t.Fatalf("unexpected activations: %v", got)
	}
	if err := b.unregister(h); err != nil {
		t.Fatal(err)
	}
	if err := b.unregister(h); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestCarbonUnsupportedKeyFailsBeforeRegistering(t *testing.T) {
	b, err := newBackend(zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer b.close()

	if _, err := b.register(ModCtrl, KeyF21); !errors.Is(err, ErrUnsupportedKey) {
		t.Fatalf("err = %v, want ErrUnsupportedKey", err)
	}
}
