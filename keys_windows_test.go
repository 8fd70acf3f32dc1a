//go:build windows

package hotkey

import (
	"errors"
	"testing"
)

func TestWindowsKeyRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		vk, err := keyToVK(k)
		if err != nil {
			t.Errorf("%s: %v", k, err)
			continue
		}
		back, ok := keyFromVK(vk)
		if !ok || back != k {
			t.Errorf("%s: vk %#x maps back to %v %v", k, vk, back, ok)
		}
	}
}

func TestWindowsRejectsInvalidKey(t *testing.T) {
	if _, err := keyToVK(KeyNone); !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("KeyNone err = %v, want ErrUnsupportedKey", err)
	}
}

func TestWindowsModifierMask(t *testing.T) {
	for m := Modifiers(0); m <= modAll; m++ {
		fs := modsToNative(m)
		if fs&modWinNoRepeat == 0 {
			t.Errorf("%s: MOD_NOREPEAT not set", m)
		}
		if got := modsFromNative(fs); got != m {
			t.Errorf("%s: mask %#x maps back to %s", m, fs, got)
		}
	}
}
