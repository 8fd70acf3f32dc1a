//go:build linux

package hotkey

import (
	"errors"
	"testing"
)

func TestLinuxKeysymRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		sym, err := keyToKeysym(k)
		if err != nil {
			t.Errorf("%s: %v", k, err)
			continue
		}
		back, ok := keyFromKeysym(sym)
		if !ok || back != k {
			t.Errorf("%s: keysym %#x maps back to %v %v", k, sym, back, ok)
		}
	}
}

func TestLinuxRejectsInvalidKey(t *testing.T) {
	if _, err := keyToKeysym(KeyNone); !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("KeyNone err = %v, want ErrUnsupportedKey", err)
	}
}

func TestX11ModifierMask(t *testing.T) {
	for m := Modifiers(0); m <= modAll; m++ {
		mask := modsToX11(m)
		if mask&x11IgnoredMask != 0 {
			t.Errorf("%s: lock bits leaked into grab mask %#x", m, mask)
		}
		if got := modsFromX11(mask); got != m {
			t.Errorf("%s: mask %#x maps back to %s", m, mask, got)
		}
	}
}

func TestGrabVariantsCoverLockStates(t *testing.T) {
	base := modsToX11(ModCtrl | ModShift)
	vs := grabVariants(base)
	want := map[uint16]bool{
		base:                     true,
		base | x11Mod2:           true,
		base | x11Lock:           true,
		base | x11Mod2 | x11Lock: true,
	}
	for _, v := range vs {
		if !want[v] {
			t.Errorf("unexpected grab variant %#x", v)
		}
		delete(want, v)
	}
	if len(want) != 0 {
		t.Errorf("missing grab variants: %v", want)
	}
}

func TestUnknownBackendOverride(t *testing.T) {
	t.Setenv("HOTKEY_BACKEND", "bogus")
	_, err := New()
	if !errors.Is(err, ErrBackendInit) {
		t.Fatalf("err = %v, want ErrBackendInit", err)
	}
}
