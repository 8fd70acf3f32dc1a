//go:build darwin

package hotkey

import (
	"errors"
	"testing"
)

func TestCarbonKeyRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		code, err := keyToCarbon(k)
		if err != nil {
			// The documented mac gaps are the only translation holes.
			if !errors.Is(err, ErrUnsupportedKey) {
				t.Errorf("%s: %v", k, err)
			}
			continue
		}
		back, ok := keyFromCarbon(code)
		if !ok || back != k {
			t.Errorf("%s: code %#x maps back to %v %v", k, code, back, ok)
		}
	}
}

func TestCarbonGaps(t *testing.T) {
	unsupported := []Key{KeyF21, KeyF22, KeyF23, KeyF24, KeyPrintScreen, KeyPause}
	for _, k := range unsupported {
		if _, err := keyToCarbon(k); !errors.Is(err, ErrUnsupportedKey) {
			t.Errorf("%s err = %v, want ErrUnsupportedKey", k, err)
		}
	}
	// And the rest of the set is fully mapped.
	for _, k := range Keys() {
		switch k {
		case KeyF21, KeyF22, KeyF23, KeyF24, KeyPrintScreen, KeyPause:
			continue
		}
		if _, err := keyToCarbon(k); err != nil {
			t.Errorf("%s unexpectedly unsupported: %v", k, err)
		}
	}
}

func TestCarbonModifierMask(t *testing.T) {
	for m := Modifiers(0); m <= modAll; m++ {
		out := modsToCarbon(m)
		if got := modsFromCarbon(out); got != m {
			t.Errorf("%s: flags %#x map back to %s", m, out, got)
		}
	}
}
