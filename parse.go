package hotkey

import (
	"fmt"
	"strings"
)

// ParseCombo parses a textual combination like "ctrl+shift+a" or
// "super+F9" into a Hotkey. The last '+'-separated token names the
// key, every earlier token a modifier. Names are case-insensitive;
// whitespace around tokens is ignored.
func ParseCombo(s string) (Hotkey, error) {
	parts := strings.Split(s, "+")
	if strings.TrimSpace(s) == "" {
		return Hotkey{}, fmt.Errorf("empty combination")
	}
	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Hotkey{}, fmt.Errorf("combination %q has no key", s)
	}

	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		m, ok := ParseModifier(p)
		if !ok {
			return Hotkey{}, fmt.Errorf("unknown modifier %q in %q", strings.TrimSpace(p), s)
		}
		if mods&m != 0 {
			return Hotkey{}, fmt.Errorf("modifier %q repeated in %q", strings.TrimSpace(p), s)
		}
		mods |= m
	}

	key, ok := ParseKey(keyPart)
	if !ok {
		return Hotkey{}, fmt.Errorf("unknown key %q in %q", keyPart, s)
	}
	return Hotkey{Mods: mods, Key: key}, nil
}

// MustParseCombo is ParseCombo for compile-time-known strings; it
// panics on error.
func MustParseCombo(s string) Hotkey {
	hk, err := ParseCombo(s)
	if err != nil {
		panic(err)
	}
	return hk
}
