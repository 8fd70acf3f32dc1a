package hotkey

import (
	"strings"
	"testing"
)

func TestKeyNamesRoundTrip(t *testing.T) {
	seen := map[string]Key{}
	for _, k := range Keys() {
		name := k.String()
		if name == "" || name == "none" {
			t.Fatalf("key %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q used by both %d and %d", name, prev, k)
		}
		seen[name] = k

		got, ok := ParseKey(name)
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = %v %v, want %v true", name, got, ok, k)
		}
	}
}

func TestParseKeyAliases(t *testing.T) {
	cases := map[string]Key{
		"esc":    KeyEscape,
		"return": KeyEnter,
		"pgup":   KeyPageUp,
		"pgdn":   KeyPageDown,
		"del":    KeyDelete,
		",":      KeyComma,
		"/":      KeySlash,
		"ESC":    KeyEscape,
		" f12 ":  KeyF12,
	}
	for in, want := range cases {
		got, ok := ParseKey(in)
		if !ok || got != want {
			t.Errorf("ParseKey(%q) = %v %v, want %v true", in, got, ok, want)
		}
	}
	if _, ok := ParseKey("windows"); ok {
		t.Error("ParseKey accepted a modifier name")
	}
}

func TestInvalidKeyString(t *testing.T) {
	if got := KeyNone.String(); got != "none" {
		t.Errorf("KeyNone.String() = %q", got)
	}
	if got := Key(9999).String(); got != "none" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func TestModifiersString(t *testing.T) {
	cases := []struct {
		mods Modifiers
		want string
	}{
		{0, "none"},
		{ModCtrl, "ctrl"},
		{ModCtrl | ModShift, "ctrl+shift"},
		{ModShift | ModCtrl, "ctrl+shift"}, // order-independent
		{ModSuper | ModAlt, "alt+super"},
		{ModAlt | ModCtrl | ModSuper, "ctrl+alt+super"},
		{modAll, "ctrl+shift+alt+super"},
	}
	for _, c := range cases {
		if got := c.mods.String(); got != c.want {
			t.Errorf("%#x.String() = %q, want %q", uint8(c.mods), got, c.want)
		}
	}
}

func TestParseModifierNames(t *testing.T) {
	cases := map[string]Modifiers{
		"ctrl":    ModCtrl,
		"control": ModCtrl,
		"SHIFT":   ModShift,
		"alt":     ModAlt,
		"option":  ModAlt,
		"super":   ModSuper,
		"win":     ModSuper,
		"cmd":     ModSuper,
		"meta":    ModSuper,
	}
	for in, want := range cases {
		got, ok := ParseModifier(in)
		if !ok || got != want {
			t.Errorf("ParseModifier(%q) = %v %v, want %v true", in, got, ok, want)
		}
	}
	if _, ok := ParseModifier("hyper"); ok {
		t.Error("ParseModifier accepted unknown name")
	}
}

func TestParseCombo(t *testing.T) {
	cases := map[string]Hotkey{
		"ctrl+shift+a": {Mods: ModCtrl | ModShift, Key: KeyA},
		"Ctrl+Shift+A": {Mods: ModCtrl | ModShift, Key: KeyA},
		"super+F9":     {Mods: ModSuper, Key: KeyF9},
		"f5":           {Key: KeyF5},
		"alt + space":  {Mods: ModAlt, Key: KeySpace},
		"cmd+shift+4":  {Mods: ModSuper | ModShift, Key: Key4},
		"ctrl+pgdn":    {Mods: ModCtrl, Key: KeyPageDown},
	}
	for in, want := range cases {
		got, err := ParseCombo(in)
		if err != nil {
			t.Errorf("ParseCombo(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCombo(%q) = %s, want %s", in, got, want)
		}
	}

	bad := []string{
		"",
		"  ",
		"ctrl+",
		"ctrl+shift",  // ends in a modifier
		"hyper+a",     // unknown modifier
		"ctrl+ctrl+a", // repeated modifier
		"ctrl+bogus",  // unknown key
		"a+b",         // two keys
	}
	for _, in := range bad {
		if _, err := ParseCombo(in); err == nil {
			t.Errorf("ParseCombo(%q) succeeded, want error", in)
		}
	}
}

func TestParseComboErrorNamesOffender(t *testing.T) {
	_, err := ParseCombo("ctrl+bogus")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the unknown key", err)
	}
}

func TestComboString(t *testing.T) {
	hk := Hotkey{Mods: ModCtrl | ModShift, Key: KeyA}
	if got := hk.String(); got != "ctrl+shift+a" {
		t.Errorf("String() = %q, want %q", got, "ctrl+shift+a")
	}
	bare := Hotkey{Key: KeyF5}
	if got := bare.String(); got != "f5" {
		t.Errorf("String() = %q, want %q", got, "f5")
	}

	// String output parses back to the same identity.
	back, err := ParseCombo(hk.String())
	if err != nil || back != hk {
		t.Errorf("round trip = %v %v, want %v", back, err, hk)
	}
}

func TestMustParseCombo(t *testing.T) {
	hk := MustParseCombo("ctrl+alt+delete")
	want := Hotkey{Mods: ModCtrl | ModAlt, Key: KeyDelete}
	if hk != want {
		t.Errorf("MustParseCombo = %s, want %s", hk, want)
	}
}

func TestModifiersHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModCtrl|ModShift) {
		t.Error("Has rejected contained modifiers")
	}
	if m.Has(ModAlt) || m.Has(ModCtrl|ModAlt) {
		t.Error("Has accepted missing modifiers")
	}
}
