package hotkey

import "strings"

// Modifiers is a bit set of modifier keys. Combine with bitwise OR:
// ModCtrl|ModShift. Two values are the same combination iff the masks
// are equal, regardless of how they were assembled.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModShift
	ModSuper
)

const modAll = ModAlt | ModCtrl | ModShift | ModSuper

// Has reports whether every modifier in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	parts := make([]string, 0, 4)
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModSuper != 0 {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// ParseModifier maps a single modifier name to its flag. Accepted names
// are "ctrl", "control", "shift", "alt", "option", "super", "win",
// "cmd" and "meta" (case-insensitive).
func ParseModifier(s string) (Modifiers, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ctrl", "control":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	case "alt", "option", "opt":
		return ModAlt, true
	case "super", "win", "cmd", "meta":
		return ModSuper, true
	}
	return 0, false
}
