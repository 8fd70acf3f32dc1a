package hotkey

import "strings"

// Key identifies a non-modifier key independent of platform. The zero
// value KeyNone is not a valid key. Backends translate Key to their
// native code at registration time and reject keys the platform cannot
// express with ErrUnsupportedKey.
type Key uint16

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeySpace
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyComma
	KeyPeriod
	KeySlash
	KeyGrave

	KeyPrintScreen
	KeyPause

	keyMax // sentinel, keep last
)

var keyNames = [keyMax]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5",
	KeyF6: "f6", KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10",
	KeyF11: "f11", KeyF12: "f12", KeyF13: "f13", KeyF14: "f14",
	KeyF15: "f15", KeyF16: "f16", KeyF17: "f17", KeyF18: "f18",
	KeyF19: "f19", KeyF20: "f20", KeyF21: "f21", KeyF22: "f22",
	KeyF23: "f23", KeyF24: "f24",

	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",

	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",

	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyLeftBracket:  "leftbracket",
	KeyRightBracket: "rightbracket",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyQuote:        "quote",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeyGrave:        "grave",

	KeyPrintScreen: "printscreen",
	KeyPause:       "pause",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyMax)
	for k := Key(1); k < keyMax; k++ {
		m[keyNames[k]] = k
	}
	// Aliases seen in binding files in the wild.
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	m["del"] = KeyDelete
	m["ins"] = KeyInsert
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	m["-"] = KeyMinus
	m["="] = KeyEqual
	m["["] = KeyLeftBracket
	m["]"] = KeyRightBracket
	m["\\"] = KeyBackslash
	m[";"] = KeySemicolon
	m["'"] = KeyQuote
	m[","] = KeyComma
	m["."] = KeyPeriod
	m["/"] = KeySlash
	m["`"] = KeyGrave
	return m
}()

// Valid reports whether k names a key of the neutral set. It says
// nothing about platform support; a backend may still refuse it.
func (k Key) Valid() bool {
	return k > KeyNone && k < keyMax
}

func (k Key) String() string {
	if !k.Valid() {
		return "none"
	}
	return keyNames[k]
}

// ParseKey maps a key name ("a", "f1", "pageup", aliases like "esc"
// or "pgdn") to its Key. Names are case-insensitive.
func ParseKey(s string) (Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Keys returns every key of the neutral set in declaration order.
func Keys() []Key {
	out := make([]Key, 0, keyMax-1)
	for k := Key(1); k < keyMax; k++ {
		out = append(out, k)
	}
	return out
}
