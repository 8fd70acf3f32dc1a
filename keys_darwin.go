//go:build darwin

package hotkey

import "fmt"

// Carbon modifier flags (cmdKey and friends from Events.h).
const (
	carbonCmd     = 0x0100
	carbonShift   = 0x0200
	carbonOption  = 0x0800
	carbonControl = 0x1000
)

func modsToCarbon(mods Modifiers) uint32 {
	var out uint32
	if mods&ModCtrl != 0 {
		out |= carbonControl
	}
	if mods&ModShift != 0 {
		out |= carbonShift
	}
	if mods&ModAlt != 0 {
		out |= carbonOption
	}
	if mods&ModSuper != 0 {
		out |= carbonCmd
	}
	return out
}

func modsFromCarbon(out uint32) Modifiers {
	var mods Modifiers
	if out&carbonControl != 0 {
		mods |= ModCtrl
	}
	if out&carbonShift != 0 {
		mods |= ModShift
	}
	if out&carbonOption != 0 {
		mods |= ModAlt
	}
	if out&carbonCmd != 0 {
		mods |= ModSuper
	}
	return mods
}

// carbonCodes maps the neutral key set to mac virtual key codes. A map
// rather than an array because kVK_ANSI_A is 0. Keys absent here have
// no mac virtual code: F21 and up, print-screen and pause.
var carbonCodes = map[Key]uint32{
	KeyA: 0x00, KeyB: 0x0B, KeyC: 0x08, KeyD: 0x02, KeyE: 0x0E,
	KeyF: 0x03, KeyG: 0x05, KeyH: 0x04, KeyI: 0x22, KeyJ: 0x26,
	KeyK: 0x28, KeyL: 0x25, KeyM: 0x2E, KeyN: 0x2D, KeyO: 0x1F,
	KeyP: 0x23, KeyQ: 0x0C, KeyR: 0x0F, KeyS: 0x01, KeyT: 0x11,
	KeyU: 0x20, KeyV: 0x09, KeyW: 0x0D, KeyX: 0x07, KeyY: 0x10,
	KeyZ: 0x06,

	Key0: 0x1D, Key1: 0x12, Key2: 0x13, Key3: 0x14, Key4: 0x15,
	Key5: 0x17, Key6: 0x16, Key7: 0x1A, Key8: 0x1C, Key9: 0x19,

	KeyF1: 0x7A, KeyF2: 0x78, KeyF3: 0x63, KeyF4: 0x76, KeyF5: 0x60,
	KeyF6: 0x61, KeyF7: 0x62, KeyF8: 0x64, KeyF9: 0x65, KeyF10: 0x6D,
	KeyF11: 0x67, KeyF12: 0x6F, KeyF13: 0x69, KeyF14: 0x6B,
	KeyF15: 0x71, KeyF16: 0x6A, KeyF17: 0x40, KeyF18: 0x4F,
	KeyF19: 0x50, KeyF20: 0x5A,

	KeySpace:     0x31,
	KeyEnter:     0x24,
	KeyTab:       0x30,
	KeyEscape:    0x35,
	KeyBackspace: 0x33, // kVK_Delete
	KeyDelete:    0x75, // kVK_ForwardDelete
	KeyInsert:    0x72, // kVK_Help, the Insert position on mac boards
	KeyHome:      0x73,
	KeyEnd:       0x77,
	KeyPageUp:    0x74,
	KeyPageDown:  0x79,

	KeyLeft:  0x7B,
	KeyRight: 0x7C,
	KeyUp:    0x7E,
	KeyDown:  0x7D,

	KeyMinus:        0x1B,
	KeyEqual:        0x18,
	KeyLeftBracket:  0x21,
	KeyRightBracket: 0x1E,
	KeyBackslash:    0x2A,
	KeySemicolon:    0x29,
	KeyQuote:        0x27,
	KeyComma:        0x2B,
	KeyPeriod:       0x2F,
	KeySlash:        0x2C,
	KeyGrave:        0x32,
}

var keysByCarbon = func() map[uint32]Key {
	m := make(map[uint32]Key, len(carbonCodes))
	for k, code := range carbonCodes {
		m[code] = k
	}
	return m
}()

func keyToCarbon(key Key) (uint32, error) {
	code, ok := carbonCodes[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no mac virtual key code", ErrUnsupportedKey, key)
	}
	return code, nil
}

func keyFromCarbon(code uint32) (Key, bool) {
	k, ok := keysByCarbon[code]
	return k, ok
}
