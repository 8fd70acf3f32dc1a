//go:build windows

package hotkey

import "fmt"

const (
	modWinAlt      = 0x0001
	modWinControl  = 0x0002
	modWinShift    = 0x0004
	modWinSuper    = 0x0008
	modWinNoRepeat = 0x4000
)

// modsToNative builds the fsModifiers argument of RegisterHotKey.
// MOD_NOREPEAT is always set: holding the combination fires once.
func modsToNative(mods Modifiers) uint32 {
	fs := uint32(modWinNoRepeat)
	if mods&ModAlt != 0 {
		fs |= modWinAlt
	}
	if mods&ModCtrl != 0 {
		fs |= modWinControl
	}
	if mods&ModShift != 0 {
		fs |= modWinShift
	}
	if mods&ModSuper != 0 {
		fs |= modWinSuper
	}
	return fs
}

func modsFromNative(fs uint32) Modifiers {
	var mods Modifiers
	if fs&modWinAlt != 0 {
		mods |= ModAlt
	}
	if fs&modWinControl != 0 {
		mods |= ModCtrl
	}
	if fs&modWinShift != 0 {
		mods |= ModShift
	}
	if fs&modWinSuper != 0 {
		mods |= ModSuper
	}
	return mods
}

// vkCodes maps the neutral key set to Windows virtual-key codes. The
// whole set is expressible here; this table has no gaps.
var vkCodes = [keyMax]uint32{
	KeyA: 0x41, KeyB: 0x42, KeyC: 0x43, KeyD: 0x44, KeyE: 0x45,
	KeyF: 0x46, KeyG: 0x47, KeyH: 0x48, KeyI: 0x49, KeyJ: 0x4A,
	KeyK: 0x4B, KeyL: 0x4C, KeyM: 0x4D, KeyN: 0x4E, KeyO: 0x4F,
	KeyP: 0x50, KeyQ: 0x51, KeyR: 0x52, KeyS: 0x53, KeyT: 0x54,
	KeyU: 0x55, KeyV: 0x56, KeyW: 0x57, KeyX: 0x58, KeyY: 0x59,
	KeyZ: 0x5A,

	Key0: 0x30, Key1: 0x31, Key2: 0x32, Key3: 0x33, Key4: 0x34,
	Key5: 0x35, Key6: 0x36, Key7: 0x37, Key8: 0x38, Key9: 0x39,

	KeyF1: 0x70, KeyF2: 0x71, KeyF3: 0x72, KeyF4: 0x73, KeyF5: 0x74,
	KeyF6: 0x75, KeyF7: 0x76, KeyF8: 0x77, KeyF9: 0x78, KeyF10: 0x79,
	KeyF11: 0x7A, KeyF12: 0x7B, KeyF13: 0x7C, KeyF14: 0x7D,
	KeyF15: 0x7E, KeyF16: 0x7F, KeyF17: 0x80, KeyF18: 0x81,
	KeyF19: 0x82, KeyF20: 0x83, KeyF21: 0x84, KeyF22: 0x85,
	KeyF23: 0x86, KeyF24: 0x87,

	KeySpace:     0x20,
	KeyEnter:     0x0D,
	KeyTab:       0x09,
	KeyEscape:    0x1B,
	KeyBackspace: 0x08,
	KeyDelete:    0x2E,
	KeyInsert:    0x2D,
	KeyHome:      0x24,
	KeyEnd:       0x23,
	KeyPageUp:    0x21, // VK_PRIOR
	KeyPageDown:  0x22, // VK_NEXT

	KeyLeft:  0x25,
	KeyRight: 0x27,
	KeyUp:    0x26,
	KeyDown:  0x28,

	KeyMinus:        0xBD, // VK_OEM_MINUS
	KeyEqual:        0xBB, // VK_OEM_PLUS
	KeyLeftBracket:  0xDB, // VK_OEM_4
	KeyRightBracket: 0xDD, // VK_OEM_6
	KeyBackslash:    0xDC, // VK_OEM_5
	KeySemicolon:    0xBA, // VK_OEM_1
	KeyQuote:        0xDE, // VK_OEM_7
	KeyComma:        0xBC, // VK_OEM_COMMA
	KeyPeriod:       0xBE, // VK_OEM_PERIOD
	KeySlash:        0xBF, // VK_OEM_2
	KeyGrave:        0xC0, // VK_OEM_3

	KeyPrintScreen: 0x2C, // VK_SNAPSHOT
	KeyPause:       0x13,
}

var keysByVK = func() map[uint32]Key {
	m := make(map[uint32]Key, keyMax)
	for k := Key(1); k < keyMax; k++ {
		m[vkCodes[k]] = k
	}
	return m
}()

func keyToVK(key Key) (uint32, error) {
	if !key.Valid() || vkCodes[key] == 0 {
		return 0, fmt.Errorf("%w: %s has no virtual-key code", ErrUnsupportedKey, key)
	}
	return vkCodes[key], nil
}

func keyFromVK(vk uint32) (Key, bool) {
	k, ok := keysByVK[vk]
	return k, ok
}
