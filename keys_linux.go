//go:build linux

package hotkey

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// X11 modifier masks. Alt is Mod1 and Super is Mod4 on every stock
// layout; NumLock sits on Mod2 and CapsLock on Lock, which is why
// those two are stripped from event state and expanded at grab time.
const (
	x11Shift   = uint16(xproto.ModMaskShift)
	x11Lock    = uint16(xproto.ModMaskLock)
	x11Control = uint16(xproto.ModMaskControl)
	x11Mod1    = uint16(xproto.ModMask1)
	x11Mod2    = uint16(xproto.ModMask2)
	x11Mod4    = uint16(xproto.ModMask4)

	x11IgnoredMask = x11Lock | x11Mod2
)

func modsToX11(mods Modifiers) uint16 {
	var mask uint16
	if mods&ModShift != 0 {
		mask |= x11Shift
	}
	if mods&ModCtrl != 0 {
		mask |= x11Control
	}
	if mods&ModAlt != 0 {
		mask |= x11Mod1
	}
	if mods&ModSuper != 0 {
		mask |= x11Mod4
	}
	return mask
}

func modsFromX11(mask uint16) Modifiers {
	var mods Modifiers
	if mask&x11Shift != 0 {
		mods |= ModShift
	}
	if mask&x11Control != 0 {
		mods |= ModCtrl
	}
	if mask&x11Mod1 != 0 {
		mods |= ModAlt
	}
	if mask&x11Mod4 != 0 {
		mods |= ModSuper
	}
	return mods
}

// keysyms maps the neutral key set to X11 keysyms (letters use the
// lowercase form, the one found in column 0 of the keyboard mapping).
var keysyms = [keyMax]xproto.Keysym{
	KeyA: 0x61, KeyB: 0x62, KeyC: 0x63, KeyD: 0x64, KeyE: 0x65,
	KeyF: 0x66, KeyG: 0x67, KeyH: 0x68, KeyI: 0x69, KeyJ: 0x6a,
	KeyK: 0x6b, KeyL: 0x6c, KeyM: 0x6d, KeyN: 0x6e, KeyO: 0x6f,
	KeyP: 0x70, KeyQ: 0x71, KeyR: 0x72, KeyS: 0x73, KeyT: 0x74,
	KeyU: 0x75, KeyV: 0x76, KeyW: 0x77, KeyX: 0x78, KeyY: 0x79,
	KeyZ: 0x7a,

	Key0: 0x30, Key1: 0x31, Key2: 0x32, Key3: 0x33, Key4: 0x34,
	Key5: 0x35, Key6: 0x36, Key7: 0x37, Key8: 0x38, Key9: 0x39,

	KeyF1: 0xffbe, KeyF2: 0xffbf, KeyF3: 0xffc0, KeyF4: 0xffc1,
	KeyF5: 0xffc2, KeyF6: 0xffc3, KeyF7: 0xffc4, KeyF8: 0xffc5,
	KeyF9: 0xffc6, KeyF10: 0xffc7, KeyF11: 0xffc8, KeyF12: 0xffc9,
	KeyF13: 0xffca, KeyF14: 0xffcb, KeyF15: 0xffcc, KeyF16: 0xffcd,
	KeyF17: 0xffce, KeyF18: 0xffcf, KeyF19: 0xffd0, KeyF20: 0xffd1,
	KeyF21: 0xffd2, KeyF22: 0xffd3, KeyF23: 0xffd4, KeyF24: 0xffd5,

	KeySpace:     0x20,
	KeyEnter:     0xff0d, // XK_Return
	KeyTab:       0xff09,
	KeyEscape:    0xff1b,
	KeyBackspace: 0xff08,
	KeyDelete:    0xffff,
	KeyInsert:    0xff63,
	KeyHome:      0xff50,
	KeyEnd:       0xff57,
	KeyPageUp:    0xff55, // XK_Prior
	KeyPageDown:  0xff56, // XK_Next

	KeyLeft:  0xff51,
	KeyRight: 0xff53,
	KeyUp:    0xff52,
	KeyDown:  0xff54,

	KeyMinus:        0x2d,
	KeyEqual:        0x3d,
	KeyLeftBracket:  0x5b,
	KeyRightBracket: 0x5d,
	KeyBackslash:    0x5c,
	KeySemicolon:    0x3b,
	KeyQuote:        0x27, // XK_apostrophe
	KeyComma:        0x2c,
	KeyPeriod:       0x2e,
	KeySlash:        0x2f,
	KeyGrave:        0x60,

	KeyPrintScreen: 0xff61, // XK_Print
	KeyPause:       0xff13,
}

var keysByKeysym = func() map[xproto.Keysym]Key {
	m := make(map[xproto.Keysym]Key, keyMax)
	for k := Key(1); k < keyMax; k++ {
		m[keysyms[k]] = k
	}
	return m
}()

func keyToKeysym(key Key) (xproto.Keysym, error) {
	if !key.Valid() || keysyms[key] == 0 {
		return 0, fmt.Errorf("%w: %s has no keysym", ErrUnsupportedKey, key)
	}
	return keysyms[key], nil
}

func keyFromKeysym(sym xproto.Keysym) (Key, bool) {
	k, ok := keysByKeysym[sym]
	return k, ok
}
