//go:build linux

package hotkey

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/rs/zerolog"
)

type x11Chord struct {
	code  xproto.Keycode
	state uint16
}

type x11Grab struct {
	code xproto.Keycode
	mask uint16
}

// x11Backend grabs keys on the root window. Each combination is
// grabbed four times (plain, NumLock, CapsLock, both) so lock state
// does not swallow it; event state is cleaned of the lock bits before
// lookup so all four land on one handle.
type x11Backend struct {
	log     zerolog.Logger
	conn    *xgb.Conn
	root    xproto.Window
	codeFor map[xproto.Keysym]xproto.Keycode
	grabs   map[uint64]x11Grab
	handles map[x11Chord]uint64
	next    uint64
}

func newX11Backend(log zerolog.Logger) (backend, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}
	setup := xproto.Setup(conn)
	root := setup.DefaultScreen(conn).Root

	min, max := setup.MinKeycode, setup.MaxKeycode
	reply, err := xproto.GetKeyboardMapping(conn, min, byte(max-min+1)).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("loading keyboard mapping: %w", err)
	}

	perCode := int(reply.KeysymsPerKeycode)
	codeFor := make(map[xproto.Keysym]xproto.Keycode)
	for kc := int(min); kc <= int(max); kc++ {
		base := (kc - int(min)) * perCode
		for col := 0; col < perCode; col++ {
			sym := reply.Keysyms[base+col]
			if sym == 0 {
				continue
			}
			if _, seen := codeFor[sym]; !seen {
				codeFor[sym] = xproto.Keycode(kc)
			}
		}
	}

	log.Debug().Int("keysyms", len(codeFor)).Msg("x11 keyboard mapping loaded")
	return &x11Backend{
		log:     log,
		conn:    conn,
		root:    root,
		codeFor: codeFor,
		grabs:   make(map[uint64]x11Grab),
		handles: make(map[x11Chord]uint64),
	}, nil
}

func grabVariants(mask uint16) [4]uint16 {
	return [4]uint16{
		mask,
		mask | x11Mod2,
		mask | x11Lock,
		mask | x11Mod2 | x11Lock,
	}
}

func (b *x11Backend) register(mods Modifiers, key Key) (uint64, error) {
	sym, err := keyToKeysym(key)
	if err != nil {
		return 0, err
	}
	code, ok := b.codeFor[sym]
	if !ok {
		return 0, fmt.Errorf("%w: %s not on the current keyboard mapping", ErrUnsupportedKey, key)
	}
	mask := modsToX11(mods)

	variants := grabVariants(mask)
	for i, v := range variants {
		err := xproto.GrabKeyChecked(b.conn, false, b.root, v, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err == nil {
			continue
		}
		// Roll back the variants grabbed before the failing one.
		for _, u := range variants[:i] {
			xproto.UngrabKeyChecked(b.conn, code, b.root, u).Check()
		}
		return 0, fmt.Errorf("%w: GrabKey %s+%s: %v", ErrRegistrationFailed, mods, key, err)
	}

	b.next++
	h := b.next
	b.grabs[h] = x11Grab{code: code, mask: mask}
	b.handles[x11Chord{code: code, state: mask}] = h
	return h, nil
}

func (b *x11Backend) unregister(handle uint64) error {
	g, ok := b.grabs[handle]
	if !ok {
		return nil
	}
	delete(b.grabs, handle)
	delete(b.handles, x11Chord{code: g.code, state: g.mask})

	var firstErr error
	for _, v := range grabVariants(g.mask) {
		if err := xproto.UngrabKeyChecked(b.conn, g.code, b.root, v).Check(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("UngrabKey: %v", err)
		}
	}
	return firstErr
}

func (b *x11Backend) pump(dst []uint64) []uint64 {
	for i := 0; i < pumpMax; i++ {
		ev, xerr := b.conn.PollForEvent()
		if ev == nil && xerr == nil {
			break
		}
		if xerr != nil {
			b.log.Debug().Err(xerr).Msg("x11 event error")
			continue
		}
		kp, ok := ev.(xproto.KeyPressEvent)
		if !ok {
			continue
		}
		state := kp.State &^ x11IgnoredMask
		if h, ok := b.handles[x11Chord{code: kp.Detail, state: state}]; ok {
			dst = append(dst, h)
		}
	}
	return dst
}

func (b *x11Backend) close() error {
	// The server releases surviving grabs with the connection.
	b.conn.Close()
	return nil
}
