//go:build linux

package hotkey

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	shortcutsIface  = "org.freedesktop.portal.GlobalShortcuts"
	requestIface    = "org.freedesktop.portal.Request"
	sessionIface    = "org.freedesktop.portal.Session"
	propertiesIface = "org.freedesktop.DBus.Properties"

	// BindShortcuts may pop a compositor approval dialog, so its
	// response can take as long as the user takes.
	bindTimeout    = 30 * time.Second
	requestTimeout = 5 * time.Second

	// Activations buffered between polls. Beyond this the newest are
	// dropped; a stalled poller must not grow without bound.
	portalBufCap = 64
)

type portalShortcut struct {
	id      string
	trigger string
}

// portalBackend binds shortcuts through the XDG Desktop Portal
// GlobalShortcuts interface, the mechanism Wayland compositors expose.
// The portal owns the actual grab; we receive Activated signals on the
// session bus. Binding is whole-set: every register/unregister re-binds
// the complete current set, handles stay stable across re-binds.
type portalBackend struct {
	log     zerolog.Logger
	conn    *dbus.Conn
	session dbus.ObjectPath
	sender  string

	signals chan *dbus.Signal
	quit    chan struct{}

	mu        sync.Mutex
	waiters   map[dbus.ObjectPath]chan *dbus.Signal
	byID      map[string]uint64
	triggers  chan uint64
	shortcuts map[uint64]portalShortcut
	next      uint64
}

func newPortalBackend(log zerolog.Logger) (backend, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}

	obj := conn.Object(portalDest, portalPath)
	var version uint32
	err = obj.Call(propertiesIface+".Get", 0, shortcutsIface, "version").Store(&version)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("GlobalShortcuts portal not available: %w", err)
	}
	log.Debug().Uint32("version", version).Msg("global shortcuts portal available")

	b := &portalBackend{
		log:       log,
		conn:      conn,
		sender:    senderToken(conn),
		signals:   make(chan *dbus.Signal, 32),
		quit:      make(chan struct{}),
		waiters:   make(map[dbus.ObjectPath]chan *dbus.Signal),
		byID:      make(map[string]uint64),
		triggers:  make(chan uint64, portalBufCap),
		shortcuts: make(map[uint64]portalShortcut),
	}

	for _, rule := range []string{
		fmt.Sprintf("type='signal',interface='%s',member='Response'", requestIface),
		fmt.Sprintf("type='signal',interface='%s',member='Activated'", shortcutsIface),
	} {
		if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, rule).Err; err != nil {
			conn.Close()
			return nil, fmt.Errorf("adding signal match: %w", err)
		}
	}
	conn.Signal(b.signals)
	go b.watch()

	if err := b.createSession(); err != nil {
		b.close()
		return nil, err
	}
	return b, nil
}

// senderToken derives the request-path component from our unique bus
// name, per the portal spec (":1.42" becomes "1_42").
func senderToken(conn *dbus.Conn) string {
	names := conn.Names()
	if len(names) == 0 {
		return ""
	}
	return strings.ReplaceAll(strings.TrimPrefix(names[0], ":"), ".", "_")
}

func newToken() string {
	return "hk_" + strings.ReplaceAll(uuid.NewString(), "-", "_")
}

// watch routes bus signals: Response signals wake the request waiter
// for their path, Activated signals queue the shortcut's handle for
// the next pump.
func (b *portalBackend) watch() {
	for {
		select {
		case <-b.quit:
			return
		case sig := <-b.signals:
			if sig == nil {
				return
			}
			switch sig.Name {
			case requestIface + ".Response":
				b.mu.Lock()
				ch, ok := b.waiters[sig.Path]
				if ok {
					delete(b.waiters, sig.Path)
				}
				b.mu.Unlock()
				if ok {
					ch <- sig
				}
			case shortcutsIface + ".Activated":
				if len(sig.Body) < 2 {
					continue
				}
				id, ok := sig.Body[1].(string)
				if !ok {
					continue
				}
				b.mu.Lock()
				h, known := b.byID[id]
				b.mu.Unlock()
				if !known {
					continue
				}
				select {
				case b.triggers <- h:
				default:
					b.log.Warn().Str("id", id).Msg("activation dropped, buffer full")
				}
			}
		}
	}
}

// request performs one portal request: subscribe to the expected
// Response path, invoke the method with our handle token, wait for the
// response. Returns the response results on success.
func (b *portalBackend) request(method string, timeout time.Duration, options map[string]dbus.Variant, args ...interface{}) (map[string]dbus.Variant, error) {
	token := newToken()
	options["handle_token"] = dbus.MakeVariant(token)
	expected := dbus.ObjectPath(fmt.Sprintf("/org/freedesktop/portal/desktop/request/%s/%s", b.sender, token))

	wait := make(chan *dbus.Signal, 1)
	b.mu.Lock()
	b.waiters[expected] = wait
	b.mu.Unlock()

	var requestPath dbus.ObjectPath
	call := b.conn.Object(portalDest, portalPath).Call(method, 0, append(args, options)...)
	if err := call.Store(&requestPath); err != nil {
		b.mu.Lock()
		delete(b.waiters, expected)
		b.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if requestPath != expected {
		// Older portals make up their own request path; re-home the
		// waiter before the response can race us.
		b.mu.Lock()
		delete(b.waiters, expected)
		b.waiters[requestPath] = wait
		b.mu.Unlock()
	}

	select {
	case sig := <-wait:
		if len(sig.Body) < 2 {
			return nil, fmt.Errorf("%s: malformed response", method)
		}
		code, _ := sig.Body[0].(uint32)
		if code != 0 {
			return nil, fmt.Errorf("%s: denied (response %d)", method, code)
		}
		results, _ := sig.Body[1].(map[string]dbus.Variant)
		return results, nil
	case <-time.After(timeout):
		b.mu.Lock()
		delete(b.waiters, requestPath)
		b.mu.Unlock()
		return nil, fmt.Errorf("%s: no response within %s", method, timeout)
	}
}

func (b *portalBackend) createSession() error {
	options := map[string]dbus.Variant{
		"session_handle_token": dbus.MakeVariant(newToken()),
	}
	results, err := b.request(shortcutsIface+".CreateSession", requestTimeout, options)
	if err != nil {
		return fmt.Errorf("creating portal session: %w", err)
	}
	raw, ok := results["session_handle"]
	if !ok {
		return fmt.Errorf("creating portal session: no session handle in response")
	}
	switch v := raw.Value().(type) {
	case string:
		b.session = dbus.ObjectPath(v)
	case dbus.ObjectPath:
		b.session = v
	default:
		return fmt.Errorf("creating portal session: unexpected session handle type %T", v)
	}
	b.log.Debug().Str("session", string(b.session)).Msg("portal session created")
	return nil
}

// rebind pushes the complete current set to the portal.
func (b *portalBackend) rebind() error {
	b.mu.Lock()
	shortcuts := make([]struct {
		ID   string
		Data map[string]dbus.Variant
	}, 0, len(b.shortcuts))
	for _, sc := range b.shortcuts {
		shortcuts = append(shortcuts, struct {
			ID   string
			Data map[string]dbus.Variant
		}{
			ID: sc.id,
			Data: map[string]dbus.Variant{
				"description":       dbus.MakeVariant(sc.id),
				"preferred_trigger": dbus.MakeVariant(sc.trigger),
			},
		})
	}
	b.mu.Unlock()

	_, err := b.request(shortcutsIface+".BindShortcuts", bindTimeout,
		map[string]dbus.Variant{}, b.session, shortcuts, "")
	return err
}

func (b *portalBackend) register(mods Modifiers, key Key) (uint64, error) {
	id := Hotkey{Mods: mods, Key: key}.String()
	trigger := portalTrigger(mods, key)

	b.mu.Lock()
	b.next++
	h := b.next
	b.shortcuts[h] = portalShortcut{id: id, trigger: trigger}
	b.byID[id] = h
	b.mu.Unlock()

	if err := b.rebind(); err != nil {
		b.mu.Lock()
		delete(b.shortcuts, h)
		delete(b.byID, id)
		b.mu.Unlock()
		return 0, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}
	return h, nil
}

func (b *portalBackend) unregister(handle uint64) error {
	b.mu.Lock()
	sc, ok := b.shortcuts[handle]
	if !ok {
		b.mu.Unlock()
		return nil
	}
	delete(b.shortcuts, handle)
	delete(b.byID, sc.id)
	b.mu.Unlock()

	if err := b.rebind(); err != nil {
		return fmt.Errorf("rebinding after release: %w", err)
	}
	return nil
}

func (b *portalBackend) pump(dst []uint64) []uint64 {
	for i := 0; i < pumpMax; i++ {
		select {
		case h := <-b.triggers:
			dst = append(dst, h)
		default:
			return dst
		}
	}
	return dst
}

func (b *portalBackend) close() error {
	if b.session != "" {
		_ = b.conn.Object(portalDest, b.session).Call(sessionIface+".Close", 0).Err
		b.session = ""
	}
	close(b.quit)
	b.conn.RemoveSignal(b.signals)
	return b.conn.Close()
}

// portalTrigger renders a combination in the shortcuts-spec syntax the
// portal expects for preferred_trigger, e.g. "CTRL+SHIFT+a".
func portalTrigger(mods Modifiers, key Key) string {
	var sb strings.Builder
	if mods&ModCtrl != 0 {
		sb.WriteString("CTRL+")
	}
	if mods&ModShift != 0 {
		sb.WriteString("SHIFT+")
	}
	if mods&ModAlt != 0 {
		sb.WriteString("ALT+")
	}
	if mods&ModSuper != 0 {
		sb.WriteString("LOGO+")
	}
	sb.WriteString(portalKeyName(key))
	return sb.String()
}

// portalKeyName maps a Key to its XKB keysym name, which the shortcuts
// syntax uses for non-modifier keys.
func portalKeyName(key Key) string {
	switch key {
	case KeyEnter:
		return "Return"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "BackSpace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "Prior"
	case KeyPageDown:
		return "Next"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "space"
	case KeyMinus:
		return "minus"
	case KeyEqual:
		return "equal"
	case KeyLeftBracket:
		return "bracketleft"
	case KeyRightBracket:
		return "bracketright"
	case KeyBackslash:
		return "backslash"
	case KeySemicolon:
		return "semicolon"
	case KeyQuote:
		return "apostrophe"
	case KeyComma:
		return "comma"
	case KeyPeriod:
		return "period"
	case KeySlash:
		return "slash"
	case KeyGrave:
		return "grave"
	case KeyPrintScreen:
		return "Print"
	case KeyPause:
		return "Pause"
	}
	if key >= KeyF1 && key <= KeyF24 {
		return strings.ToUpper(key.String())
	}
	return key.String()
}
