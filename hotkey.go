// Package hotkey registers system-wide keyboard shortcuts that fire
// regardless of input focus.
//
// A Context owns the native registrations. The caller drives it from a
// single goroutine: Register and Unregister manage combinations, Poll
// pulls everything the OS captured since the last call, and triggers
// are consumed either through the callback passed to Register (invoked
// synchronously inside Poll) or, for callback-less registrations, by
// draining Triggered. Close releases every native registration; after
// that the context only returns ErrClosed.
//
// Register, Unregister, Poll, Triggered and Close must all be called
// from the same goroutine. The native capture side runs on its own OS
// threads and hands events over internally; nothing is delivered off
// the polling goroutine.
//
// On macOS, Carbon posts activations to the main thread's event queue.
// Poll drains that queue when the polling goroutine is locked to the
// main thread; otherwise the process must run a native event loop
// there, as AppKit and tray hosts do. See cmd/hkmon for the locked
// main thread pattern.
package hotkey

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Hotkey is the identity of a combination: the full modifier set plus
// exactly one non-modifier key. It is a comparable value; two Hotkeys
// with the same mask and key are the same combination everywhere in
// this package.
type Hotkey struct {
	Mods Modifiers
	Key  Key
}

func (hk Hotkey) String() string {
	if hk.Mods == 0 {
		return hk.Key.String()
	}
	return hk.Mods.String() + "+" + hk.Key.String()
}

// Event records one firing of a registered combination. Time is the
// poll-side receive time, not the native event timestamp.
type Event struct {
	Hotkey Hotkey
	Time   time.Time
}

type ctxState uint8

const (
	stateUninit ctxState = iota
	stateActive
	stateClosing
	stateClosed
)

type entry struct {
	handle   uint64
	callback func(Event)
}

// Context owns one backend and one registration table. The zero value
// is unusable; create with New. Not safe for concurrent use: drive it
// from one goroutine.
type Context struct {
	log      zerolog.Logger
	b        backend
	state    ctxState
	entries  map[Hotkey]*entry
	byHandle map[uint64]Hotkey
	pending  []Event
	out      []Event
	pumpBuf  []uint64
}

// Option configures a Context at creation.
type Option func(*Context)

// WithLogger routes the context's diagnostics to log. The default
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Context) { c.log = log }
}

// WithFake backs the context with f instead of the platform backend,
// for tests and headless runs.
func WithFake(f *Fake) Option {
	return func(c *Context) { c.b = f }
}

// New creates a Context backed by the platform's capture mechanism.
// Failure to bring the backend up is reported as ErrBackendInit with
// the native cause attached.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		log:      zerolog.Nop(),
		entries:  make(map[Hotkey]*entry),
		byHandle: make(map[uint64]Hotkey),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.b == nil {
		b, err := newBackend(c.log)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
		}
		c.b = b
	}
	c.state = stateActive
	return c, nil
}

// Register grabs the combination and associates it with fn. A nil fn
// queues triggers for Triggered instead; a non-nil fn is invoked
// synchronously inside Poll and suppresses queueing. At most one
// registration per combination exists at a time; on any failure the
// table and the native state are left untouched.
func (c *Context) Register(hk Hotkey, fn func(Event)) error {
	if c.state != stateActive {
		return ErrClosed
	}
	if !hk.Key.Valid() {
		return fmt.Errorf("%w: invalid key code %d", ErrUnsupportedKey, uint16(hk.Key))
	}
	if hk.Mods&^modAll != 0 {
		return fmt.Errorf("%w: unknown modifier bits %#x", ErrUnsupportedKey, uint8(hk.Mods&^modAll))
	}
	if _, dup := c.entries[hk]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, hk)
	}
	h, err := c.b.register(hk.Mods, hk.Key)
	if err != nil {
		return err
	}
	c.entries[hk] = &entry{handle: h, callback: fn}
	c.byHandle[h] = hk
	c.log.Debug().Str("combo", hk.String()).Uint64("handle", h).Msg("hotkey registered")
	return nil
}

// Unregister releases the combination. The registration is gone when
// Unregister returns: a trigger already captured but not yet polled is
// dropped, never delivered.
func (c *Context) Unregister(hk Hotkey) error {
	if c.state != stateActive {
		return ErrClosed
	}
	e, ok := c.entries[hk]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, hk)
	}
	delete(c.entries, hk)
	delete(c.byHandle, e.handle)
	if err := c.b.unregister(e.handle); err != nil {
		c.log.Warn().Err(err).Str("combo", hk.String()).Msg("native release failed")
	}
	c.log.Debug().Str("combo", hk.String()).Msg("hotkey unregistered")
	return nil
}

// Poll drains everything the backend captured since the last call, in
// firing order. Triggers whose combination has a callback run it here,
// on the calling goroutine; the rest are appended to the pending queue.
// Triggers for combinations unregistered since capture are discarded.
// Poll never blocks waiting for input.
func (c *Context) Poll() error {
	if c.state != stateActive {
		return ErrClosed
	}
	c.pumpBuf = c.b.pump(c.pumpBuf[:0])
	if len(c.pumpBuf) == 0 {
		return nil
	}
	now := time.Now()
	for _, h := range c.pumpBuf {
		hk, ok := c.byHandle[h]
		if !ok {
			continue
		}
		ev := Event{Hotkey: hk, Time: now}
		if cb := c.entries[hk].callback; cb != nil {
			cb(ev)
			continue
		}
		c.pending = append(c.pending, ev)
	}
	return nil
}

// Triggered returns the queued events accumulated by Poll, oldest
// first, and clears the queue; a second call without an intervening
// Poll returns an empty slice. The returned slice is reused: it is
// valid until the next Poll or Triggered call. Returns nil on a closed
// context.
func (c *Context) Triggered() []Event {
	if c.state != stateActive {
		return nil
	}
	c.out, c.pending = c.pending, c.out[:0]
	return c.out
}

// Close releases every registration exactly once, then the backend.
// Individual native release failures are logged and do not stop the
// sweep. Closing a closed or never-opened context is a no-op.
func (c *Context) Close() error {
	if c.state != stateActive {
		return nil
	}
	c.state = stateClosing
	for hk, e := range c.entries {
		if err := c.b.unregister(e.handle); err != nil {
			c.log.Warn().Err(err).Str("combo", hk.String()).Msg("release failed during shutdown")
		}
	}
	c.entries = nil
	c.byHandle = nil
	c.pending = nil
	c.out = nil
	err := c.b.close()
	c.state = stateClosed
	if err != nil {
		return fmt.Errorf("closing backend: %w", err)
	}
	return nil
}
