package hotkey

import "sync"

// Fake is an in-process backend for tests and headless runs: no native
// calls, triggers are injected with Trigger. Pass it to New via
// WithFake and keep the pointer to drive and inspect it. Safe for
// concurrent use, so a test or a stdin reader may Trigger from another
// goroutine while the context polls.
type Fake struct {
	mu          sync.Mutex
	next        uint64
	grabs       map[uint64]Hotkey
	queue       []uint64
	registerErr error
	released    int
	closed      bool
}

func NewFake() *Fake {
	return &Fake{grabs: make(map[uint64]Hotkey)}
}

// Trigger simulates the OS firing the combination. It reports whether
// the combination is currently grabbed; an un-grabbed combination is
// ignored, like a keystroke the OS never captured.
func (f *Fake) Trigger(hk Hotkey) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for h, g := range f.grabs {
		if g == hk {
			f.queue = append(f.queue, h)
			return true
		}
	}
	return false
}

// FailRegistrations makes every subsequent register call fail with
// err until called again with nil. Used to simulate combinations owned
// by another program.
func (f *Fake) FailRegistrations(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerErr = err
}

// Grabbed returns the combinations currently held, in no particular
// order. Empty after a clean shutdown.
func (f *Fake) Grabbed() []Hotkey {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Hotkey, 0, len(f.grabs))
	for _, g := range f.grabs {
		out = append(out, g)
	}
	return out
}

// Released returns how many native releases were performed, for
// exactly-once accounting in shutdown tests.
func (f *Fake) Released() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.released
}

// Closed reports whether the backend was shut down.
func (f *Fake) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Fake) register(mods Modifiers, key Key) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return 0, f.registerErr
	}
	f.next++
	f.grabs[f.next] = Hotkey{Mods: mods, Key: key}
	return f.next, nil
}

func (f *Fake) unregister(handle uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.grabs[handle]; !ok {
		return nil
	}
	delete(f.grabs, handle)
	f.released++
	return nil
}

func (f *Fake) pump(dst []uint64) []uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	dst = append(dst, f.queue...)
	f.queue = f.queue[:0]
	return dst
}

func (f *Fake) close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.queue = nil
	return nil
}
