// libhotkey exposes the hotkey library over a flat C ABI. Build it as
// a shared library:
//
//	go build -buildmode=c-shared -o dist/libhotkey.so ./cmd/libhotkey
//
// The caller holds an opaque context handle from hotkey_init and
// drives delivery by calling hotkey_poll_events from one thread. Every
// call for one context must come from that same thread. Triggered
// identities returned by hotkey_get_triggered stay owned by the
// context and are valid only until the next hotkey_poll_events or
// hotkey_get_triggered call; copy them out before calling again.
//
// On macOS, Carbon posts activations to the main thread's event queue:
// either call hotkey_poll_events from the main thread, or run a native
// event loop there (an AppKit application does) and poll from wherever
// is convenient.
package main

/*
#include <stdlib.h>
#include "hotkey_abi.h"
*/
import "C"

import (
	"os"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
	"github.com/uncrumpled2/jai-system-hotkey/internal/logging"
)

// ctxState pairs a live context with its C-owned triggered buffer.
type ctxState struct {
	ctx *hotkey.Context
	buf *C.hotkey_id
	cap int
}

// live tracks handles issued by hotkey_init so that stale or doubled
// shutdowns degrade to no-ops instead of tearing through a dead handle.
var (
	mu   sync.Mutex
	live = map[cgo.Handle]*ctxState{}
)

func lookup(h C.uintptr_t) *ctxState {
	mu.Lock()
	defer mu.Unlock()
	return live[cgo.Handle(h)]
}

// hotkey_init creates a context on the platform backend and returns
// its handle, or 0 when the backend cannot start. Set HOTKEY_LOG_LEVEL
// to get diagnostics on stderr.
//
//export hotkey_init
func hotkey_init() C.uintptr_t {
	logger := zerolog.Nop()
	if os.Getenv("HOTKEY_LOG_LEVEL") != "" {
		logger = logging.NewFromEnv()
	}

	ctx, err := hotkey.New(hotkey.WithLogger(logger))
	if err != nil {
		return 0
	}

	s := &ctxState{ctx: ctx}
	h := cgo.NewHandle(s)
	mu.Lock()
	live[h] = s
	mu.Unlock()
	return C.uintptr_t(h)
}

// hotkey_shutdown releases every registration and the backend. The
// handle is dead afterwards; a second call with it is a no-op.
//
//export hotkey_shutdown
func hotkey_shutdown(h C.uintptr_t) {
	mu.Lock()
	s := live[cgo.Handle(h)]
	delete(live, cgo.Handle(h))
	mu.Unlock()
	if s == nil {
		return
	}

	s.ctx.Close()
	if s.buf != nil {
		C.free(unsafe.Pointer(s.buf))
		s.buf = nil
		s.cap = 0
	}
	cgo.Handle(h).Delete()
}

// hotkey_register grabs the combination. With a callback the press is
// delivered by invoking it during hotkey_poll_events; without one the
// press lands in the triggered queue. Returns false on a duplicate
// identity, an unsupported key, or a native registration failure.
//
//export hotkey_register
func hotkey_register(h C.uintptr_t, mods C.uint8_t, key C.uint16_t, cb C.hotkey_callback, userData unsafe.Pointer) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}

	hk := hotkey.Hotkey{Mods: hotkey.Modifiers(mods), Key: hotkey.Key(key)}
	var fn func(hotkey.Event)
	if cb != nil {
		id := C.hotkey_id{mods: mods, key: key}
		fn = func(hotkey.Event) { invokeCallback(cb, id, userData) }
	}

	return C.bool(s.ctx.Register(hk, fn) == nil)
}

// hotkey_unregister releases the combination. Returns false when it
// was not registered.
//
//export hotkey_unregister
func hotkey_unregister(h C.uintptr_t, mods C.uint8_t, key C.uint16_t) C.bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	hk := hotkey.Hotkey{Mods: hotkey.Modifiers(mods), Key: hotkey.Key(key)}
	return C.bool(s.ctx.Unregister(hk) == nil)
}

// hotkey_poll_events pumps the backend and dispatches pending presses:
// callbacks fire here, queue-mode presses become retrievable through
// hotkey_get_triggered.
//
//export hotkey_poll_events
func hotkey_poll_events(h C.uintptr_t) {
	if s := lookup(h); s != nil {
		s.ctx.Poll()
	}
}

// hotkey_get_triggered drains queue-mode presses accumulated by
// hotkey_poll_events into a context-owned array and returns the count.
//
//export hotkey_get_triggered
func hotkey_get_triggered(h C.uintptr_t, out **C.hotkey_id) C.int {
	if out == nil {
		return 0
	}
	*out = nil

	s := lookup(h)
	if s == nil {
		return 0
	}

	evs := s.ctx.Triggered()
	if len(evs) == 0 {
		return 0
	}

	if s.cap < len(evs) {
		if s.buf != nil {
			C.free(unsafe.Pointer(s.buf))
		}
		s.buf = (*C.hotkey_id)(C.malloc(C.size_t(len(evs)) * C.sizeof_hotkey_id))
		if s.buf == nil {
			s.cap = 0
			return 0
		}
		s.cap = len(evs)
	}

	arr := unsafe.Slice(s.buf, len(evs))
	for i, ev := range evs {
		arr[i].mods = C.uint8_t(ev.Hotkey.Mods)
		arr[i].key = C.uint16_t(ev.Hotkey.Key)
	}
	*out = s.buf
	return C.int(len(evs))
}

func main() {}
