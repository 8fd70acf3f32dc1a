//go:build darwin

package hotkey

/*
#cgo LDFLAGS: -framework Carbon
#include <Carbon/Carbon.h>
#include <pthread.h>

extern void hotkeyTriggered(UInt32 id);

static OSStatus hotkeyHandler(EventHandlerCallRef next, EventRef ev, void *data) {
	EventHotKeyID hk;
	GetEventParameter(ev, kEventParamDirectObject, typeEventHotKeyID, NULL, sizeof(hk), NULL, &hk);
	hotkeyTriggered(hk.id);
	return noErr;
}

static EventHandlerRef installHandler(EventHandlerUPP *outUPP) {
	EventTypeSpec spec = {kEventClassKeyboard, kEventHotKeyPressed};
	EventHandlerRef ref = NULL;
	*outUPP = NewEventHandlerUPP(hotkeyHandler);
	if (InstallEventHandler(GetApplicationEventTarget(), *outUPP, 1, &spec, NULL, &ref) != noErr) {
		DisposeEventHandlerUPP(*outUPP);
		*outUPP = NULL;
		return NULL;
	}
	return ref;
}

static void removeHandler(EventHandlerRef ref, EventHandlerUPP upp) {
	if (ref) RemoveEventHandler(ref);
	if (upp) DisposeEventHandlerUPP(upp);
}

// Drains the main thread's event queue. Hotkey activations are posted
// there and only there, so calling this from any other thread would
// poll an always-empty queue; on those threads it is a no-op and
// dispatch is left to whatever loop the host runs on the main thread.
static int pumpQueue(int max) {
	if (!pthread_main_np()) {
		return 0;
	}
	int n = 0;
	while (n < max) {
		EventRef ev = NULL;
		if (ReceiveNextEvent(0, NULL, kEventDurationNoWait, true, &ev) != noErr || ev == NULL) {
			break;
		}
		SendEventToEventTarget(ev, GetEventDispatcherTarget());
		ReleaseEvent(ev);
		n++;
	}
	return n;
}

static OSStatus registerKey(UInt32 mods, UInt32 code, UInt32 id, EventHotKeyRef *outRef) {
	EventHotKeyID hk = { 'GHKY', id };
	return RegisterEventHotKey(code, mods, hk, GetApplicationEventTarget(), 0, outRef);
}

static OSStatus unregisterKey(EventHotKeyRef ref) {
	return UnregisterEventHotKey(ref);
}
*/
import "C"

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Activations buffered between polls; beyond this the newest are
// dropped so a stalled poller cannot grow the event thread's memory.
const darwinBufCap = 64

// Carbon posts hotkey activations to the main thread's event queue, so
// the handler is installed on the application target: an AppKit or
// tray loop on the main thread dispatches them, and when the polling
// thread is itself the main thread, pump drains the queue directly.
// The exported callback hands each id to pump through a buffered
// channel. Registration is a plain Mach call and stays on the caller's
// thread.
//
// Hosts without a native event loop must poll from the main thread;
// cmd/hkmon pins it with runtime.LockOSThread for exactly that reason.
type darwinBackend struct {
	log      zerolog.Logger
	triggers chan uint64
	refs     map[uint64]C.EventHotKeyRef
	handler  C.EventHandlerRef
	upp      C.EventHandlerUPP
}

// Ids are process-global so the exported callback can route an
// activation to its backend without help from Carbon.
var (
	darwinNextID uint32
	darwinMu     sync.RWMutex
	darwinByID   = make(map[uint32]*darwinBackend)
)

//export hotkeyTriggered
func hotkeyTriggered(id C.UInt32) {
	darwinMu.RLock()
	b := darwinByID[uint32(id)]
	darwinMu.RUnlock()
	if b == nil {
		return
	}
	select {
	case b.triggers <- uint64(id):
	default:
		b.log.Warn().Uint32("id", uint32(id)).Msg("activation dropped, buffer full")
	}
}

func newBackend(log zerolog.Logger) (backend, error) {
	b := &darwinBackend{
		log:      log,
		triggers: make(chan uint64, darwinBufCap),
		refs:     make(map[uint64]C.EventHotKeyRef),
	}
	var upp C.EventHandlerUPP
	handler := C.installHandler(&upp)
	if handler == nil {
		return nil, fmt.Errorf("installing carbon event handler failed")
	}
	b.handler, b.upp = handler, upp
	return b, nil
}

func (b *darwinBackend) register(mods Modifiers, key Key) (uint64, error) {
	code, err := keyToCarbon(key)
	if err != nil {
		return 0, err
	}
	cmods := modsToCarbon(mods)
	id := atomic.AddUint32(&darwinNextID, 1)

	var ref C.EventHotKeyRef
	if st := C.registerKey(C.UInt32(cmods), C.UInt32(code), C.UInt32(id), &ref); st != 0 {
		return 0, fmt.Errorf("%w: RegisterEventHotKey status %d", ErrRegistrationFailed, int(st))
	}

	b.refs[uint64(id)] = ref
	darwinMu.Lock()
	darwinByID[id] = b
	darwinMu.Unlock()
	return uint64(id), nil
}

func (b *darwinBackend) unregister(handle uint64) error {
	ref, ok := b.refs[handle]
	if !ok {
		return nil
	}
	delete(b.refs, handle)
	darwinMu.Lock()
	delete(darwinByID, uint32(handle))
	darwinMu.Unlock()

	if st := C.unregisterKey(ref); st != 0 {
		return fmt.Errorf("UnregisterEventHotKey status %d", int(st))
	}
	return nil
}

func (b *darwinBackend) pump(dst []uint64) []uint64 {
	C.pumpQueue(C.int(pumpMax))
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

func (b *darwinBackend) close() error {
	darwinMu.Lock()
	for id, reg := range darwinByID {
		if reg == b {
			delete(darwinByID, id)
		}
	}
	darwinMu.Unlock()
	C.removeHandler(b.handler, b.upp)
	return nil
}
