//go:build windows

package hotkey

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

const (
	wmHotkey = 0x0312

	pmNoRemove = 0x0000
	pmRemove   = 0x0001
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procPeekMessage        = user32.NewProc("PeekMessageW")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

// Win32 MSG, the layout PeekMessageW writes.
type winMsg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// windowsBackend drives RegisterHotKey. The API binds registrations to
// the calling thread's message queue, so a dedicated locked OS thread
// owns them all and every native call is marshaled onto it as a
// closure; WM_HOTKEY lands in that thread's queue and pump drains it
// without blocking.
type windowsBackend struct {
	log      zerolog.Logger
	cmds     chan func()
	threadID uint32
	nextID   uint32
	ids      map[uint64]struct{}
}

func newBackend(log zerolog.Logger) (backend, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("loading user32: %w", err)
	}
	b := &windowsBackend{
		log:  log,
		cmds: make(chan func(), 16),
		ids:  make(map[uint64]struct{}),
	}
	ready := make(chan uint32)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		// A thread gets a message queue on its first user32 call.
		var msg winMsg
		procPeekMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmNoRemove)

		tid, _, _ := procGetCurrentThreadId.Call()
		ready <- uint32(tid)

		for cmd := range b.cmds {
			cmd()
		}
	}()
	b.threadID = <-ready
	b.log.Debug().Uint32("thread", b.threadID).Msg("hotkey thread up")
	return b, nil
}

func (b *windowsBackend) register(mods Modifiers, key Key) (uint64, error) {
	vk, err := keyToVK(key)
	if err != nil {
		return 0, err
	}
	fs := modsToNative(mods)

	id := b.nextID + 1
	done := make(chan error, 1)
	b.cmds <- func() {
		r1, _, callErr := procRegisterHotKey.Call(0, uintptr(id), uintptr(fs), uintptr(vk))
		if r1 == 0 {
			done <- callErr
			return
		}
		done <- nil
	}
	if err := <-done; err != nil {
		return 0, fmt.Errorf("%w: RegisterHotKey: %v", ErrRegistrationFailed, err)
	}
	b.nextID = id
	b.ids[uint64(id)] = struct{}{}
	return uint64(id), nil
}

func (b *windowsBackend) unregister(handle uint64) error {
	if _, ok := b.ids[handle]; !ok {
		return nil
	}
	delete(b.ids, handle)

	done := make(chan error, 1)
	b.cmds <- func() {
		r1, _, callErr := procUnregisterHotKey.Call(0, uintptr(handle))
		if r1 == 0 {
			done <- callErr
			return
		}
		done <- nil
	}
	if err := <-done; err != nil {
		return fmt.Errorf("UnregisterHotKey: %v", err)
	}
	return nil
}

func (b *windowsBackend) pump(dst []uint64) []uint64 {
	done := make(chan []uint64, 1)
	b.cmds <- func() {
		var msg winMsg
		for i := 0; i < pumpMax; i++ {
			r1, _, _ := procPeekMessage.Call(
				uintptr(unsafe.Pointer(&msg)),
				0,
				wmHotkey,
				wmHotkey,
				pmRemove,
			)
			if r1 == 0 {
				break
			}
			dst = append(dst, uint64(msg.wParam))
		}
		done <- dst
	}
	return <-done
}

func (b *windowsBackend) close() error {
	close(b.cmds)
	return nil
}
