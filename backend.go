package hotkey

// backend is the native capture mechanism behind a Context. Exactly one
// exists per Context; all methods are called from the goroutine that
// drives the Context.
//
// register translates the combination, performs the native grab and
// returns an opaque handle that stays valid until unregister. Handles
// are never reused within one backend's lifetime. unregister tolerates
// handles it no longer knows. pump appends the handles of combinations
// triggered since the previous call to dst, oldest first, without
// blocking. close releases every native resource; the backend is dead
// afterwards.
type backend interface {
	register(mods Modifiers, key Key) (uint64, error)
	unregister(handle uint64) error
	pump(dst []uint64) []uint64
	close() error
}

// pumpMax caps the triggers drained per pump so a flood cannot starve
// the polling goroutine.
const pumpMax = 128

// newBackend is provided per GOOS by the backend_*.go files.
