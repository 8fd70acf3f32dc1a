package hotkey

import "errors"

// Sentinel errors returned by Context operations. Callers match them
// with errors.Is; the wrapped text carries the native detail.
var (
	// ErrUnsupportedKey means the key or modifier set has no native
	// equivalent on this platform.
	ErrUnsupportedKey = errors.New("key not supported on this platform")

	// ErrDuplicateRegistration means the exact combination is already
	// registered on this context.
	ErrDuplicateRegistration = errors.New("combination already registered")

	// ErrRegistrationFailed means the native registration call was
	// rejected, typically because another program owns the combination.
	ErrRegistrationFailed = errors.New("native registration failed")

	// ErrNotRegistered means the combination is not currently
	// registered on this context.
	ErrNotRegistered = errors.New("combination not registered")

	// ErrBackendInit means the platform backend could not be brought
	// up (no display connection, no portal, unsupported OS).
	ErrBackendInit = errors.New("hotkey backend initialization failed")

	// ErrClosed means the context has been closed, or was never
	// created with New.
	ErrClosed = errors.New("hotkey context closed")
)
