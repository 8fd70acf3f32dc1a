//go:build linux

package hotkey

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// newBackend picks the capture mechanism for this session: the
// GlobalShortcuts portal on Wayland (falling back to X11 for XWayland
// setups without the portal), plain X11 otherwise. HOTKEY_BACKEND=x11
// or HOTKEY_BACKEND=portal forces the choice.
func newBackend(log zerolog.Logger) (backend, error) {
	switch forced := os.Getenv("HOTKEY_BACKEND"); forced {
	case "x11":
		return newX11Backend(log)
	case "portal":
		return newPortalBackend(log)
	case "":
	default:
		return nil, fmt.Errorf("unknown HOTKEY_BACKEND %q (want x11 or portal)", forced)
	}

	if os.Getenv("XDG_SESSION_TYPE") == "wayland" || os.Getenv("WAYLAND_DISPLAY") != "" {
		b, err := newPortalBackend(log)
		if err == nil {
			return b, nil
		}
		log.Debug().Err(err).Msg("portal unavailable, falling back to x11")
	}
	return newX11Backend(log)
}
