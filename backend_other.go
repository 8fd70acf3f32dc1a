//go:build !windows && !linux && !darwin

package hotkey

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

func newBackend(log zerolog.Logger) (backend, error) {
	return nil, fmt.Errorf("no hotkey backend for %s", runtime.GOOS)
}
