// Package action turns configured binding actions into callbacks
// suitable for hotkey dispatch: clipboard copy, paste keystroke,
// confirmation beep, and detached command execution.
package action

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Spec names an action and carries its payload.
type Spec struct {
	Name    string
	Text    string
	Command []string
}

// Resolve compiles spec into a function usable as a hotkey callback.
// The returned function never blocks for long: slow work runs on its
// own goroutine so the dispatch loop keeps moving.
func Resolve(spec Spec, log zerolog.Logger) (func(), error) {
	switch spec.Name {
	case "clip":
		if spec.Text == "" {
			return nil, fmt.Errorf("clip action has no text")
		}
		return func() {
			if err := Copy(spec.Text); err != nil {
				log.Warn().Err(err).Msg("clipboard copy failed")
				return
			}
			log.Debug().Int("chars", len(spec.Text)).Msg("copied to clipboard")
		}, nil
	case "paste":
		return func() {
			if err := Paste(); err != nil {
				log.Warn().Err(err).Msg("paste keystroke failed")
			}
		}, nil
	case "beep":
		return Beep, nil
	case "exec":
		if len(spec.Command) == 0 {
			return nil, fmt.Errorf("exec action has no command")
		}
		return func() {
			if err := Run(spec.Command); err != nil {
				log.Warn().Err(err).Strs("argv", spec.Command).Msg("command failed to start")
			}
		}, nil
	}
	return nil, fmt.Errorf("unknown action %q", spec.Name)
}
