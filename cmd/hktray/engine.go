package main

import (
	"time"

	"github.com/rs/zerolog"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
	"github.com/uncrumpled2/jai-system-hotkey/internal/action"
	"github.com/uncrumpled2/jai-system-hotkey/internal/config"
)

// engine owns the hotkey context. Every context call happens on its
// run goroutine; config reloads and shutdown arrive over channels.
type engine struct {
	log     zerolog.Logger
	applied func(bound int)
	bound   map[hotkey.Hotkey]string
}

func newEngine(log zerolog.Logger, applied func(int)) *engine {
	return &engine{
		log:     log,
		applied: applied,
		bound:   make(map[hotkey.Hotkey]string),
	}
}

func (e *engine) run(initial *config.Config, reload <-chan *config.Config, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, err := hotkey.New(hotkey.WithLogger(e.log))
	if err != nil {
		e.log.Error().Err(err).Msg("hotkey backend unavailable")
		e.applied(0)
		// Stay alive so the tray still offers config editing and Quit.
		<-quit
		return
	}
	defer ctx.Close()

	e.apply(ctx, initial)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case cfg := <-reload:
			e.apply(ctx, cfg)
		case <-ticker.C:
			if err := ctx.Poll(); err != nil {
				e.log.Error().Err(err).Msg("poll failed, stopping")
				return
			}
		}
	}
}

// apply rebinds the whole set: everything currently grabbed is
// released, then each configured binding is registered with its
// action as the press callback.
func (e *engine) apply(ctx *hotkey.Context, cfg *config.Config) {
	for hk := range e.bound {
		if err := ctx.Unregister(hk); err != nil {
			e.log.Warn().Err(err).Str("combo", hk.String()).Msg("unbind failed")
		}
	}
	e.bound = make(map[hotkey.Hotkey]string, len(cfg.Bindings))

	for _, b := range cfg.Bindings {
		hk, err := hotkey.ParseCombo(b.Combo)
		if err != nil {
			e.log.Warn().Err(err).Str("combo", b.Combo).Msg("skipping binding")
			continue
		}
		fn, err := action.Resolve(action.Spec{Name: b.Action, Text: b.Text, Command: b.Command}, e.log)
		if err != nil {
			e.log.Warn().Err(err).Str("combo", b.Combo).Msg("skipping binding")
			continue
		}

		combo, name := hk.String(), b.Action
		cb := func(ev hotkey.Event) {
			e.log.Debug().Str("combo", combo).Str("action", name).Time("at", ev.Time).Msg("press")
			fn()
		}
		if err := ctx.Register(hk, cb); err != nil {
			e.log.Warn().Err(err).Str("combo", b.Combo).Msg("grab failed")
			continue
		}
		e.bound[hk] = name
	}

	e.log.Info().Int("bound", len(e.bound)).Int("configured", len(cfg.Bindings)).Msg("bindings applied")
	e.applied(len(e.bound))
}
