package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Editors save config files as write bursts or rename dances, so a
// single save can produce several fsnotify events. Reloads are held
// back until the burst settles.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk.
type Watcher struct {
	log      zerolog.Logger
	path     string
	fw       *fsnotify.Watcher
	onChange func(*Config)

	mu    sync.Mutex
	timer *time.Timer

	done chan struct{}
}

// Watch starts watching the config file at path and calls onChange with
// the freshly loaded config after each change. The callback runs on the
// watcher's own goroutine. An empty path uses DefaultPath.
func Watch(path string, log zerolog.Logger, onChange func(*Config)) (*Watcher, error) {
	var err error
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	path = filepath.Clean(path)

	// Watch the parent directory: rename-based saves replace the file,
	// and a watch on the file itself would die with the old inode.
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		log:      log,
		path:     path,
		fw:       fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("config change detected")
			w.schedule()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		w.timer = time.AfterFunc(debounceDelay, w.fire)
		return
	}
	w.timer.Reset(debounceDelay)
}

func (w *Watcher) fire() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msg("failed to reload config, keeping previous")
		return
	}
	if err := cfg.Validate(); err != nil {
		w.log.Warn().Err(err).Msg("reloaded config is invalid, keeping previous")
		return
	}
	w.log.Info().Int("bindings", len(cfg.Bindings)).Msg("config reloaded")
	w.onChange(cfg)
}

// Close stops the watcher. Pending reloads may still fire their
// callback while Close runs, but none start after it returns.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.fw.Close()
	<-w.done
	return err
}
