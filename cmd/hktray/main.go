// hktray is the system tray daemon: it grabs every combination in the
// config file, runs the bound actions on press, and rebinds on the fly
// when the config changes on disk.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/uncrumpled2/jai-system-hotkey/internal/action"
	"github.com/uncrumpled2/jai-system-hotkey/internal/autostart"
	"github.com/uncrumpled2/jai-system-hotkey/internal/config"
	"github.com/uncrumpled2/jai-system-hotkey/internal/logging"
)

var version = "dev"

var (
	logger     zerolog.Logger
	configPath string

	quitCh       = make(chan struct{})
	reloadCh     = make(chan *config.Config, 1)
	engineDone   = make(chan struct{})
	shutdownOnce sync.Once
)

func main() {
	configFlag := flag.String("config", "", "Path to the config file (default: per-user config dir)")
	logPathFlag := flag.String("logpath", "", "Directory for the hktray log file")
	logLevelFlag := flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hktray %s\n", version)
		return
	}

	level := zerolog.InfoLevel
	if lvl, ok := logging.ParseLevel(*logLevelFlag); ok {
		level = lvl
	}

	// Tray daemons detach from the terminal, so diagnostics go to a file.
	logger = zerolog.Nop()
	if dir, err := logging.ResolveDir(*logPathFlag); err == nil {
		cfg := logging.DefaultConfig()
		cfg.Level = level
		if l, closer, err := logging.NewFile(dir, cfg); err == nil {
			logger = l
			defer closer.Close()
		}
	}

	configPath = *configFlag
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		configPath = p
	}

	logger.Info().Str("version", version).Str("config", configPath).Msg("hktray starting")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		systray.Quit()
	}()

	systray.Run(onReady, onExit)
}

func onReady() {
	systray.SetTitle("hotkey")
	systray.SetTooltip("hotkey daemon")

	mBindings := systray.AddMenuItem("Bindings: 0", "Bindings currently grabbed")
	mBindings.Disable()
	systray.AddSeparator()
	mOpen := systray.AddMenuItem("Open config", "Open the config file")
	mReload := systray.AddMenuItem("Reload config", "Reload bindings from disk")
	mLogin := systray.AddMenuItemCheckbox("Start at login", "Launch hktray when you log in", autostart.Enabled())
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Stop the hotkey daemon")

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load config, starting with defaults")
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("config invalid, starting with defaults")
		cfg = config.Default()
	}

	eng := newEngine(logger, func(bound int) {
		mBindings.SetTitle(fmt.Sprintf("Bindings: %d", bound))
		systray.SetTooltip(fmt.Sprintf("hotkey daemon - %d bindings", bound))
	})
	go eng.run(cfg, reloadCh, quitCh, engineDone)

	watcher, err := config.Watch(configPath, logger, func(next *config.Config) {
		pushReload(next)
	})
	if err != nil {
		logger.Warn().Err(err).Msg("config watching disabled")
	}

	go func() {
		for {
			select {
			case <-mOpen.ClickedCh:
				if err := action.Run(openCommand(configPath)); err != nil {
					logger.Warn().Err(err).Msg("could not open config")
				}
			case <-mReload.ClickedCh:
				next, err := config.Load(configPath)
				if err != nil {
					logger.Warn().Err(err).Msg("reload failed")
					continue
				}
				if err := next.Validate(); err != nil {
					logger.Warn().Err(err).Msg("reload rejected, config invalid")
					continue
				}
				pushReload(next)
			case <-mLogin.ClickedCh:
				if mLogin.Checked() {
					if err := autostart.Disable(); err != nil {
						logger.Warn().Err(err).Msg("could not disable autostart")
						continue
					}
					mLogin.Uncheck()
				} else {
					if err := autostart.Enable(); err != nil {
						logger.Warn().Err(err).Msg("could not enable autostart")
						continue
					}
					mLogin.Check()
				}
			case <-mQuit.ClickedCh:
				if watcher != nil {
					watcher.Close()
				}
				systray.Quit()
				return
			}
		}
	}()
}

func onExit() {
	shutdownOnce.Do(func() {
		close(quitCh)
		<-engineDone
		logger.Info().Msg("hktray stopped")
	})
}

// pushReload replaces any queued config so the engine always applies
// the newest one.
func pushReload(cfg *config.Config) {
	for {
		select {
		case reloadCh <- cfg:
			return
		default:
			select {
			case <-reloadCh:
			default:
			}
		}
	}
}

func openCommand(path string) []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open", path}
	case "windows":
		return []string{"explorer", path}
	}
	return []string{"xdg-open", path}
}
