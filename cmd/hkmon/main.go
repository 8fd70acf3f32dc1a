// hkmon is a live monitor for global hotkeys: it grabs the requested
// combinations and shows every press as it arrives. With -fake it runs
// against an in-process backend driven by stdin commands instead of
// the real keyboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
	"github.com/uncrumpled2/jai-system-hotkey/internal/logging"
)

var version = "dev"

const defaultCombo = "ctrl+shift+space"

func main() {
	fakeFlag := flag.Bool("fake", false, "Drive a fake backend from stdin commands (TRIGGER/REGISTER/SLEEP/QUIT)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	logPathFlag := flag.String("logpath", "", "Directory for the hkmon log file")
	logLevelFlag := flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hkmon %s\n", version)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{defaultCombo}
	}

	combos := make([]hotkey.Hotkey, 0, len(args))
	for _, s := range args {
		hk, err := hotkey.ParseCombo(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		combos = append(combos, hk)
	}

	level := zerolog.InfoLevel
	if lvl, ok := logging.ParseLevel(*logLevelFlag); ok {
		level = lvl
	}

	if *fakeFlag {
		runFakeMode(combos, level)
		return
	}
	runTUI(combos, *logPathFlag, level)
}

// runTUI grabs the combos on the real backend and hands the terminal
// to the monitor. Diagnostics go to a log file so they never fight the
// alternate screen for stderr. The terminal runs on its own goroutine;
// the context stays on the calling one, which on macOS is the locked
// main thread Carbon delivers hotkey events to.
func runTUI(combos []hotkey.Hotkey, logPath string, level zerolog.Level) {
	logger := zerolog.Nop()
	if dir, err := logging.ResolveDir(logPath); err == nil {
		cfg := logging.DefaultConfig()
		cfg.Level = level
		if l, closer, err := logging.NewFile(dir, cfg); err == nil {
			logger = l
			defer closer.Close()
		}
	}

	ctx, err := hotkey.New(hotkey.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ctx.Close()

	p := tea.NewProgram(newModel(combos), tea.WithAltScreen())

	uiDone := make(chan error, 1)
	go func() {
		_, err := p.Run()
		uiDone <- err
	}()

	for _, hk := range combos {
		err := ctx.Register(hk, nil)
		p.Send(regMsg{combo: hk, err: err})
	}

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-uiDone:
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return
		case <-ticker.C:
			if err := ctx.Poll(); err != nil {
				p.Quit()
				<-uiDone
				return
			}
			for _, ev := range ctx.Triggered() {
				p.Send(eventMsg(ev))
			}
		}
	}
}
