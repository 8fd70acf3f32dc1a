// Package doctor runs interactive diagnostics for the hotkey stack:
// display server detection, backend registration, press delivery, and
// the clipboard and paste actions.
package doctor

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
	"github.com/uncrumpled2/jai-system-hotkey/internal/action"
)

// Run executes interactive diagnostic checks and returns an exit code
// (0=all pass, 1=any fail). combo is the combination used for the
// press-detection check.
func Run(combo string) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("hotkey doctor - interactive system diagnostics")
	fmt.Println("==============================================")

	allPass := true

	if !checkEnvironment() {
		allPass = false
	}
	if allPass && !checkPress(combo) {
		allPass = false
	}
	if allPass && !checkActions() {
		allPass = false
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
	} else {
		fmt.Println("Some checks failed. See details above.")
	}

	if allPass {
		return 0
	}
	return 1
}

func checkEnvironment() bool {
	fmt.Println()
	fmt.Println("[1/3] Environment")
	fmt.Printf("  OS: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if runtime.GOOS != "linux" {
		fmt.Println("  PASS: native hotkey support available")
		return true
	}

	session := os.Getenv("XDG_SESSION_TYPE")
	display := os.Getenv("DISPLAY")
	wayland := os.Getenv("WAYLAND_DISPLAY")
	override := os.Getenv("HOTKEY_BACKEND")

	fmt.Printf("  XDG_SESSION_TYPE: %q\n", session)
	fmt.Printf("  DISPLAY: %q\n", display)
	fmt.Printf("  WAYLAND_DISPLAY: %q\n", wayland)
	if override != "" {
		fmt.Printf("  HOTKEY_BACKEND override: %q\n", override)
	}

	if session != "wayland" && display == "" && wayland == "" {
		fmt.Println("  FAIL: no display server detected (not an X11 or Wayland session)")
		return false
	}

	if session == "wayland" || wayland != "" {
		fmt.Println("  PASS: Wayland session, shortcuts go through the desktop portal")
	} else {
		fmt.Println("  PASS: X11 session")
	}
	return true
}

func checkPress(combo string) bool {
	fmt.Println()
	fmt.Println("[2/3] Hotkey registration and detection")

	hk, err := hotkey.ParseCombo(combo)
	if err != nil {
		fmt.Printf("  FAIL: bad combo %q: %v\n", combo, err)
		return false
	}

	ctx, err := hotkey.New(hotkey.WithLogger(zerolog.Nop()))
	if err != nil {
		fmt.Printf("  FAIL: backend init: %v\n", err)
		return false
	}
	defer ctx.Close()

	pressed := false
	if err := ctx.Register(hk, func(hotkey.Event) { pressed = true }); err != nil {
		fmt.Printf("  FAIL: could not register %s: %v\n", hk, err)
		return false
	}

	fmt.Printf("Press %s...\n", hk)

	deadline := time.Now().Add(10 * time.Second)
	for !pressed && time.Now().Before(deadline) {
		if err := ctx.Poll(); err != nil {
			fmt.Printf("  FAIL: poll error: %v\n", err)
			return false
		}
		time.Sleep(50 * time.Millisecond)
	}

	// The grab may leave the terminal in a strange state on some setups.
	resetTerminal()

	if !pressed {
		fmt.Println("  FAIL: timeout waiting for hotkey")
		return false
	}
	fmt.Println("  PASS: hotkey detected")
	return true
}

func checkActions() bool {
	fmt.Println()
	fmt.Println("[3/3] Clipboard and paste")

	fmt.Println("Focus on a text editor window...")
	for i := 5; i > 0; i-- {
		fmt.Printf("  %d...\n", i)
		time.Sleep(1 * time.Second)
	}

	testStr := "hotkey-doctor-test"
	if err := action.Copy(testStr); err != nil {
		fmt.Printf("  FAIL: clipboard copy failed: %v\n", err)
		return false
	}

	if err := action.Paste(); err != nil {
		fmt.Printf("  FAIL: paste failed: %v\n", err)
		return false
	}

	// Fresh reader for confirmation to clear any buffered input.
	resetTerminal()
	confirmReader := bufio.NewReader(os.Stdin)
	fmt.Println()
	fmt.Printf("Did the text %q appear? [y/n]: ", testStr)
	confirm, _ := confirmReader.ReadString('\n')
	confirm = strings.TrimSpace(strings.ToLower(confirm))

	if confirm != "y" && confirm != "yes" {
		fmt.Println("  FAIL: clipboard/paste not confirmed")
		return false
	}
	fmt.Println("  PASS: clipboard and paste verified by user")
	return true
}

func resetTerminal() {
	if runtime.GOOS == "windows" {
		return
	}
	exec.Command("stty", "sane").Run()
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		println("\nInterrupted")
		resetTerminal()
		os.Exit(1)
	}()
}
