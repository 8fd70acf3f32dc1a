package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	hotkey "github.com/uncrumpled2/jai-system-hotkey"
)

// runFakeMode drives an in-process backend from a line protocol on
// stdin and reports every delivered press on stdout:
//
//	TRIGGER <combo>      simulate a press of a grabbed combo
//	REGISTER <combo>     register a queue-mode combo
//	REGISTER_CB <combo>  register a callback-mode combo
//	UNREGISTER <combo>   remove a combo
//	SLEEP <ms>           pause the driver
//	QUIT                 close the context and exit
//
// Queue-mode presses print "EVENT <combo>", callback-mode presses
// print "CALLBACK <combo>". Registration results print "OK <combo>"
// or "ERR <combo>: <reason>".
func runFakeMode(combos []hotkey.Hotkey, level zerolog.Level) {
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	fake := hotkey.NewFake()
	ctx, err := hotkey.New(hotkey.WithLogger(logger), hotkey.WithFake(fake))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Context calls stay on the loop below; stdin commands that need
	// the context are marshaled through here.
	cmds := make(chan func(), 16)

	// Register the initial combos before the driver starts so TRIGGER
	// never races setup.
	for _, hk := range combos {
		if err := ctx.Register(hk, nil); err != nil {
			fmt.Printf("ERR %s: %v\n", hk, err)
			continue
		}
		fmt.Printf("OK %s\n", hk)
	}
	fmt.Println("READY")

	// Stdin driver in background -- simulates presses, handles SLEEP/QUIT
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			verb, rest, _ := strings.Cut(line, " ")
			rest = strings.TrimSpace(rest)
			switch verb {
			case "TRIGGER":
				hk, err := hotkey.ParseCombo(rest)
				if err != nil {
					fmt.Printf("ERR %s: %v\n", rest, err)
					continue
				}
				if !fake.Trigger(hk) {
					fmt.Printf("ERR %s: not grabbed\n", hk)
				}
			case "REGISTER":
				registerCmd(cmds, ctx, rest, nil)
			case "REGISTER_CB":
				registerCmd(cmds, ctx, rest, func(hk hotkey.Hotkey) func(hotkey.Event) {
					return func(hotkey.Event) { fmt.Printf("CALLBACK %s\n", hk) }
				})
			case "UNREGISTER":
				hk, err := hotkey.ParseCombo(rest)
				if err != nil {
					fmt.Printf("ERR %s: %v\n", rest, err)
					continue
				}
				cmds <- func() {
					if err := ctx.Unregister(hk); err != nil {
						fmt.Printf("ERR %s: %v\n", hk, err)
						return
					}
					fmt.Printf("OK %s\n", hk)
				}
			case "SLEEP":
				if ms, err := strconv.Atoi(rest); err == nil {
					time.Sleep(time.Duration(ms) * time.Millisecond)
				}
			case "QUIT":
				cmds <- func() {
					ctx.Close()
					os.Exit(0)
				}
			default:
				fmt.Printf("ERR unknown command %q\n", verb)
			}
		}
		os.Exit(0)
	}()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case cmd := <-cmds:
			cmd()
		case <-ticker.C:
			if err := ctx.Poll(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: poll: %v\n", err)
				os.Exit(1)
			}
			for _, ev := range ctx.Triggered() {
				fmt.Printf("EVENT %s\n", ev.Hotkey)
			}
		}
	}
}

func registerCmd(cmds chan func(), ctx *hotkey.Context, combo string, mk func(hotkey.Hotkey) func(hotkey.Event)) {
	hk, err := hotkey.ParseCombo(combo)
	if err != nil {
		fmt.Printf("ERR %s: %v\n", combo, err)
		return
	}
	var cb func(hotkey.Event)
	if mk != nil {
		cb = mk(hk)
	}
	cmds <- func() {
		if err := ctx.Register(hk, cb); err != nil {
			fmt.Printf("ERR %s: %v\n", hk, err)
			return
		}
		fmt.Printf("OK %s\n", hk)
	}
}
