//go:build integration

package test_test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("HKMON_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "HKMON_TEST_BIN not set; run: make test-integration")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func cmds(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

// runMon runs hkmon -fake with the given stdin script and returns its
// stdout. Protocol lines land on stdout; log output goes to stderr and
// is shown only when the run fails.
func runMon(t *testing.T, stdin string, combos ...string) string {
	t.Helper()

	args := append([]string{"-fake"}, combos...)
	cmd := exec.Command(testBinary, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		t.Fatalf("hkmon failed: %v\nstdout:\n%s\nstderr:\n%s", err, out.String(), errOut.String())
	}
	return out.String()
}

func requireLine(t *testing.T, out, line string) {
	t.Helper()
	if !strings.Contains(out, line+"\n") {
		t.Errorf("output missing %q:\n%s", line, out)
	}
}

func forbidLine(t *testing.T, out, line string) {
	t.Helper()
	if strings.Contains(out, line+"\n") {
		t.Errorf("output unexpectedly contains %q:\n%s", line, out)
	}
}

func requireOrder(t *testing.T, out string, lines ...string) {
	t.Helper()
	pos := 0
	for _, line := range lines {
		idx := strings.Index(out[pos:], line)
		if idx < 0 {
			t.Fatalf("output missing %q (in order):\n%s", line, out)
		}
		pos += idx + len(line)
	}
}

func TestQueueDelivery(t *testing.T) {
	out := runMon(t, cmds(
		"TRIGGER ctrl+shift+a",
		"SLEEP 200",
		"QUIT",
	), "ctrl+shift+a")

	requireLine(t, out, "OK ctrl+shift+a")
	requireLine(t, out, "READY")
	requireLine(t, out, "EVENT ctrl+shift+a")
}

func TestCallbackDelivery(t *testing.T) {
	out := runMon(t, cmds(
		"REGISTER_CB alt+f5",
		"SLEEP 100",
		"TRIGGER alt+f5",
		"SLEEP 200",
		"QUIT",
	))

	requireLine(t, out, "OK alt+f5")
	requireLine(t, out, "CALLBACK alt+f5")
	// A callback registration never reaches the queue.
	forbidLine(t, out, "EVENT alt+f5")
}

func TestUnregisterStopsDelivery(t *testing.T) {
	out := runMon(t, cmds(
		"TRIGGER super+k",
		"SLEEP 200",
		"UNREGISTER super+k",
		"SLEEP 100",
		"TRIGGER super+k",
		"SLEEP 200",
		"QUIT",
	), "super+k")

	if got := strings.Count(out, "EVENT super+k\n"); got != 1 {
		t.Errorf("want exactly 1 delivery, got %d:\n%s", got, out)
	}
	requireLine(t, out, "ERR super+k: not grabbed")
}

func TestDuplicateRejected(t *testing.T) {
	out := runMon(t, cmds(
		"REGISTER ctrl+shift+a",
		"SLEEP 100",
		"TRIGGER ctrl+shift+a",
		"SLEEP 200",
		"QUIT",
	), "ctrl+shift+a")

	if !strings.Contains(out, "combination already registered") {
		t.Errorf("expected duplicate rejection:\n%s", out)
	}
	// The original registration keeps delivering.
	requireLine(t, out, "EVENT ctrl+shift+a")
}

func TestDispatchOrder(t *testing.T) {
	out := runMon(t, cmds(
		"TRIGGER ctrl+1",
		"TRIGGER ctrl+2",
		"TRIGGER ctrl+3",
		"SLEEP 300",
		"QUIT",
	), "ctrl+1", "ctrl+2", "ctrl+3")

	requireOrder(t, out,
		"EVENT ctrl+1",
		"EVENT ctrl+2",
		"EVENT ctrl+3",
	)
}

func TestBadComboRejected(t *testing.T) {
	out := runMon(t, cmds(
		"TRIGGER ctrl+bogus",
		"SLEEP 100",
		"QUIT",
	), "f1")

	requireLine(t, out, "READY")
	if !strings.Contains(out, "ERR ctrl+bogus:") {
		t.Errorf("expected parse failure for ctrl+bogus:\n%s", out)
	}
}
