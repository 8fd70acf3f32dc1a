package action

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownAction(t *testing.T) {
	_, err := Resolve(Spec{Name: "launch-missiles"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch-missiles")
}

func TestResolveClipNeedsText(t *testing.T) {
	_, err := Resolve(Spec{Name: "clip"}, zerolog.Nop())
	assert.Error(t, err)

	fn, err := Resolve(Spec{Name: "clip", Text: "hello"}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, fn)
}

func TestResolveExecNeedsCommand(t *testing.T) {
	_, err := Resolve(Spec{Name: "exec"}, zerolog.Nop())
	assert.Error(t, err)

	fn, err := Resolve(Spec{Name: "exec", Command: []string{"true"}}, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, fn)
}

func TestResolvePasteAndBeep(t *testing.T) {
	for _, name := range []string{"paste", "beep"} {
		fn, err := Resolve(Spec{Name: name}, zerolog.Nop())
		require.NoError(t, err, name)
		assert.NotNil(t, fn, name)
	}
}

func TestRunStartsDetached(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	marker := filepath.Join(t.TempDir(), "ran")

	require.NoError(t, Run([]string{"sh", "-c", "echo ok > " + marker}))

	require.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRunMissingBinary(t *testing.T) {
	err := Run([]string{"/definitely/not/installed/anywhere"})
	assert.Error(t, err)
}
