package action

import (
	"os"
	"os/exec"
)

// Run starts argv detached from the daemon: stdio wired to the null
// device, exit status reaped in the background.
func Run(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = devnull, devnull, devnull
	if err := cmd.Start(); err != nil {
		devnull.Close()
		return err
	}
	go func() {
		cmd.Wait()
		devnull.Close()
	}()
	return nil
}
