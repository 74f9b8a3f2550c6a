//go:build windows

package tunnel

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// Hide the child console window.
func configureCmd(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true, CreationFlags: windows.CREATE_NO_WINDOW}
}

func (p *execProcess) kill() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	return p.cmd.Process.Kill()
}
