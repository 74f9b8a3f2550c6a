//go:build unix

package tunnel

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// The child gets its own process group so killing the tunnel also takes
// down anything it spawned.
func configureCmd(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// kill signals the whole group, even when the leader has already exited:
// a wrapper that forks the real tunnel and returns leaves it in the group.
func (p *execProcess) kill() error {
	err := unix.Kill(-p.Pid(), unix.SIGKILL)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}
