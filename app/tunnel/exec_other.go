//go:build !unix && !windows

package tunnel

import "os/exec"

func configureCmd(*exec.Cmd) {}

func (p *execProcess) kill() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	return p.cmd.Process.Kill()
}
