package tunnel

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/google/uuid"
)

// ExecLauncher starts the tunnel command as a child process of this program.
// The child's standard streams are not connected.
type ExecLauncher struct{}

func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

func (l *ExecLauncher) Launch(cmd Command) (Process, error) {
	args := cmd.Args()
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}

	c := exec.Command(args[0], args[1:]...)
	configureCmd(c)
	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %q: %w", args[0], err)
	}

	p := &execProcess{
		cmd:      c,
		launchID: uuid.NewString(),
		done:     make(chan struct{}),
	}
	slog.Info("Tunnel process started", "pid", p.Pid(), "launch_id", p.launchID, "command", c.String())

	go p.reap()

	return p, nil
}

type execProcess struct {
	cmd      *exec.Cmd
	launchID string
	done     chan struct{}
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Kill() error {
	err := p.kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("kill tunnel process %d: %w", p.Pid(), err)
	}
	slog.Debug("Kill requested", "pid", p.Pid(), "launch_id", p.launchID)
	return nil
}

// reap waits for the child so it does not linger as a zombie. It does not
// restart or report on the tunnel.
func (p *execProcess) reap() {
	err := p.cmd.Wait()
	close(p.done)
	slog.Debug("Tunnel process exited", "pid", p.Pid(), "launch_id", p.launchID, "error", err)
}
