// Package tunnel owns the tunnel process and its open/closed state.
package tunnel

import (
	"errors"
	"log/slog"
	"sync"
)

// Indicator displays the current state, e.g. as a tray icon and tooltip.
type Indicator interface {
	SetIndicator(state State) error
}

// Process is a running tunnel process.
type Process interface {
	Pid() int
	// Kill requests forced termination and does not wait for the exit.
	Kill() error
}

// Launcher starts tunnel processes.
type Launcher interface {
	Launch(cmd Command) (Process, error)
}

// Controller toggles the tunnel process on and off.
//
// A failed launch still leaves the controller Open with no process. The
// tray then claims an open tunnel that is not running until the user
// toggles it closed again.
type Controller struct {
	mu        sync.Mutex
	state     State
	command   Command
	proc      Process
	launcher  Launcher
	indicator Indicator
	exit      func()
}

// NewController returns a Closed controller for cmd. exit is called by
// Shutdown once the process has been told to terminate.
func NewController(cmd Command, launcher Launcher, indicator Indicator, exit func()) (*Controller, error) {
	if len(cmd.args) == 0 {
		return nil, ErrEmptyCommand
	}
	if launcher == nil {
		return nil, errors.New("launcher is nil")
	}
	if indicator == nil {
		return nil, errors.New("indicator is nil")
	}
	if exit == nil {
		return nil, errors.New("exit is nil")
	}

	return &Controller{
		state:     Closed,
		command:   cmd,
		launcher:  launcher,
		indicator: indicator,
		exit:      exit,
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether the controller holds a process handle.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proc != nil
}

// Toggle flips between Open and Closed.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setState(c.state.Toggle())
}

// SetState moves the controller to target. Closing kills any process and
// clears the handle. Opening launches the command; a launch error is logged
// and the state still becomes Open.
func (c *Controller) SetState(target State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setState(target)
}

func (c *Controller) setState(target State) {
	switch target {
	case Closed:
		c.terminate()
	case Open:
		// Never own two processes.
		c.terminate()
		slog.Info("Opening tunnel", "command", c.command.String())
		proc, err := c.launcher.Launch(c.command)
		if err != nil {
			slog.Error("Failed to open tunnel", "command", c.command.String(), "error", err)
		} else {
			c.proc = proc
		}
	}

	c.state = target
	if err := c.indicator.SetIndicator(target); err != nil {
		slog.Warn("Failed to update tray indicator", "state", target.String(), "error", err)
	}
}

// Shutdown kills the process, if any, and calls the exit hook.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	c.terminate()
	c.mu.Unlock()

	slog.Info("Shutting down")
	c.exit()
}

// Close kills the process, if any, without calling the exit hook.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terminate()
}

func (c *Controller) terminate() {
	if c.proc == nil {
		return
	}
	slog.Info("Closing tunnel", "pid", c.proc.Pid())
	if err := c.proc.Kill(); err != nil {
		slog.Warn("Failed to kill tunnel process", "pid", c.proc.Pid(), "error", err)
	}
	c.proc = nil
}
