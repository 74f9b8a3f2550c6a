package lifecycle

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ReEnvision-AI/tunneltray/app/tray"
	"github.com/ReEnvision-AI/tunneltray/app/tray/commontray"
	"github.com/ReEnvision-AI/tunneltray/app/tunnel"
)

const Usage = `Usage: tunneltray <command> [args...]

You need to specify the command that will initiate the tunnel, for example:
  tunneltray ssh -N -L 8080:localhost:80 example.com`

var (
	newTray     = tray.NewTray
	newLauncher = func() tunnel.Launcher { return tunnel.NewExecLauncher() }
	showError   = ShowError
)

// Run runs the tray until the user exits and returns the process exit code.
func Run(args []string) int {
	cmd, err := tunnel.NewCommand(args)
	if err != nil {
		showError(commontray.Title, Usage)
		return 1
	}

	closeLog := InitLogging()
	defer func() {
		if err := closeLog(); err != nil {
			slog.Warn("failed to close log file", "error", err)
		}
	}()
	slog.Info("Tunnel Tray starting", "command", cmd.String())

	t, err := newTray()
	if err != nil {
		slog.Error("Failed to start tray", "error", err)
		if errors.Is(err, tray.ErrUnsupported) {
			showError(commontray.Title, "The system tray is not supported here!")
		} else {
			showError(commontray.Title, "Failed to start the system tray: "+err.Error())
		}
		return 1
	}

	ctrl, err := tunnel.NewController(cmd, newLauncher(), t, t.Quit)
	if err != nil {
		slog.Error("Failed to create tunnel controller", "error", err)
		showError(commontray.Title, "Failed to start the tunnel controller: "+err.Error())
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go handleEvents(ctrl, t.GetCallbacks(), signals)

	ctrl.SetState(tunnel.Closed)

	t.Run()

	// The tray can also go away without passing through the event loop.
	// Make sure the tunnel does not outlive us.
	ctrl.Close()

	slog.Info("Tunnel Tray exiting")
	return 0
}

// handleEvents delivers tray clicks and signals to the controller one at a
// time.
func handleEvents(ctrl *tunnel.Controller, callbacks commontray.Callbacks, signals <-chan os.Signal) {
	slog.Debug("starting callback loop")
	for {
		select {
		case <-callbacks.Toggle:
			slog.Debug("toggle called", "state", ctrl.State().String())
			ctrl.Toggle()
		case <-callbacks.Quit:
			slog.Debug("quit called")
			ctrl.Shutdown()
			return
		case sig := <-signals:
			slog.Info("shutting down due to signal", "signal", sig.String())
			ctrl.Shutdown()
			return
		}
	}
}
