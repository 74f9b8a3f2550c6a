//go:build windows || darwin || linux

package tray

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/getlantern/systray"

	"github.com/ReEnvision-AI/tunneltray/app/tray/commontray"
	"github.com/ReEnvision-AI/tunneltray/app/tunnel"
)

type sysTray struct {
	callbacks  commontray.Callbacks
	openIcon   []byte
	closedIcon []byte

	mu    sync.Mutex
	ready bool
	state tunnel.State
}

func newPlatformTray() (commontray.TunnelTray, error) {
	if len(openIcon) == 0 || len(closedIcon) == 0 {
		return nil, errors.New("tray icons are missing")
	}
	return &sysTray{
		callbacks: commontray.Callbacks{
			Toggle: make(chan struct{}),
			Quit:   make(chan struct{}),
		},
		openIcon:   openIcon,
		closedIcon: closedIcon,
		state:      tunnel.Closed,
	}, nil
}

func (t *sysTray) GetCallbacks() commontray.Callbacks {
	return t.callbacks
}

func (t *sysTray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *sysTray) Quit() {
	systray.Quit()
}

// SetIndicator is safe to call before the tray is ready; the last state is
// applied once it is.
func (t *sysTray) SetIndicator(state tunnel.State) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	if !t.ready {
		return nil
	}
	t.apply()
	return nil
}

// indicator returns the icon and tooltip for state.
func (t *sysTray) indicator(state tunnel.State) ([]byte, string) {
	if state == tunnel.Open {
		return t.openIcon, commontray.Tooltip(state)
	}
	return t.closedIcon, commontray.Tooltip(state)
}

func (t *sysTray) apply() {
	icon, tooltip := t.indicator(t.state)
	systray.SetIcon(icon)
	systray.SetTooltip(tooltip)
}

func (t *sysTray) onReady() {
	slog.Debug("tray ready")
	systray.SetTitle(commontray.Title)

	toggle := systray.AddMenuItem(commontray.ToggleMenuTitle, commontray.ToggleMenuTooltip)
	quit := systray.AddMenuItem(commontray.ExitMenuTitle, commontray.ExitMenuTooltip)

	t.mu.Lock()
	t.ready = true
	t.apply()
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-toggle.ClickedCh:
				t.callbacks.Toggle <- struct{}{}
			case <-quit.ClickedCh:
				t.callbacks.Quit <- struct{}{}
			}
		}
	}()
}

func (t *sysTray) onExit() {
	slog.Debug("tray exited")
}
