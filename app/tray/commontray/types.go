package commontray

import "github.com/ReEnvision-AI/tunneltray/app/tunnel"

var (
	Title = "Tunnel Tray"

	ToggleMenuTitle   = "Toggle Tunnel"
	ToggleMenuTooltip = "Open or close the tunnel"
	ExitMenuTitle     = "Exit"
	ExitMenuTooltip   = "Close the tunnel and exit"
)

type Callbacks struct {
	Toggle chan struct{}
	Quit   chan struct{}
}

type TunnelTray interface {
	tunnel.Indicator

	GetCallbacks() Callbacks
	// Run blocks until Quit is called.
	Run()
	Quit()
}

// Tooltip returns the tooltip shown for state.
func Tooltip(state tunnel.State) string {
	return "Tunnel is " + state.String()
}
