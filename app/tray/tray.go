// Package tray shows the tunnel state in the system notification area.
package tray

import (
	"errors"

	"github.com/ReEnvision-AI/tunneltray/app/tray/commontray"
)

var ErrUnsupported = errors.New("system tray is not supported on this host")

// NewTray returns the tray for this platform, or ErrUnsupported when no
// notification area is available.
func NewTray() (commontray.TunnelTray, error) {
	if !Supported() {
		return nil, ErrUnsupported
	}
	return newPlatformTray()
}
