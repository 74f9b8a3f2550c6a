//go:build !(windows || darwin || linux)

package tray

import "github.com/ReEnvision-AI/tunneltray/app/tray/commontray"

func Supported() bool {
	return false
}

func newPlatformTray() (commontray.TunnelTray, error) {
	return nil, ErrUnsupported
}
