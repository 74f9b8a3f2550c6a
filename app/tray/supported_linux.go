//go:build linux

package tray

import "os"

// Supported reports whether a graphical session is available to host the
// status notifier.
func Supported() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
