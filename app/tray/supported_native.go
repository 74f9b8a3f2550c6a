//go:build windows || darwin

package tray

func Supported() bool {
	return true
}
