//go:build windows

package lifecycle

import "github.com/gonutz/w32/v2"

func nativeMessageBox(title, message string) {
	w32.MessageBox(0, message, title, w32.MB_OK|w32.MB_ICONERROR)
}
