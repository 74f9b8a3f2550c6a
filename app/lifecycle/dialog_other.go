//go:build !windows

package lifecycle

func nativeMessageBox(string, string) {}
