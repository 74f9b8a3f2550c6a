package lifecycle

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/ncruces/zenity"
)

// ShowError prints message to stderr. Without a terminal to read it, e.g.
// when started from a desktop launcher or as a Windows GUI binary, the
// message is also shown in a dialog.
func ShowError(title, message string) {
	fmt.Fprintln(os.Stderr, message)

	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return
	}

	slog.Debug("Showing message box", "title", title, "message", message)
	if err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon); err != nil {
		slog.Debug("zenity dialog failed", "error", err)
		nativeMessageBox(title, message)
	}
}
