package lifecycle

import (
	"log/slog"
	"os"
	"path/filepath"
)

var (
	AppName    = "TunnelTray"
	AppDataDir = filepath.Join(os.TempDir(), "tunneltray")
	AppLogFile = filepath.Join(AppDataDir, "app.log")
)

const (
	envLogDir = "TUNNELTRAY_LOG_DIR"
	envDebug  = "TUNNELTRAY_DEBUG"
)

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("error discovering user config directory", "error", err)
		return
	}
	AppDataDir = filepath.Join(configDir, AppName)
	AppLogFile = filepath.Join(AppDataDir, "app.log")
}

// logFilePath returns the log file, honoring TUNNELTRAY_LOG_DIR.
func logFilePath() string {
	if dir := os.Getenv(envLogDir); dir != "" {
		return filepath.Join(dir, filepath.Base(AppLogFile))
	}
	return AppLogFile
}
