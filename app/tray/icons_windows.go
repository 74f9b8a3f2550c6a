//go:build windows

package tray

import _ "embed"

// The Windows notification area needs ICO data.

//go:embed assets/tunnel-open.ico
var openIcon []byte

//go:embed assets/tunnel-closed.ico
var closedIcon []byte
