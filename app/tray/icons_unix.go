//go:build darwin || linux

package tray

import _ "embed"

//go:embed assets/tunnel-open.png
var openIcon []byte

//go:embed assets/tunnel-closed.png
var closedIcon []byte
