package main

import (
	"os"

	"github.com/ReEnvision-AI/tunneltray/app/cli"
)

// Compile with the following to get rid of the cmd popup on windows
// go build -ldflags="-H windowsgui"

func main() {
	os.Exit(cli.Execute())
}
