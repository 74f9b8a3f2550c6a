// Package cli is the tunneltray command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ReEnvision-AI/tunneltray/app/lifecycle"
)

func init() {
	// The tray is normally started from Explorer; don't refuse to run there.
	cobra.MousetrapHelpText = ""
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd returns the root command. run receives every argument untouched
// and returns the exit code.
func NewRootCmd(run func(args []string) int) *cobra.Command {
	return &cobra.Command{
		Use:   "tunneltray <command> [args...]",
		Short: "Toggle a tunnel command from the system tray",
		Long: `tunneltray puts an icon in the system tray that starts the given command
when the tunnel is opened and kills it when the tunnel is closed or the tray exits.`,
		Example:            `  tunneltray ssh -N -L 8080:localhost:80 example.com`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := run(args); code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}
}

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return execute(NewRootCmd(lifecycle.Run))
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return 1
}
