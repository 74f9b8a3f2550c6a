package tunnel

import (
	"errors"
	"slices"
	"strings"
)

// ErrEmptyCommand is returned when no tunnel command was given.
var ErrEmptyCommand = errors.New("tunnel command is empty")

// Command is the tunnel command line. It is fixed once built.
type Command struct {
	args []string
}

// NewCommand builds a Command from the program arguments. The arguments are
// kept as given and handed to the launcher without re-tokenizing, so an
// argument containing spaces reaches the child intact.
func NewCommand(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{args: slices.Clone(args)}, nil
}

// Args returns a copy of the argument vector.
func (c Command) Args() []string {
	return slices.Clone(c.args)
}

// String returns the arguments joined by single spaces.
func (c Command) String() string {
	return strings.Join(c.args, " ")
}
