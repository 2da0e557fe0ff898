// Package runner defines interfaces for command execution.
// This package exists to break import cycles between testing and system packages.
package runner

import (
	"context"
	"strings"
)

// OutputMode selects what happens to a subprocess's standard streams.
type OutputMode int

const (
	// OutputDiscard drops stdout and stderr. Used for status probes.
	OutputDiscard OutputMode = iota
	// OutputInherit connects the subprocess to the launcher's own terminal.
	OutputInherit
)

// Command is a program plus its argument list. It is never passed through a shell.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Output OutputMode
}

// NewCommand builds a Command from an argv slice such as []string{"docker", "version"}.
func NewCommand(argv []string, output OutputMode) Command {
	if len(argv) == 0 {
		return Command{Output: output}
	}
	return Command{
		Name:   argv[0],
		Args:   append([]string(nil), argv[1:]...),
		Output: output,
	}
}

// String renders the command the way it would be typed.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandRunner defines an interface for running commands.
// This allows for mocking in tests.
//
// Neither method returns an error: failures are folded into the exit status
// so callers only ever branch on an integer.
type CommandRunner interface {
	// Run executes the command and blocks until it exits, returning its exit status.
	Run(ctx context.Context, cmd Command) int
	// Start spawns the command detached and returns immediately.
	// It returns 0 when the process was spawned.
	Start(cmd Command) int
}
