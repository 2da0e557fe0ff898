package system

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/runner"
)

// CommandRunner defines an interface for running commands.
// This allows for mocking in tests.
// Re-exported from pkg/runner to maintain backward compatibility.
type CommandRunner = runner.CommandRunner

const (
	// ExitLaunchFailed is reported when the process could not be spawned at all.
	// It is negative so it never collides with a status a program can exit with,
	// such as a shell's 127 for "command not found".
	ExitLaunchFailed = -1
	// ExitCancelled is reported when the context was cancelled while the process ran.
	ExitCancelled = 130
)

// DefaultGracePeriod is how long an interactive command may take to stop
// after it has been interrupted before it is killed.
const DefaultGracePeriod = 30 * time.Second

// LiveCommandRunner is an implementation of CommandRunner that runs commands on the live system.
type LiveCommandRunner struct {
	Logger log.Logger
	// GracePeriod overrides DefaultGracePeriod when set.
	GracePeriod time.Duration
}

// Run executes the given command and returns its exit status.
func (r *LiveCommandRunner) Run(ctx context.Context, c runner.Command) int {
	r.trace(c)
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if c.Output == runner.OutputInherit {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		// interrupt first; WaitDelay kills it if it has not exited by then
		cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }
		cmd.WaitDelay = r.gracePeriod()
	}
	return exitStatus(ctx, cmd.Run())
}

func (r *LiveCommandRunner) gracePeriod() time.Duration {
	if r.GracePeriod > 0 {
		return r.GracePeriod
	}
	return DefaultGracePeriod
}

// Start spawns the command without waiting for it. The process is released
// and belongs to the OS from then on.
func (r *LiveCommandRunner) Start(c runner.Command) int {
	r.trace(c)
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	if err := cmd.Start(); err != nil {
		r.debug("spawn failed", "command", c.String(), "error", err)
		return ExitLaunchFailed
	}
	if err := cmd.Process.Release(); err != nil {
		r.debug("release failed", "command", c.String(), "error", err)
	}
	return 0
}

func (r *LiveCommandRunner) trace(c runner.Command) {
	r.debug("+ " + c.String())
}

func (r *LiveCommandRunner) debug(msg string, args ...any) {
	if r.Logger != nil {
		r.Logger.Debug(msg, args...)
	}
}

func exitStatus(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	if ctx.Err() != nil {
		return ExitCancelled
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code >= 0 {
			return code
		}
		// killed by a signal
		return 1
	}
	return ExitLaunchFailed
}
