package actions

import (
	"context"
	"fmt"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/runner"
	"stacklaunch/pkg/system"
)

// Compose describes how to invoke the compose tool for this stack.
type Compose struct {
	Command    []string // e.g. [docker-compose] or [docker compose]
	File       string   // optional -f argument
	ProjectDir string   // working directory for the invocation
}

// Argv builds the full argument vector for a compose subcommand.
func (c Compose) Argv(sub ...string) []string {
	argv := append([]string{}, c.Command...)
	if c.File != "" {
		argv = append(argv, "-f", c.File)
	}
	return append(argv, sub...)
}

func (c Compose) command(sub ...string) runner.Command {
	cmd := runner.NewCommand(c.Argv(sub...), runner.OutputInherit)
	cmd.Dir = c.ProjectDir
	return cmd
}

func (c Compose) run(ctx context.Context, r system.CommandRunner, logger log.Logger, sub ...string) error {
	cmd := c.command(sub...)
	code := r.Run(ctx, cmd)
	if code != 0 {
		logger.Debug("compose command failed", "command", cmd.String(), "status", code)
		return fmt.Errorf("%s: %w (exit status %d)", cmd.String(), model.ErrSubprocessFailed, code)
	}
	return nil
}

func (c Compose) details(sub ...string) []string {
	cmd := c.command(sub...)
	details := []string{fmt.Sprintf("run: %s", cmd.String())}
	if cmd.Dir != "" {
		details = append(details, fmt.Sprintf("in: %s", cmd.Dir))
	}
	return details
}

// ComposeUpAction builds images as needed and starts the stack in the foreground.
type ComposeUpAction struct {
	Compose Compose
	Stack   string
}

func (a *ComposeUpAction) Description() string {
	return fmt.Sprintf("Build and start %s", a.Stack)
}

func (a *ComposeUpAction) Apply(ctx context.Context, runner system.CommandRunner, logger log.Logger) error {
	logger.Info("Starting stack", "stack", a.Stack)
	return a.Compose.run(ctx, runner, logger, "up", "--build")
}

func (a *ComposeUpAction) ExecutionDetails() []string {
	return a.Compose.details("up", "--build")
}

// ComposeDownAction stops and removes the stack's containers.
type ComposeDownAction struct {
	Compose Compose
	Stack   string
}

func (a *ComposeDownAction) Description() string {
	return fmt.Sprintf("Stop and remove %s", a.Stack)
}

func (a *ComposeDownAction) Apply(ctx context.Context, runner system.CommandRunner, logger log.Logger) error {
	logger.Info("Stopping stack", "stack", a.Stack)
	return a.Compose.run(ctx, runner, logger, "down")
}

func (a *ComposeDownAction) ExecutionDetails() []string {
	return a.Compose.details("down")
}
