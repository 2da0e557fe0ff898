// Package startup makes sure the container runtime is up, launching its
// desktop application when it is not.
package startup

import (
	"context"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/readiness"
	"stacklaunch/pkg/runner"
	"stacklaunch/pkg/system"
)

// Poller is the subset of readiness.Poller the sequencer needs.
type Poller interface {
	WaitUntilReady(ctx context.Context, probe readiness.Probe, cfg model.PollConfig) model.PollOutcome
}

// Sequencer runs the probe, resolve, launch, wait steps in order.
type Sequencer struct {
	Runner      runner.CommandRunner
	Poller      Poller
	Logger      log.Logger
	Probe       []string // argv of the liveness probe, e.g. docker version
	RuntimePath string
	Poll        model.PollConfig

	// OnLaunch, if set, is called right before the executable is spawned.
	OnLaunch func(path string)
}

// ProbeRuntime checks once whether the runtime answers.
func (s *Sequencer) ProbeRuntime(ctx context.Context) model.ProbeResult {
	code := s.Runner.Run(ctx, runner.NewCommand(s.Probe, runner.OutputDiscard))
	return model.ProbeFromExit(code)
}

// IsRuntimeAvailable is a single liveness check with no launch attempt.
func (s *Sequencer) IsRuntimeAvailable(ctx context.Context) bool {
	return s.ProbeRuntime(ctx) == model.ProbeSuccess
}

// EnsureRuntimeAvailable returns AlreadyRunning when the first probe passes,
// NotFound when the launcher is missing, and otherwise launches it and waits.
func (s *Sequencer) EnsureRuntimeAvailable(ctx context.Context) model.LaunchOutcome {
	if s.IsRuntimeAvailable(ctx) {
		s.Logger.Debug("runtime already running")
		return model.LaunchAlreadyRunning
	}
	if ctx.Err() != nil {
		return model.LaunchCancelled
	}

	exists, err := system.ExecutableExists(s.RuntimePath)
	if err != nil {
		s.Logger.Warn("could not check runtime executable", "path", s.RuntimePath, "error", err)
	}
	if !exists {
		s.Logger.Debug("runtime executable missing", "path", s.RuntimePath)
		return model.LaunchNotFound
	}

	if s.OnLaunch != nil {
		s.OnLaunch(s.RuntimePath)
	}
	if code := s.Runner.Start(runner.Command{Name: s.RuntimePath}); code != 0 {
		// the runtime may still come up another way; the poll budget bounds the wait
		s.Logger.Warn("failed to launch runtime executable", "path", s.RuntimePath, "status", code)
	}

	switch s.Poller.WaitUntilReady(ctx, s.ProbeRuntime, s.Poll) {
	case model.PollReady:
		return model.LaunchStarted
	case model.PollCancelled:
		return model.LaunchCancelled
	default:
		return model.LaunchTimedOut
	}
}
