// Package preflight verifies the container runtime and compose tool before
// any stack command runs.
package preflight

import (
	"context"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/runner"
)

// RuntimeEnsurer is implemented by startup.Sequencer.
type RuntimeEnsurer interface {
	EnsureRuntimeAvailable(ctx context.Context) model.LaunchOutcome
}

// Report is the result of one preflight run.
type Report struct {
	Runtime       model.LaunchOutcome `json:"runtime"`
	ToolChecked   bool                `json:"tool_checked"`
	ToolAvailable bool                `json:"tool_available"`
}

// Passed is true only when the runtime is available and the tool answered.
func (r Report) Passed() bool {
	return r.Runtime.Available() && r.ToolAvailable
}

// Err returns the error for the first failed check, or nil.
func (r Report) Err() error {
	if err := r.Runtime.Err(); err != nil {
		return err
	}
	if !r.ToolAvailable {
		return model.ErrToolNotInstalled
	}
	return nil
}

// Checker runs the runtime check followed by the compose tool check.
type Checker struct {
	Runtime   RuntimeEnsurer
	Runner    runner.CommandRunner
	Logger    log.Logger
	ToolProbe []string // argv, e.g. docker-compose version

	// OnRuntime, if set, receives the runtime outcome before the tool is probed.
	OnRuntime func(model.LaunchOutcome)
}

// Run performs the checks. The tool is not probed when the runtime is unavailable.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{Runtime: c.Runtime.EnsureRuntimeAvailable(ctx)}
	if c.OnRuntime != nil {
		c.OnRuntime(report.Runtime)
	}
	if !report.Runtime.Available() {
		c.Logger.Debug("skipping compose tool check", "runtime", report.Runtime)
		return report
	}

	report.ToolChecked = true
	code := c.Runner.Run(ctx, runner.NewCommand(c.ToolProbe, runner.OutputDiscard))
	report.ToolAvailable = code == 0
	if !report.ToolAvailable {
		c.Logger.Debug("compose tool probe failed", "command", c.ToolProbe, "status", code)
	}
	return report
}

// CheckAll reports whether every preflight check passed.
func (c *Checker) CheckAll(ctx context.Context) bool {
	return c.Run(ctx).Passed()
}
