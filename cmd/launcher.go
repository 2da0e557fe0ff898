package cmd

import (
	"context"
	"fmt"

	"stacklaunch/pkg/actions"
	"stacklaunch/pkg/console"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/preflight"
	"stacklaunch/pkg/readiness"
	"stacklaunch/pkg/startup"

	"github.com/spf13/cobra"
)

// sleep is swapped out by tests.
var sleep readiness.SleepFunc = readiness.ContextSleep

// launcher wires the decision core to the console for one command invocation.
type launcher struct {
	presenter  *console.Presenter
	checker    *preflight.Checker
	dispatcher *actions.Dispatcher
}

func newLauncher(cmd *cobra.Command, dryRun bool) *launcher {
	presenter := console.New(cmd.OutOrStdout(), cmd.InOrStdin(), cfg.Stack, cfg.Runtime.Path)

	sequencer := &startup.Sequencer{
		Runner: cmdRunner,
		Poller: &readiness.Poller{
			OnAttempt: presenter.PollTick,
			Sleep:     sleep,
		},
		Logger:      logger,
		Probe:       cfg.Runtime.Probe,
		RuntimePath: cfg.Runtime.Path,
		Poll:        cfg.PollConfig(),
		OnLaunch:    presenter.RuntimeLaunched,
	}

	checker := &preflight.Checker{
		Runtime:   sequencer,
		Runner:    cmdRunner,
		Logger:    logger,
		ToolProbe: cfg.Compose.Probe,
		OnRuntime: func(o model.LaunchOutcome) {
			presenter.RuntimeOutcome(o)
			if o.Available() {
				presenter.CheckingTool()
			}
		},
	}

	dispatcher := &actions.Dispatcher{
		Runner:   cmdRunner,
		Logger:   logger,
		Reporter: presenter,
		Compose: actions.Compose{
			Command:    cfg.Compose.Command,
			File:       cfg.Compose.File,
			ProjectDir: cfg.Compose.ProjectDir,
		},
		Stack:  cfg.Stack.Name,
		DryRun: dryRun,
	}

	return &launcher{presenter: presenter, checker: checker, dispatcher: dispatcher}
}

// preflight renders and runs every check, returning the first failure.
func (l *launcher) preflight(ctx context.Context) (preflight.Report, error) {
	l.presenter.CheckingRuntime()
	report := l.checker.Run(ctx)
	l.presenter.Report(report)
	if err := report.Err(); err != nil {
		return report, fmt.Errorf("preflight failed: %w", err)
	}
	return report, nil
}

// runChoice checks the environment and then dispatches choice without a menu.
// Dry runs skip the checks since they would launch Docker Desktop.
func (l *launcher) runChoice(ctx context.Context, choice model.MenuChoice, dryRun bool) error {
	if !dryRun {
		if _, err := l.preflight(ctx); err != nil {
			return err
		}
	}
	return l.dispatcher.Dispatch(ctx, choice)
}
