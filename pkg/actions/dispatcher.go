package actions

import (
	"context"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/model"
	"stacklaunch/pkg/system"
)

// Reporter renders dispatch progress. console.Presenter implements it.
type Reporter interface {
	ActionStarting(choice model.MenuChoice, action Action)
	ActionPlanned(action Action)
	ActionSucceeded(choice model.MenuChoice)
	ActionFailed(choice model.MenuChoice, err error)
	InvalidChoice()
	Goodbye()
}

// Dispatcher maps a menu choice to one compose action and runs it once.
type Dispatcher struct {
	Runner   system.CommandRunner
	Logger   log.Logger
	Reporter Reporter
	Compose  Compose
	Stack    string
	DryRun   bool
}

// ActionFor returns the action behind a choice, or nil for exit and invalid input.
func (d *Dispatcher) ActionFor(choice model.MenuChoice) Action {
	switch choice {
	case model.MenuStart:
		return &ComposeUpAction{Compose: d.Compose, Stack: d.Stack}
	case model.MenuStop:
		return &ComposeDownAction{Compose: d.Compose, Stack: d.Stack}
	default:
		return nil
	}
}

// Dispatch runs the action for choice. Invalid input is reported, not returned.
func (d *Dispatcher) Dispatch(ctx context.Context, choice model.MenuChoice) error {
	switch choice {
	case model.MenuExit:
		d.Reporter.Goodbye()
		return nil
	case model.MenuInvalid:
		d.Logger.Debug("invalid menu choice")
		d.Reporter.InvalidChoice()
		return nil
	}

	action := d.ActionFor(choice)
	if d.DryRun {
		d.Reporter.ActionPlanned(action)
		return nil
	}

	d.Reporter.ActionStarting(choice, action)
	if err := action.Apply(ctx, d.Runner, d.Logger); err != nil {
		d.Logger.Error("Action failed", "action", action.Description(), "error", err)
		d.Reporter.ActionFailed(choice, err)
		return err
	}
	d.Reporter.ActionSucceeded(choice)
	return nil
}
