package actions

import (
	"context"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/system"
)

// Action represents a single compose invocation against the stack.
type Action interface {
	// Description returns a human-readable string of what the action does.
	Description() string
	// Apply executes the action.
	Apply(ctx context.Context, runner system.CommandRunner, logger log.Logger) error
	// ExecutionDetails returns a slice of strings describing the low-level operations.
	ExecutionDetails() []string
}
