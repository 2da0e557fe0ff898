package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExecutableNotFound means the configured runtime launcher does not exist.
	ErrExecutableNotFound = errors.New("container runtime executable not found")
	// ErrRuntimeUnreachable means the runtime did not answer within the poll budget.
	ErrRuntimeUnreachable = errors.New("container runtime did not become reachable")
	// ErrToolNotInstalled means the compose tool's version probe failed.
	ErrToolNotInstalled = errors.New("compose tool is not available")
	// ErrSubprocessFailed means a user-facing compose command exited non-zero.
	ErrSubprocessFailed = errors.New("command failed")
	// ErrInvalidInput means the menu selection was not recognised.
	ErrInvalidInput = errors.New("invalid choice")
	// ErrCancelled means the user interrupted the wait.
	ErrCancelled = errors.New("cancelled")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	if len(es) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, e := range es {
		sb.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
	}
	return sb.String()
}
