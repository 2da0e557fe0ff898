package model

import (
	"fmt"
	"strings"
	"time"
)

// ProbeResult is the outcome of one external status check.
type ProbeResult int

const (
	ProbeFailure ProbeResult = iota
	ProbeSuccess
)

func (r ProbeResult) String() string {
	if r == ProbeSuccess {
		return "success"
	}
	return "failure"
}

// ProbeFromExit maps a process exit status to a ProbeResult.
func ProbeFromExit(code int) ProbeResult {
	if code == 0 {
		return ProbeSuccess
	}
	return ProbeFailure
}

// PollOutcome is the result of waiting for the runtime to become reachable.
type PollOutcome int

const (
	PollReady PollOutcome = iota
	PollTimedOut
	PollCancelled
)

func (o PollOutcome) String() string {
	switch o {
	case PollReady:
		return "ready"
	case PollTimedOut:
		return "timed-out"
	case PollCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("PollOutcome(%d)", int(o))
	}
}

// LaunchOutcome is the final disposition of an attempt to make the runtime available.
type LaunchOutcome int

const (
	LaunchAlreadyRunning LaunchOutcome = iota
	LaunchStarted
	LaunchNotFound
	LaunchTimedOut
	LaunchCancelled
)

func (o LaunchOutcome) String() string {
	switch o {
	case LaunchAlreadyRunning:
		return "already-running"
	case LaunchStarted:
		return "started"
	case LaunchNotFound:
		return "not-found"
	case LaunchTimedOut:
		return "timed-out"
	case LaunchCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("LaunchOutcome(%d)", int(o))
	}
}

// Available reports whether the runtime can be used after this outcome.
func (o LaunchOutcome) Available() bool {
	return o == LaunchAlreadyRunning || o == LaunchStarted
}

// Err maps an unavailable outcome to its error. Available outcomes return nil.
func (o LaunchOutcome) Err() error {
	switch o {
	case LaunchNotFound:
		return ErrExecutableNotFound
	case LaunchTimedOut:
		return ErrRuntimeUnreachable
	case LaunchCancelled:
		return ErrCancelled
	}
	return nil
}

// PollConfig fixes the polling cadence. It is built once and never changed.
type PollConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollConfig is one probe per second for a minute.
func DefaultPollConfig() PollConfig {
	return PollConfig{Interval: time.Second, MaxAttempts: 60}
}

// Budget is the longest a full poll can sleep.
func (c PollConfig) Budget() time.Duration {
	if c.MaxAttempts <= 1 {
		return 0
	}
	return time.Duration(c.MaxAttempts-1) * c.Interval
}

func (c PollConfig) Validate() ValidationErrors {
	var errs ValidationErrors
	if c.Interval <= 0 {
		errs = append(errs, ValidationError{Field: "poll.interval", Message: "must be positive"})
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, ValidationError{Field: "poll.attempts", Message: "must be at least 1"})
	}
	return errs
}

// MenuChoice is the user's single selection from the launcher menu.
type MenuChoice int

const (
	MenuInvalid MenuChoice = iota
	MenuStart
	MenuStop
	MenuExit
)

func (c MenuChoice) String() string {
	switch c {
	case MenuStart:
		return "start"
	case MenuStop:
		return "stop"
	case MenuExit:
		return "exit"
	default:
		return "invalid"
	}
}

// ParseMenuChoice maps "1", "2" and "3" to start, stop and exit.
func ParseMenuChoice(input string) MenuChoice {
	switch strings.TrimSpace(input) {
	case "1":
		return MenuStart
	case "2":
		return MenuStop
	case "3":
		return MenuExit
	default:
		return MenuInvalid
	}
}

// MarshalText renders the outcome by name in JSON reports.
func (o LaunchOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
