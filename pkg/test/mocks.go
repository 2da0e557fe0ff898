package test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"stacklaunch/pkg/log"
	"stacklaunch/pkg/runner"
)

// MockCommandRunner is a shared mock implementation of runner.CommandRunner for testing.
// It tracks executed commands and allows setting up exit codes per command line.
type MockCommandRunner struct {
	Commands   []string         // Track executed commands
	Started    []string         // Track detached launches
	Executed   []runner.Command // Full commands passed to Run
	ExitCodes  map[string]int   // Exit code by command line
	Sequences  map[string][]int // Consumed in order before falling back to ExitCodes
	StartCodes map[string]int   // Exit code by launched command line
}

// NewMockCommandRunner creates a new MockCommandRunner with initialized maps.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Commands:   []string{},
		Started:    []string{},
		ExitCodes:  make(map[string]int),
		Sequences:  make(map[string][]int),
		StartCodes: make(map[string]int),
	}
}

// Run records the command and returns its configured exit code, 0 by default.
func (r *MockCommandRunner) Run(ctx context.Context, cmd runner.Command) int {
	key := cmd.String()
	r.Commands = append(r.Commands, key)
	r.Executed = append(r.Executed, cmd)

	if seq := r.Sequences[key]; len(seq) > 0 {
		r.Sequences[key] = seq[1:]
		return seq[0]
	}
	return r.ExitCodes[key]
}

// Start records a detached launch.
func (r *MockCommandRunner) Start(cmd runner.Command) int {
	key := cmd.String()
	r.Started = append(r.Started, key)
	return r.StartCodes[key]
}

// SetExitCode configures the exit code for a command line.
func (r *MockCommandRunner) SetExitCode(command string, code int) {
	r.ExitCodes[command] = code
}

// SetExitSequence configures successive exit codes for a command line.
// Once the sequence is used up the last value keeps being returned.
func (r *MockCommandRunner) SetExitSequence(command string, codes ...int) {
	r.Sequences[command] = codes
	if len(codes) > 0 {
		r.ExitCodes[command] = codes[len(codes)-1]
	}
}

// SetStartCode configures the result of a detached launch.
func (r *MockCommandRunner) SetStartCode(command string, code int) {
	r.StartCodes[command] = code
}

// Reset clears all tracked commands and configurations.
func (r *MockCommandRunner) Reset() {
	r.Commands = []string{}
	r.Started = []string{}
	r.Executed = nil
	r.ExitCodes = make(map[string]int)
	r.Sequences = make(map[string][]int)
	r.StartCodes = make(map[string]int)
}

// MockLogger is a shared mock implementation of Logger for testing.
// It captures logged messages for verification.
type MockLogger struct {
	Messages []string
	Level    slog.Level
}

// NewMockLogger creates a new MockLogger with the specified level.
func NewMockLogger(level slog.Level) *MockLogger {
	return &MockLogger{
		Messages: []string{},
		Level:    level,
	}
}

func (l *MockLogger) Debug(msg string, args ...any) {
	if l.Level <= slog.LevelDebug {
		l.captureMessage("DEBUG", msg, args...)
	}
}

func (l *MockLogger) Info(msg string, args ...any) {
	if l.Level <= slog.LevelInfo {
		l.captureMessage("INFO", msg, args...)
	}
}

func (l *MockLogger) Warn(msg string, args ...any) {
	if l.Level <= slog.LevelWarn {
		l.captureMessage("WARN", msg, args...)
	}
}

func (l *MockLogger) Error(msg string, args ...any) {
	if l.Level <= slog.LevelError {
		l.captureMessage("ERROR", msg, args...)
	}
}

func (l *MockLogger) captureMessage(level, msg string, args ...any) {
	buf := &bytes.Buffer{}
	buf.WriteString(level)
	buf.WriteString(": ")
	buf.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(buf, " %v=%v", args[i], args[i+1])
	}
	l.Messages = append(l.Messages, buf.String())
}

// HasMessage checks if any captured message contains the given substring.
func (l *MockLogger) HasMessage(substring string) bool {
	for _, msg := range l.Messages {
		if bytes.Contains([]byte(msg), []byte(substring)) {
			return true
		}
	}
	return false
}

var _ runner.CommandRunner = (*MockCommandRunner)(nil)
var _ log.Logger = (*MockLogger)(nil)
