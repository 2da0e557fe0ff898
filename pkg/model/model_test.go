package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMenuChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected MenuChoice
	}{
		{"1", MenuStart},
		{"2", MenuStop},
		{"3", MenuExit},
		{" 2\n", MenuStop},
		{"4", MenuInvalid},
		{"0", MenuInvalid},
		{"", MenuInvalid},
		{"start", MenuInvalid},
		{"1 2", MenuInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMenuChoice(tt.input))
		})
	}
}

func TestLaunchOutcome_Available(t *testing.T) {
	assert.True(t, LaunchAlreadyRunning.Available())
	assert.True(t, LaunchStarted.Available())
	assert.False(t, LaunchNotFound.Available())
	assert.False(t, LaunchTimedOut.Available())
	assert.False(t, LaunchCancelled.Available())
}

func TestLaunchOutcome_Err(t *testing.T) {
	assert.NoError(t, LaunchAlreadyRunning.Err())
	assert.NoError(t, LaunchStarted.Err())
	assert.ErrorIs(t, LaunchNotFound.Err(), ErrExecutableNotFound)
	assert.ErrorIs(t, LaunchTimedOut.Err(), ErrRuntimeUnreachable)
	assert.ErrorIs(t, LaunchCancelled.Err(), ErrCancelled)
}

func TestProbeFromExit(t *testing.T) {
	assert.Equal(t, ProbeSuccess, ProbeFromExit(0))
	assert.Equal(t, ProbeFailure, ProbeFromExit(1))
	assert.Equal(t, ProbeFailure, ProbeFromExit(127))
}

func TestPollConfig(t *testing.T) {
	cfg := DefaultPollConfig()
	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 60, cfg.MaxAttempts)
	assert.Equal(t, 59*time.Second, cfg.Budget())
	assert.Empty(t, cfg.Validate())

	bad := PollConfig{Interval: 0, MaxAttempts: 0}
	errs := bad.Validate()
	assert.Len(t, errs, 2)
	assert.Contains(t, errs.Error(), "poll.interval: must be positive")
	assert.Contains(t, errs.Error(), "poll.attempts: must be at least 1")
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "timed-out", LaunchTimedOut.String())
	assert.Equal(t, "ready", PollReady.String())
	assert.Equal(t, "invalid", MenuInvalid.String())
	assert.Equal(t, "success", ProbeSuccess.String())
}
