package startup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"stacklaunch/pkg/model"
	"stacklaunch/pkg/readiness"
	"stacklaunch/pkg/system"
	"stacklaunch/pkg/test"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runtimePath = "/opt/docker-desktop/bin/docker-desktop"

type recordingPoller struct {
	calls   int
	outcome model.PollOutcome
	cfg     model.PollConfig
}

func (p *recordingPoller) WaitUntilReady(ctx context.Context, probe readiness.Probe, cfg model.PollConfig) model.PollOutcome {
	p.calls++
	p.cfg = cfg
	return p.outcome
}

func setupSequencer(t *testing.T, installed bool) (*Sequencer, *test.MockCommandRunner, *recordingPoller) {
	system.AppFs = afero.NewMemMapFs()
	if installed {
		test.CreateTestFile(t, system.AppFs, runtimePath, "binary")
	}
	r := test.NewMockCommandRunner()
	p := &recordingPoller{outcome: model.PollReady}
	s := &Sequencer{
		Runner:      r,
		Poller:      p,
		Logger:      test.NewMockLogger(slog.LevelDebug),
		Probe:       []string{"docker", "version"},
		RuntimePath: runtimePath,
		Poll:        model.PollConfig{Interval: time.Second, MaxAttempts: 60},
	}
	return s, r, p
}

func TestEnsureRuntimeAvailable_AlreadyRunning(t *testing.T) {
	s, r, p := setupSequencer(t, true)
	r.SetExitCode("docker version", 0)

	outcome := s.EnsureRuntimeAvailable(context.Background())

	assert.Equal(t, model.LaunchAlreadyRunning, outcome)
	assert.Empty(t, r.Started, "launch must be skipped")
	assert.Zero(t, p.calls)
	assert.Equal(t, []string{"docker version"}, r.Commands)
}

func TestEnsureRuntimeAvailable_NotFound(t *testing.T) {
	s, r, p := setupSequencer(t, false)
	r.SetExitCode("docker version", 1)

	outcome := s.EnsureRuntimeAvailable(context.Background())

	assert.Equal(t, model.LaunchNotFound, outcome)
	assert.Zero(t, p.calls, "poller must not run")
	assert.Empty(t, r.Started)
}

func TestEnsureRuntimeAvailable_Started(t *testing.T) {
	s, r, p := setupSequencer(t, true)
	r.SetExitCode("docker version", 1)
	var launched string
	s.OnLaunch = func(path string) { launched = path }

	outcome := s.EnsureRuntimeAvailable(context.Background())

	assert.Equal(t, model.LaunchStarted, outcome)
	assert.Equal(t, []string{runtimePath}, r.Started)
	assert.Equal(t, runtimePath, launched)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, model.PollConfig{Interval: time.Second, MaxAttempts: 60}, p.cfg)
}

func TestEnsureRuntimeAvailable_TimedOut(t *testing.T) {
	s, r, p := setupSequencer(t, true)
	r.SetExitCode("docker version", 1)
	p.outcome = model.PollTimedOut

	assert.Equal(t, model.LaunchTimedOut, s.EnsureRuntimeAvailable(context.Background()))
}

func TestEnsureRuntimeAvailable_Cancelled(t *testing.T) {
	s, r, p := setupSequencer(t, true)
	r.SetExitCode("docker version", 1)
	p.outcome = model.PollCancelled

	assert.Equal(t, model.LaunchCancelled, s.EnsureRuntimeAvailable(context.Background()))
}

func TestEnsureRuntimeAvailable_LaunchFailureStillPolls(t *testing.T) {
	s, r, p := setupSequencer(t, true)
	r.SetExitCode("docker version", 1)
	r.SetStartCode(runtimePath, system.ExitLaunchFailed)
	p.outcome = model.PollTimedOut
	logger := test.NewMockLogger(slog.LevelDebug)
	s.Logger = logger

	outcome := s.EnsureRuntimeAvailable(context.Background())

	assert.Equal(t, model.LaunchTimedOut, outcome)
	assert.Equal(t, 1, p.calls)
	assert.True(t, logger.HasMessage("failed to launch runtime executable"))
}

func TestEnsureRuntimeAvailable_WithRealPoller(t *testing.T) {
	s, r, _ := setupSequencer(t, true)
	// first probe plus three polled failures, then success on the fourth poll
	r.SetExitSequence("docker version", 1, 1, 1, 1, 0)
	var slept time.Duration
	s.Poller = &readiness.Poller{Sleep: func(ctx context.Context, d time.Duration) error {
		slept += d
		return nil
	}}

	outcome := s.EnsureRuntimeAvailable(context.Background())

	require.Equal(t, model.LaunchStarted, outcome)
	assert.Len(t, r.Commands, 5)
	assert.Equal(t, 3*time.Second, slept)
}
