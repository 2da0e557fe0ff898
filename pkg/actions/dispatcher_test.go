package actions

import (
	"context"
	"log/slog"
	"testing"

	"stacklaunch/pkg/model"
	"stacklaunch/pkg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) ActionStarting(choice model.MenuChoice, action Action) {
	r.events = append(r.events, "starting:"+choice.String())
}

func (r *recordingReporter) ActionPlanned(action Action) {
	r.events = append(r.events, "planned:"+action.Description())
}

func (r *recordingReporter) ActionSucceeded(choice model.MenuChoice) {
	r.events = append(r.events, "succeeded:"+choice.String())
}

func (r *recordingReporter) ActionFailed(choice model.MenuChoice, err error) {
	r.events = append(r.events, "failed:"+choice.String())
}

func (r *recordingReporter) InvalidChoice() {
	r.events = append(r.events, "invalid")
}

func (r *recordingReporter) Goodbye() {
	r.events = append(r.events, "goodbye")
}

func newDispatcher() (*Dispatcher, *test.MockCommandRunner, *recordingReporter) {
	r := test.NewMockCommandRunner()
	rep := &recordingReporter{}
	return &Dispatcher{
		Runner:   r,
		Logger:   test.NewMockLogger(slog.LevelDebug),
		Reporter: rep,
		Compose:  legacyCompose,
		Stack:    "demo",
	}, r, rep
}

func TestDispatch_Start(t *testing.T) {
	d, r, rep := newDispatcher()

	require.NoError(t, d.Dispatch(context.Background(), model.MenuStart))

	assert.Equal(t, []string{"docker-compose up --build"}, r.Commands)
	assert.Equal(t, []string{"starting:start", "succeeded:start"}, rep.events)
}

func TestDispatch_StartFailureIsNotRetried(t *testing.T) {
	d, r, rep := newDispatcher()
	r.SetExitCode("docker-compose up --build", 1)

	err := d.Dispatch(context.Background(), model.MenuStart)

	assert.ErrorIs(t, err, model.ErrSubprocessFailed)
	assert.Len(t, r.Commands, 1)
	assert.Equal(t, []string{"starting:start", "failed:start"}, rep.events)
}

func TestDispatch_Stop(t *testing.T) {
	d, r, rep := newDispatcher()

	require.NoError(t, d.Dispatch(context.Background(), model.MenuStop))

	assert.Equal(t, []string{"docker-compose down"}, r.Commands)
	assert.Equal(t, []string{"starting:stop", "succeeded:stop"}, rep.events)
}

func TestDispatch_Exit(t *testing.T) {
	d, r, rep := newDispatcher()

	require.NoError(t, d.Dispatch(context.Background(), model.MenuExit))

	assert.Empty(t, r.Commands)
	assert.Equal(t, []string{"goodbye"}, rep.events)
}

func TestDispatch_InvalidRunsNothing(t *testing.T) {
	d, r, rep := newDispatcher()

	err := d.Dispatch(context.Background(), model.ParseMenuChoice("4"))

	assert.NoError(t, err)
	assert.Empty(t, r.Commands)
	assert.Empty(t, r.Started)
	assert.Equal(t, []string{"invalid"}, rep.events)
}

func TestDispatch_DryRun(t *testing.T) {
	d, r, rep := newDispatcher()
	d.DryRun = true

	require.NoError(t, d.Dispatch(context.Background(), model.MenuStop))

	assert.Empty(t, r.Commands)
	assert.Equal(t, []string{"planned:Stop and remove demo"}, rep.events)
}

func TestActionFor(t *testing.T) {
	d, _, _ := newDispatcher()

	assert.IsType(t, &ComposeUpAction{}, d.ActionFor(model.MenuStart))
	assert.IsType(t, &ComposeDownAction{}, d.ActionFor(model.MenuStop))
	assert.Nil(t, d.ActionFor(model.MenuExit))
	assert.Nil(t, d.ActionFor(model.MenuInvalid))
}
