package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/supportbot/internal/bot/tasks"
	"github.com/edgard/supportbot/internal/config"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type blockingListener struct{ started atomic.Bool }

func (l *blockingListener) Start(ctx context.Context) {
	l.started.Store(true)
	<-ctx.Done()
}

type returningListener struct{}

func (returningListener) Start(context.Context) {}

type fakeRunner struct {
	startErr error
	started  atomic.Bool
	stopped  atomic.Bool
}

func (r *fakeRunner) Start() error {
	r.started.Store(true)
	return r.startErr
}

func (r *fakeRunner) Stop() error {
	r.stopped.Store(true)
	return nil
}

func TestBot_RunStopsOnCancel(t *testing.T) {
	listener := &blockingListener{}
	runner := &fakeRunner{}
	b := NewBot(discard, listener, runner)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	require.Eventually(t, func() bool { return listener.started.Load() && runner.started.Load() }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.True(t, runner.stopped.Load())
}

func TestBot_RunFailsWhenListenerExits(t *testing.T) {
	b := NewBot(discard, returningListener{}, nil)
	err := b.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped unexpectedly")
}

func TestBot_RunFailsWhenSchedulerCannotStart(t *testing.T) {
	runner := &fakeRunner{startErr: errors.New("boom")}
	b := NewBot(discard, &blockingListener{}, runner)

	err := b.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.startErr)
}

func TestScheduler_SchedulesOnlyEnabledKnownTasks(t *testing.T) {
	noop := func(context.Context) error { return nil }
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"ticket_cleanup":  {Enabled: true, Schedule: "0 0 * * * *"},
		"store_health":    {Enabled: false, Schedule: "0 * * * * *"},
		"not_registered":  {Enabled: true, Schedule: "0 * * * * *"},
		"sql_maintenance": {Enabled: true, Schedule: "not a cron"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"ticket_cleanup":  noop,
		"store_health":    noop,
		"sql_maintenance": noop,
	}

	s, err := NewScheduler(discard, cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	assert.Equal(t, []string{"ticket_cleanup"}, s.Jobs())
	assert.Error(t, s.Start(), "second start must fail")
}

func TestScheduler_RunsTask(t *testing.T) {
	var runs atomic.Int32
	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"ticket_cleanup": {Enabled: true, Schedule: "* * * * * *"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"ticket_cleanup": func(context.Context) error {
			runs.Add(1)
			return nil
		},
	}

	s, err := NewScheduler(discard, cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop(), "stopping twice is a no-op")
}
