package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/supportbot/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type maintainedStore struct {
	*store.Memory
	maintained int
	pingErr    error
}

func (m *maintainedStore) RunMaintenance(context.Context) error {
	m.maintained++
	return nil
}

func (m *maintainedStore) Ping(context.Context) error { return m.pingErr }

func TestRegisterAllTasks(t *testing.T) {
	got := RegisterAllTasks(TaskDeps{Logger: discard, Store: store.NewMemory()})
	assert.Len(t, got, 3)
	for _, name := range []string{"ticket_cleanup", "store_health", "sql_maintenance"} {
		assert.Contains(t, got, name)
	}
}

func TestTicketCleanupTask(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	mem := store.NewMemory()

	require.NoError(t, mem.SaveTicket(ctx, store.NewTicket(1, 10, -100, 500, now.Add(-2*time.Hour), time.Hour)))
	require.NoError(t, mem.SaveTicket(ctx, store.NewTicket(2, 20, -100, 501, now, time.Hour)))

	task := RegisterAllTasks(TaskDeps{Logger: discard, Store: mem, Now: func() time.Time { return now }})["ticket_cleanup"]
	require.NoError(t, task(ctx))

	n, err := mem.PurgeExpiredTickets(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, n, "expired ticket should already be gone")

	_, err = mem.FindTicket(ctx, -100, 501)
	assert.NoError(t, err)
}

func TestStoreHealthTask(t *testing.T) {
	s := &maintainedStore{Memory: store.NewMemory()}
	task := RegisterAllTasks(TaskDeps{Logger: discard, Store: s})["store_health"]

	assert.NoError(t, task(context.Background()))

	s.pingErr = errors.New("connection refused")
	err := task(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, s.pingErr)
}

func TestSQLMaintenanceTask(t *testing.T) {
	s := &maintainedStore{Memory: store.NewMemory()}
	task := RegisterAllTasks(TaskDeps{Logger: discard, Store: s})["sql_maintenance"]
	require.NoError(t, task(context.Background()))
	assert.Equal(t, 1, s.maintained)

	plain := RegisterAllTasks(TaskDeps{Logger: discard, Store: store.NewMemory()})["sql_maintenance"]
	assert.NoError(t, plain(context.Background()), "backends without maintenance are skipped")
}
