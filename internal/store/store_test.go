package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/supportbot/internal/store"
)

func TestNewTicket(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := store.NewTicket(1, 2, -100, 3, now, time.Hour)
	b := store.NewTicket(1, 2, -100, 4, now, time.Hour)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, now.Add(time.Hour), a.ExpiresAt)
	assert.False(t, a.Expired(now.Add(59*time.Minute)))
	assert.True(t, a.Expired(now.Add(time.Hour)))
	assert.Equal(t, 30*time.Minute, a.TTL(now.Add(30*time.Minute)))
	assert.Zero(t, a.TTL(now.Add(2*time.Hour)))
}

func TestMemory_Locale(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := store.NewMemory()

	_, found, err := m.GetLocale(ctx, 7)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.SetLocale(ctx, 7, "pt_BR"))
	require.NoError(t, m.SetLocale(ctx, 7, "pt_BR"))
	code, found, err := m.GetLocale(ctx, 7)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "pt_BR", code)

	require.NoError(t, m.SetLocale(ctx, 7, "en_US"))
	code, _, _ = m.GetLocale(ctx, 7)
	assert.Equal(t, "en_US", code)
}

func TestMemory_Tickets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := store.NewMemory()

	live := store.NewTicket(11, 1, -100, 50, time.Now(), time.Hour)
	expired := store.NewTicket(12, 1, -100, 51, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, m.SaveTicket(ctx, live))
	require.NoError(t, m.SaveTicket(ctx, expired))

	got, err := m.FindTicket(ctx, -100, 50)
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)
	assert.Equal(t, int64(11), got.UserChatID)

	_, err = m.FindTicket(ctx, -100, 51)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = m.FindTicket(ctx, -200, 50)
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err := m.PurgeExpiredTickets(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemory_ConcurrentLocaleWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := store.NewMemory()

	var wg sync.WaitGroup
	for i := int64(0); i < 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			code := fmt.Sprintf("c%d", id%2)
			assert.NoError(t, m.SetLocale(ctx, id, code))
			got, _, err := m.GetLocale(ctx, id)
			assert.NoError(t, err)
			assert.Equal(t, code, got)
		}(i)
	}
	wg.Wait()
}
