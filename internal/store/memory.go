package store

import (
	"context"
	"sync"
	"time"
)

type ticketKey struct {
	chatID    int64
	messageID int
}

// Memory is a process-local Store. It is goroutine-safe and loses everything
// on restart.
type Memory struct {
	mu      sync.RWMutex
	locales map[string]string
	tickets map[ticketKey]Ticket
	now     func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		locales: make(map[string]string),
		tickets: make(map[ticketKey]Ticket),
		now:     time.Now,
	}
}

func (m *Memory) GetLocale(_ context.Context, userID int64) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	code, ok := m.locales[UserKey(userID)]
	return code, ok, nil
}

func (m *Memory) SetLocale(_ context.Context, userID int64, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locales[UserKey(userID)] = code
	return nil
}

func (m *Memory) SaveTicket(_ context.Context, ticket *Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[ticketKey{ticket.SupportChatID, ticket.SupportMessageID}] = *ticket
	return nil
}

func (m *Memory) FindTicket(_ context.Context, supportChatID int64, supportMessageID int) (*Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tickets[ticketKey{supportChatID, supportMessageID}]
	if !ok || t.Expired(m.now()) {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (m *Memory) PurgeExpiredTickets(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, t := range m.tickets {
		if t.Expired(now) {
			delete(m.tickets, k)
			n++
		}
	}
	return n, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
