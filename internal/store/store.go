// Package store defines the persistence contracts of the relay: per-user
// language preference and the correlation of forwarded support requests.
package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rs/xid"
)

// ErrNotFound is returned when a ticket lookup misses or the ticket expired.
var ErrNotFound = errors.New("store: not found")

// LocaleStore maps a user chat id to a language code. Last write wins.
type LocaleStore interface {
	// GetLocale reports found=false when the user never picked a language.
	GetLocale(ctx context.Context, userID int64) (code string, found bool, err error)
	SetLocale(ctx context.Context, userID int64, code string) error
}

// TicketStore keeps the link between a message forwarded into the support
// chat and the user who sent it.
type TicketStore interface {
	SaveTicket(ctx context.Context, ticket *Ticket) error
	// FindTicket returns ErrNotFound for unknown or expired tickets.
	FindTicket(ctx context.Context, supportChatID int64, supportMessageID int) (*Ticket, error)
	// PurgeExpiredTickets deletes tickets that expired before now. Backends
	// with native expiry report zero.
	PurgeExpiredTickets(ctx context.Context, now time.Time) (int64, error)
}

// Store is a complete backend.
type Store interface {
	LocaleStore
	TicketStore
	Ping(ctx context.Context) error
	Close() error
}

// Maintainer is implemented by backends that need periodic compaction.
type Maintainer interface {
	RunMaintenance(ctx context.Context) error
}

// Ticket correlates one relayed request with its origin.
type Ticket struct {
	ID               string    `json:"id"                 db:"id"`
	UserChatID       int64     `json:"user_chat_id"       db:"user_chat_id"`
	UserMessageID    int       `json:"user_message_id"    db:"user_message_id"`
	SupportChatID    int64     `json:"support_chat_id"    db:"support_chat_id"`
	SupportMessageID int       `json:"support_message_id" db:"support_message_id"`
	CreatedAt        time.Time `json:"created_at"         db:"created_at"`
	ExpiresAt        time.Time `json:"expires_at"         db:"expires_at"`
}

// NewTicket mints a ticket with a fresh correlation id valid for ttl.
func NewTicket(userChatID int64, userMessageID int, supportChatID int64, supportMessageID int, now time.Time, ttl time.Duration) *Ticket {
	now = now.UTC()
	return &Ticket{
		ID:               xid.NewWithTime(now).String(),
		UserChatID:       userChatID,
		UserMessageID:    userMessageID,
		SupportChatID:    supportChatID,
		SupportMessageID: supportMessageID,
		CreatedAt:        now,
		ExpiresAt:        now.Add(ttl),
	}
}

// Expired reports whether the ticket is no longer answerable at now.
func (t *Ticket) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// TTL is the remaining lifetime at now, never negative.
func (t *Ticket) TTL(now time.Time) time.Duration {
	d := t.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// UserKey is the stringified chat id used as the locale key.
func UserKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
