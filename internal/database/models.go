package database

import (
	"time"

	"github.com/edgard/supportbot/internal/store"
)

// userLocale is a row of user_locales.
type userLocale struct {
	UserID       int64  `db:"user_id"`
	LanguageCode string `db:"language_code"`
	UpdatedAt    int64  `db:"updated_at"`
}

// ticketRow is a row of tickets. Times are unix seconds.
type ticketRow struct {
	ID               string `db:"id"`
	UserChatID       int64  `db:"user_chat_id"`
	UserMessageID    int    `db:"user_message_id"`
	SupportChatID    int64  `db:"support_chat_id"`
	SupportMessageID int    `db:"support_message_id"`
	CreatedAt        int64  `db:"created_at"`
	ExpiresAt        int64  `db:"expires_at"`
}

func rowFromTicket(t *store.Ticket) ticketRow {
	return ticketRow{
		ID:               t.ID,
		UserChatID:       t.UserChatID,
		UserMessageID:    t.UserMessageID,
		SupportChatID:    t.SupportChatID,
		SupportMessageID: t.SupportMessageID,
		CreatedAt:        t.CreatedAt.Unix(),
		ExpiresAt:        t.ExpiresAt.Unix(),
	}
}

func (r ticketRow) ticket() *store.Ticket {
	return &store.Ticket{
		ID:               r.ID,
		UserChatID:       r.UserChatID,
		UserMessageID:    r.UserMessageID,
		SupportChatID:    r.SupportChatID,
		SupportMessageID: r.SupportMessageID,
		CreatedAt:        time.Unix(r.CreatedAt, 0).UTC(),
		ExpiresAt:        time.Unix(r.ExpiresAt, 0).UTC(),
	}
}
