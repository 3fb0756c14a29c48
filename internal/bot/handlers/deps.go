package handlers

import (
	"log/slog"
	"time"

	"github.com/edgard/supportbot/internal/store"
	"github.com/edgard/supportbot/internal/translation"
)

// HandlerDeps provides dependencies for the event handlers.
type HandlerDeps struct {
	Logger       *slog.Logger
	Transport    Transport
	Locales      store.LocaleStore
	Tickets      store.TicketStore // optional; nil disables explicit correlation
	Translations *translation.Resolver

	// SupportChatID is the staff group every new request is forwarded to.
	SupportChatID int64
	// BotID is the bot's own user id. When set, only replies to messages the
	// bot sent count as staff replies.
	BotID         int64
	DefaultLocale string
	TicketTTL     time.Duration
	Now           func() time.Time
}
