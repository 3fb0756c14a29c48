package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/supportbot/internal/bot/handlers"
)

// EventHandler consumes converted events; *handlers.Dispatcher implements it.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev handlers.Event)
}

// NewUpdateHandler converts each text update and hands it to h.
func NewUpdateHandler(h EventHandler, logger *slog.Logger) bot.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "update_handler")

	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		ev, ok := EventFromUpdate(update)
		if !ok {
			log.DebugContext(ctx, "Ignoring non-text update", "update_id", update.ID)
			return
		}
		h.HandleEvent(ctx, ev)
	}
}

// EventFromUpdate extracts a handlers.Event from a text message update.
func EventFromUpdate(update *models.Update) (handlers.Event, bool) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return handlers.Event{}, false
	}
	msg := update.Message

	ev := handlers.Event{
		UpdateID:  update.ID,
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      msg.Text,
	}
	if msg.From != nil {
		ev.SenderID = msg.From.ID
	}
	if r := msg.ReplyToMessage; r != nil {
		ev.Reply = &handlers.ReplyContext{
			MessageID:           r.ID,
			ForwardOriginUserID: forwardOriginUserID(r),
		}
		if r.From != nil {
			ev.Reply.FromID = r.From.ID
		}
	}
	return ev, true
}

// forwardOriginUserID is zero unless msg is a forward of a visible user's
// message. Hidden users, chats and channels carry no routable id.
func forwardOriginUserID(msg *models.Message) int64 {
	origin := msg.ForwardOrigin
	if origin == nil || origin.Type != models.MessageOriginTypeUser || origin.MessageOriginUser == nil {
		return 0
	}
	return origin.MessageOriginUser.SenderUser.ID
}
