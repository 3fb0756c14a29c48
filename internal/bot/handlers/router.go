package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/edgard/supportbot/internal/store"
	"github.com/edgard/supportbot/internal/translation"
)

// handlePlainText relays staff replies back to the requester and forwards
// everything else to the support chat.
func (d *Dispatcher) handlePlainText(ctx context.Context, ev Event, _ Classification, tr translation.Translator) {
	log := d.log.With("handler", "plain_text", "chat_id", ev.ChatID, "message_id", ev.MessageID)

	if strings.TrimSpace(ev.Text) == "" {
		log.DebugContext(ctx, "Ignoring empty message")
		return
	}

	if dest, ok := d.replyDestination(ctx, log, ev); ok {
		// Staff replies pass through untranslated.
		if d.send(ctx, log, OutboundMessage{ChatID: dest, Text: ev.Text}) {
			log.InfoContext(ctx, "Relayed staff reply", "user_chat_id", dest)
		}
		return
	}

	forwardedID, err := d.deps.Transport.ForwardMessage(ctx, d.deps.SupportChatID, ev.ChatID, ev.MessageID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to forward request to support chat", "support_chat_id", d.deps.SupportChatID, "error", err)
		return
	}
	d.recordTicket(ctx, log, ev, forwardedID)

	d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: tr(translation.MsgSupportAck)})
}

// replyDestination finds the requester a reply is addressed to. A recorded
// ticket wins; otherwise the replied-to message must be a forward of a user's
// message. Replies to anything else are not staff replies.
func (d *Dispatcher) replyDestination(ctx context.Context, log *slog.Logger, ev Event) (int64, bool) {
	reply := ev.Reply
	if reply == nil {
		return 0, false
	}
	if d.deps.BotID != 0 && reply.FromID != d.deps.BotID {
		return 0, false
	}

	if d.deps.Tickets != nil {
		ticket, err := d.deps.Tickets.FindTicket(ctx, ev.ChatID, reply.MessageID)
		switch {
		case err == nil:
			return ticket.UserChatID, true
		case !errors.Is(err, store.ErrNotFound):
			log.WarnContext(ctx, "Ticket lookup failed, falling back to forward origin", "error", err)
		}
	}

	if reply.ForwardOriginUserID != 0 {
		return reply.ForwardOriginUserID, true
	}
	return 0, false
}

func (d *Dispatcher) recordTicket(ctx context.Context, log *slog.Logger, ev Event, forwardedID int) {
	if d.deps.Tickets == nil || forwardedID == 0 {
		return
	}
	ticket := store.NewTicket(ev.ChatID, ev.MessageID, d.deps.SupportChatID, forwardedID, d.deps.Now(), d.deps.TicketTTL)
	if err := d.deps.Tickets.SaveTicket(ctx, ticket); err != nil {
		log.WarnContext(ctx, "Failed to record ticket", "error", err)
		return
	}
	log.InfoContext(ctx, "Forwarded request to support chat", "ticket_id", ticket.ID, "support_message_id", forwardedID)
}
