// Package handlers classifies inbound chat events, resolves the sender's
// language and routes messages between users and the support chat.
package handlers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/edgard/supportbot/internal/config"
)

// Dispatcher is the single entry point for inbound events. It keeps no
// per-event state and is safe for concurrent use.
type Dispatcher struct {
	deps     HandlerDeps
	log      *slog.Logger
	handlers map[Category]HandlerFunc
}

// NewDispatcher wires every category to its handler, each wrapped in
// WithLocale.
func NewDispatcher(deps HandlerDeps) *Dispatcher {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.DefaultLocale == "" {
		deps.DefaultLocale = config.DefaultLocale
	}
	if deps.TicketTTL <= 0 {
		deps.TicketTTL = config.DefaultTicketTTL
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	d := &Dispatcher{
		deps: deps,
		log:  deps.Logger.With("component", "dispatcher"),
	}
	d.handlers = map[Category]HandlerFunc{
		CategoryStart:          d.WithLocale(d.handleStart),
		CategoryHelp:           d.WithLocale(d.handleStart),
		CategorySupport:        d.WithLocale(d.handleSupport),
		CategorySettings:       d.WithLocale(d.handleSettings),
		CategoryLanguagePick:   d.WithLocale(d.handleLanguagePick),
		CategoryPlainText:      d.WithLocale(d.handlePlainText),
		CategoryUnknownCommand: d.WithLocale(d.handleUnknown),
	}
	return d
}

// HandleEvent classifies ev and runs the matching handler. Failures are
// logged and never escape.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev Event) {
	c := Classify(ev.Text)
	h, ok := d.handlers[c.Category]
	if !ok {
		h = d.handlers[CategoryUnknownCommand]
	}

	d.log.DebugContext(ctx, "Dispatching event", "update_id", ev.UpdateID, "chat_id", ev.ChatID, "category", c.Category.String())
	h(ctx, ev, c)
}

// send delivers msg once and reports success. Failures are logged only.
func (d *Dispatcher) send(ctx context.Context, log *slog.Logger, msg OutboundMessage) bool {
	if err := d.deps.Transport.SendMessage(ctx, msg); err != nil {
		log.ErrorContext(ctx, "Failed to send message", "target_chat_id", msg.ChatID, "error", err)
		return false
	}
	return true
}
