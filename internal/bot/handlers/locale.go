package handlers

import (
	"context"

	"github.com/edgard/supportbot/internal/translation"
)

// HandlerFunc handles one classified event.
type HandlerFunc func(ctx context.Context, ev Event, c Classification)

// LocalizedHandler is a handler that also receives the sender's translator.
type LocalizedHandler func(ctx context.Context, ev Event, c Classification, tr translation.Translator)

// WithLocale resolves the locale of the event's chat and injects the matching
// translator. Store read failures fall back to the default locale.
func (d *Dispatcher) WithLocale(next LocalizedHandler) HandlerFunc {
	return func(ctx context.Context, ev Event, c Classification) {
		next(ctx, ev, c, d.translatorFor(ctx, ev.ChatID))
	}
}

// ResolveLocale returns the stored language of chatID or the default.
func (d *Dispatcher) ResolveLocale(ctx context.Context, chatID int64) string {
	code, found, err := d.deps.Locales.GetLocale(ctx, chatID)
	if err != nil {
		d.log.WarnContext(ctx, "Failed to read locale, using default", "chat_id", chatID, "error", err)
		return d.deps.DefaultLocale
	}
	if !found || code == "" {
		return d.deps.DefaultLocale
	}
	return code
}

func (d *Dispatcher) translatorFor(ctx context.Context, chatID int64) translation.Translator {
	code := d.ResolveLocale(ctx, chatID)
	if _, ok := d.deps.Translations.Catalog().Lookup(code); !ok {
		d.log.DebugContext(ctx, "Language not in catalog, using default strings", "chat_id", chatID, "language", code)
	}
	return d.deps.Translations.For(code)
}
