package handlers

import (
	"context"
	"strings"

	"github.com/edgard/supportbot/internal/translation"
)

// MainMenu is offered after /start and /help.
var MainMenu = []string{"/support", "/settings"}

func (d *Dispatcher) handleStart(ctx context.Context, ev Event, _ Classification, tr translation.Translator) {
	log := d.log.With("handler", "start", "chat_id", ev.ChatID)

	me, err := d.deps.Transport.GetSelf(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to get bot identity", "error", err)
		return
	}

	var b strings.Builder
	b.WriteString(tr(translation.MsgGreeting) + "\n")
	b.WriteString(tr(translation.MsgIntroduction, me.FirstName) + "\n")
	b.WriteString(tr(translation.MsgAskAction) + "\n\n")
	b.WriteString(tr(translation.MsgSupportCommand) + "\n")
	b.WriteString(tr(translation.MsgSettingsCommand) + "\n")

	d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: b.String(), Menu: MainMenu})
}

func (d *Dispatcher) handleSupport(ctx context.Context, ev Event, _ Classification, tr translation.Translator) {
	log := d.log.With("handler", "support", "chat_id", ev.ChatID)
	d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: tr(translation.MsgSupportPrompt)})
}

func (d *Dispatcher) handleSettings(ctx context.Context, ev Event, _ Classification, tr translation.Translator) {
	log := d.log.With("handler", "settings", "chat_id", ev.ChatID)

	languages := d.deps.Translations.Catalog().Languages()
	menu := make([]string, 0, len(languages))

	var b strings.Builder
	b.WriteString(tr(translation.MsgChooseLanguage) + "\n")
	for _, l := range languages {
		b.WriteString(l.String() + "\n")
		menu = append(menu, l.String())
	}

	d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: b.String(), Menu: menu})
}

// handleLanguagePick persists a valid choice and confirms it in the newly
// chosen language, so repeating the same pick yields the same text.
func (d *Dispatcher) handleLanguagePick(ctx context.Context, ev Event, c Classification, tr translation.Translator) {
	log := d.log.With("handler", "language_pick", "chat_id", ev.ChatID, "language", c.LanguageCode)

	lang, ok := d.deps.Translations.Catalog().Lookup(c.LanguageCode)
	if !ok {
		log.InfoContext(ctx, "Unknown language selected")
		d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: tr(translation.MsgUnknownLanguage)})
		return
	}

	if err := d.deps.Locales.SetLocale(ctx, ev.ChatID, lang.Code); err != nil {
		log.ErrorContext(ctx, "Failed to save language", "error", err)
		d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: tr(translation.MsgUpdateFailed)})
		return
	}

	log.InfoContext(ctx, "Language updated")
	confirm := d.deps.Translations.For(lang.Code)
	d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: confirm(translation.MsgLanguageUpdated, lang.Name)})
}

func (d *Dispatcher) handleUnknown(ctx context.Context, ev Event, c Classification, tr translation.Translator) {
	log := d.log.With("handler", "unknown", "chat_id", ev.ChatID)
	log.DebugContext(ctx, "Unknown command", "command", c.Command)
	d.send(ctx, log, OutboundMessage{ChatID: ev.ChatID, Text: tr(translation.MsgUnknownCommand)})
}
