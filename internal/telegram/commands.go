package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/supportbot/internal/translation"
)

// CommandsAPI is the part of *bot.Bot used to publish the command list.
type CommandsAPI interface {
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

// BotCommands lists the public commands with descriptions in tr's language.
func BotCommands(tr translation.Translator) []models.BotCommand {
	return []models.BotCommand{
		{Command: "start", Description: tr(translation.DescStart)},
		{Command: "help", Description: tr(translation.DescHelp)},
		{Command: "support", Description: tr(translation.DescSupport)},
		{Command: "settings", Description: tr(translation.DescSettings)},
	}
}

// PublishCommands sets the default command list plus one localized list per
// catalog language. Telegram keys lists by ISO 639-1 code, so the first
// catalog entry of each base language wins.
func PublishCommands(ctx context.Context, api CommandsAPI, resolver *translation.Resolver, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "commands")

	if _, err := api.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: BotCommands(translation.Identity)}); err != nil {
		return fmt.Errorf("failed to set default commands: %w", err)
	}

	seen := map[string]bool{}
	for _, lang := range resolver.Catalog().Languages() {
		tag, err := translation.Tag(lang.Code)
		if err != nil {
			continue
		}
		base, _ := tag.Base()
		code := base.String()
		if seen[code] {
			continue
		}
		seen[code] = true

		_, err = api.SetMyCommands(ctx, &bot.SetMyCommandsParams{
			Commands:     BotCommands(resolver.For(lang.Code)),
			LanguageCode: code,
		})
		if err != nil {
			log.WarnContext(ctx, "Failed to set localized commands", "language", lang.Code, "error", err)
			continue
		}
		log.DebugContext(ctx, "Published commands", "language", code)
	}
	return nil
}
