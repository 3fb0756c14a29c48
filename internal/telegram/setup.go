// Package telegram adapts github.com/go-telegram/bot to the relay handlers:
// it converts updates into events and implements the outbound transport.
package telegram

import (
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
)

// NewTelegramBot creates a bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created", "token_prefix", tokenPrefix(token))
	return b, nil
}

// RegisterHandlers routes every text message to handler. Classification
// happens inside the dispatcher, so a single catch-all registration is used.
func RegisterHandlers(b *bot.Bot, logger *slog.Logger, handler bot.HandlerFunc, mw ...bot.Middleware) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	// An empty prefix matches every text message.
	id := b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, handler, mw...)
	logger.Info("Registered relay handler", "component", "handler_registry", "handler_id", id, "middleware_count", len(mw))
	return nil
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "..."
	}
	return token[:8] + "..."
}
