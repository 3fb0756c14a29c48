// Package logger builds the application slog logger and the go-telegram/bot
// middleware that logs every incoming update.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const previewLen = 50

// NewLogger returns a slog logger writing to stdout at the given level.
// Unknown levels fall back to info.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	return newLogger(os.Stdout, levelStr, jsonOutput)
}

func newLogger(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a config level name to a slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware logs the start and end of each update the bot processes.
func Middleware(log *slog.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			startTime := time.Now()
			entry := log.With(UpdateAttrs(update)...)

			entry.DebugContext(ctx, "Processing update")
			next(ctx, b, update)
			entry.InfoContext(ctx, "Finished processing update", "duration", time.Since(startTime))
		}
	}
}

// UpdateAttrs extracts the identifying fields of an update for structured logs.
func UpdateAttrs(update *models.Update) []any {
	attrs := []any{"update_id", update.ID}

	msg := update.Message
	if msg == nil {
		return append(attrs, "update_type", "other")
	}

	attrs = append(attrs,
		"update_type", "message",
		"message_id", msg.ID,
		"chat_id", msg.Chat.ID,
		"text_preview", truncateString(msg.Text, previewLen),
	)
	if msg.From != nil {
		attrs = append(attrs, "user_id", msg.From.ID)
	}
	if msg.ReplyToMessage != nil {
		attrs = append(attrs, "reply_to_message_id", msg.ReplyToMessage.ID)
	}
	return attrs
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}
