package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/supportbot/internal/bot/handlers"
)

// API is the subset of *bot.Bot the transport uses.
type API interface {
	GetMe(ctx context.Context) (*models.User, error)
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	ForwardMessage(ctx context.Context, params *bot.ForwardMessageParams) (*models.Message, error)
}

// Transport implements handlers.Transport over the Bot API. Each call is
// made exactly once.
type Transport struct {
	api API
}

var _ handlers.Transport = (*Transport)(nil)

// NewTransport wraps api, usually a *bot.Bot.
func NewTransport(api API) *Transport {
	return &Transport{api: api}
}

// GetSelf queries the bot account on every call.
func (t *Transport) GetSelf(ctx context.Context) (handlers.Identity, error) {
	me, err := t.api.GetMe(ctx)
	if err != nil {
		return handlers.Identity{}, fmt.Errorf("getMe failed: %w", err)
	}
	return handlers.Identity{ID: me.ID, FirstName: me.FirstName, Username: me.Username}, nil
}

// SendMessage sends text, rendering Menu as a one-time reply keyboard with
// one button per row.
func (t *Transport) SendMessage(ctx context.Context, msg handlers.OutboundMessage) error {
	params := &bot.SendMessageParams{
		ChatID: msg.ChatID,
		Text:   msg.Text,
	}
	if kb := menuKeyboard(msg.Menu); kb != nil {
		params.ReplyMarkup = kb
	}

	if _, err := t.api.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("sendMessage to %d failed: %w", msg.ChatID, err)
	}
	return nil
}

// ForwardMessage forwards and returns the id of the message in toChatID.
func (t *Transport) ForwardMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) (int, error) {
	fwd, err := t.api.ForwardMessage(ctx, &bot.ForwardMessageParams{
		ChatID:     toChatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
	if err != nil {
		return 0, fmt.Errorf("forwardMessage %d from %d to %d failed: %w", messageID, fromChatID, toChatID, err)
	}
	if fwd == nil {
		return 0, nil
	}
	return fwd.ID, nil
}

func menuKeyboard(menu []string) *models.ReplyKeyboardMarkup {
	if len(menu) == 0 {
		return nil
	}
	rows := make([][]models.KeyboardButton, 0, len(menu))
	for _, label := range menu {
		rows = append(rows, []models.KeyboardButton{{Text: label}})
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:        rows,
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}
