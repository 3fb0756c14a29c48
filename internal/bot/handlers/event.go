package handlers

import "context"

// Event is one inbound text message, already stripped of transport types.
type Event struct {
	UpdateID  int64
	ChatID    int64
	SenderID  int64
	MessageID int
	Text      string
	Reply     *ReplyContext
}

// ReplyContext describes the message an event replies to.
type ReplyContext struct {
	MessageID int
	// FromID is the author of the replied-to message.
	FromID int64
	// ForwardOriginUserID is set when the replied-to message was itself a
	// forward of a message written by that user.
	ForwardOriginUserID int64
}

// OutboundMessage is a text message with an optional choice menu.
type OutboundMessage struct {
	ChatID int64
	Text   string
	Menu   []string
}

// Identity is the bot's own account as reported by the transport.
type Identity struct {
	ID        int64
	FirstName string
	Username  string
}

// Transport is the chat client the handlers talk through.
type Transport interface {
	GetSelf(ctx context.Context) (Identity, error)
	SendMessage(ctx context.Context, msg OutboundMessage) error
	// ForwardMessage copies messageID from fromChatID into toChatID, keeping
	// the forward origin, and returns the id of the new message.
	ForwardMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) (int, error)
}
