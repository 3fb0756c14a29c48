package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgard/supportbot/internal/bot/handlers"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		category handlers.Category
		code     string
		command  string
	}{
		{name: "start", text: "/start", category: handlers.CategoryStart, command: "start"},
		{name: "start with bot suffix", text: "/start@SupportBot", category: handlers.CategoryStart, command: "start"},
		{name: "start with payload", text: "/start ref42", category: handlers.CategoryStart, command: "start"},
		{name: "help", text: "/help", category: handlers.CategoryHelp, command: "help"},
		{name: "support", text: "/support", category: handlers.CategorySupport, command: "support"},
		{name: "settings", text: "/settings", category: handlers.CategorySettings, command: "settings"},
		{name: "settings newline args", text: "/settings\nnow", category: handlers.CategorySettings, command: "settings"},
		{name: "language pick", text: "fr_FR - Français", category: handlers.CategoryLanguagePick, code: "fr_FR"},
		{name: "language pick unknown code", text: "xx_YY - Whatever", category: handlers.CategoryLanguagePick, code: "xx_YY"},
		{name: "language pick empty name", text: "pt_BR - ", category: handlers.CategoryLanguagePick, code: "pt_BR"},
		{name: "pattern needs exact case", text: "PT_br - Português", category: handlers.CategoryPlainText},
		{name: "pattern anchored at start", text: "I want pt_BR - Português", category: handlers.CategoryPlainText},
		{name: "pattern needs separator", text: "pt_BR Português", category: handlers.CategoryPlainText},
		{name: "command named like a code", text: "/fr_FR", category: handlers.CategoryUnknownCommand, command: "fr_FR"},
		{name: "unknown command", text: "/weather today", category: handlers.CategoryUnknownCommand, command: "weather"},
		{name: "bare slash", text: "/", category: handlers.CategoryUnknownCommand},
		{name: "commands are case sensitive", text: "/Start", category: handlers.CategoryUnknownCommand, command: "Start"},
		{name: "plain text", text: "I need help", category: handlers.CategoryPlainText},
		{name: "slash inside text", text: "see /settings", category: handlers.CategoryPlainText},
		{name: "empty", text: "", category: handlers.CategoryPlainText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := handlers.Classify(tt.text)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.code, got.LanguageCode)
			assert.Equal(t, tt.command, got.Command)
		})
	}
}

func TestRulesOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(handlers.Rules))
	for _, r := range handlers.Rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"start", "help", "support", "settings", "language_pick", "unknown_command", "plain_text",
	}, names)
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	name, args, ok := handlers.ParseCommand("/start@relay_bot  deep link ")
	assert.True(t, ok)
	assert.Equal(t, "start", name)
	assert.Equal(t, "deep link", args)

	_, _, ok = handlers.ParseCommand("start")
	assert.False(t, ok)
	_, _, ok = handlers.ParseCommand("/@bot")
	assert.False(t, ok)
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "language_pick", handlers.CategoryLanguagePick.String())
	assert.Equal(t, "invalid", handlers.Category(99).String())
}
