// Package config loads, defaults and validates the supportbot configuration.
package config

import (
	"errors"
	"time"
)

// ErrConfiguration wraps every failure returned by LoadConfig.
var ErrConfiguration = errors.New("configuration error")

// Config holds the whole application configuration.
type Config struct {
	Logger    LoggerConfig     `mapstructure:"logger"`
	Telegram  TelegramConfig   `mapstructure:"telegram"`
	Languages []LanguageConfig `mapstructure:"languages" validate:"required,min=1,unique=Code,dive"`
	Store     StoreConfig      `mapstructure:"store"`
	Tickets   TicketsConfig    `mapstructure:"tickets"`
	Scheduler SchedulerConfig  `mapstructure:"scheduler"`
}

// LoggerConfig controls slog output.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credential and the staff group the bot relays to.
type TelegramConfig struct {
	Token         string `mapstructure:"token"           validate:"required"`
	SupportChatID int64  `mapstructure:"support_chat_id" validate:"required"`
}

// LanguageConfig is one selectable language. Order in the file is the order
// shown to users.
type LanguageConfig struct {
	Code string `mapstructure:"code" validate:"required,language_code"`
	Name string `mapstructure:"name" validate:"required"`
}

// StoreConfig selects and configures the locale and ticket backend.
type StoreConfig struct {
	Driver string       `mapstructure:"driver" validate:"oneof=redis sqlite memory"`
	Redis  RedisConfig  `mapstructure:"redis"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// RedisConfig holds the connection parameters of the key-value service.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"         validate:"min=0"`
	KeyPrefix string `mapstructure:"key_prefix" validate:"required"`
}

// SQLiteConfig configures the embedded database backend.
type SQLiteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// TicketsConfig bounds how long a relayed request stays answerable.
type TicketsConfig struct {
	TTL time.Duration `mapstructure:"ttl" validate:"min=1m"`
}

// SchedulerConfig lists background tasks by name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and sets its cron schedule (with seconds field).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
