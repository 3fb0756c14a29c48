// Package main contains the entrypoint for the support relay bot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"

	"github.com/edgard/supportbot/internal/bot"
	"github.com/edgard/supportbot/internal/bot/handlers"
	"github.com/edgard/supportbot/internal/bot/tasks"
	"github.com/edgard/supportbot/internal/config"
	"github.com/edgard/supportbot/internal/database"
	"github.com/edgard/supportbot/internal/logger"
	"github.com/edgard/supportbot/internal/store"
	"github.com/edgard/supportbot/internal/store/redis"
	"github.com/edgard/supportbot/internal/telegram"
	"github.com/edgard/supportbot/internal/translation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires config, logger, store, translations, bot and scheduler, blocks
// until shutdown and returns the process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to open store", "driver", cfg.Store.Driver, "error", err)
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("Error closing store", "error", err)
		}
	}()

	languages := make([]translation.Language, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		languages = append(languages, translation.Language{Code: l.Code, Name: l.Name})
	}
	resolver, err := translation.NewResolver(translation.NewCatalog(languages...))
	if err != nil {
		log.Error("Failed to load translations", "error", err)
		return 1
	}

	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, tgbot.WithMiddlewares(logger.Middleware(log)))
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	me, err := tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", me.ID, "bot_username", me.Username)

	dispatcher := handlers.NewDispatcher(handlers.HandlerDeps{
		Logger:        log,
		Transport:     telegram.NewTransport(tg),
		Locales:       st,
		Tickets:       st,
		Translations:  resolver,
		SupportChatID: cfg.Telegram.SupportChatID,
		BotID:         me.ID,
		DefaultLocale: config.DefaultLocale,
		TicketTTL:     cfg.Tickets.TTL,
	})
	if err := telegram.RegisterHandlers(tg, log, telegram.NewUpdateHandler(dispatcher, log)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}

	if err := telegram.PublishCommands(ctx, tg, resolver, log); err != nil {
		// The menu is cosmetic; the relay works without it.
		log.Warn("Failed to publish bot commands", "error", err)
	}

	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tasks.TaskDeps{Logger: log, Store: st}))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}
	app := bot.NewBot(log, tg, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		time.Sleep(time.Second)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	time.Sleep(time.Second)
	return 0
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.Store.Driver {
	case "redis":
		return redis.New(ctx, redis.Options{
			Addr:      cfg.Store.Redis.Addr,
			Password:  cfg.Store.Redis.Password,
			DB:        cfg.Store.Redis.DB,
			KeyPrefix: cfg.Store.Redis.KeyPrefix,
		}, log)
	case "sqlite":
		db, err := database.NewDB(cfg.Store.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return database.NewStore(db, log), nil
	case "memory":
		log.Warn("Using in-memory store; preferences and tickets are lost on restart")
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
