// Package redis implements store.Store on a Redis-compatible key-value
// service. Tickets use native key expiry.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edgard/supportbot/internal/store"
)

const connectionTimeout = 5 * time.Second

// Options contains the connection parameters.
type Options struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Store is a Redis-backed store.Store.
type Store struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ store.Store = (*Store)(nil)

// New connects and pings the server. Addr may be host:port or a redis:// URL.
func New(ctx context.Context, opts Options, logger *slog.Logger) (*Store, error) {
	addr := opts.Addr
	if parsedURL, err := url.Parse(opts.Addr); err == nil && parsedURL.Scheme == "redis" {
		addr = parsedURL.Host
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return NewWithClient(client, opts.KeyPrefix, logger), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if prefix == "" {
		prefix = "supportbot"
	}
	return &Store{
		client: client,
		prefix: prefix,
		logger: logger.With("component", "redis_store"),
	}
}

func (s *Store) localeKey(userID int64) string {
	return s.prefix + ":locale:" + store.UserKey(userID)
}

func (s *Store) ticketKey(chatID int64, messageID int) string {
	return s.prefix + ":ticket:" + strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(messageID)
}

// GetLocale reads the user's language code.
func (s *Store) GetLocale(ctx context.Context, userID int64) (string, bool, error) {
	code, err := s.client.Get(ctx, s.localeKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get locale for %d: %w", userID, err)
	}
	return code, true, nil
}

// SetLocale stores the user's language code without expiry.
func (s *Store) SetLocale(ctx context.Context, userID int64, code string) error {
	if err := s.client.Set(ctx, s.localeKey(userID), code, 0).Err(); err != nil {
		return fmt.Errorf("failed to set locale for %d: %w", userID, err)
	}
	s.logger.DebugContext(ctx, "Locale saved", "user_id", userID, "language", code)
	return nil
}

// SaveTicket stores the ticket as JSON with its remaining TTL.
func (s *Store) SaveTicket(ctx context.Context, ticket *store.Ticket) error {
	if ticket == nil {
		return fmt.Errorf("cannot save nil ticket")
	}
	ttl := ticket.TTL(time.Now())
	if ttl <= 0 {
		return fmt.Errorf("ticket %s already expired", ticket.ID)
	}

	payload, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to encode ticket %s: %w", ticket.ID, err)
	}
	key := s.ticketKey(ticket.SupportChatID, ticket.SupportMessageID)
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save ticket %s: %w", ticket.ID, err)
	}
	return nil
}

// FindTicket returns store.ErrNotFound once the key has expired.
func (s *Store) FindTicket(ctx context.Context, supportChatID int64, supportMessageID int) (*store.Ticket, error) {
	payload, err := s.client.Get(ctx, s.ticketKey(supportChatID, supportMessageID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var ticket store.Ticket
	if err := json.Unmarshal(payload, &ticket); err != nil {
		return nil, fmt.Errorf("failed to decode ticket: %w", err)
	}
	return &ticket, nil
}

// PurgeExpiredTickets is a no-op; Redis expires ticket keys itself.
func (s *Store) PurgeExpiredTickets(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
