package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edgard/supportbot/internal/store"
)

var (
	_ store.Store      = (*sqlxStore)(nil)
	_ store.Maintainer = (*sqlxStore)(nil)
)

// sqlxStore implements store.Store on SQLite through sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewStore wraps a migrated database. The store owns db and closes it on Close.
func NewStore(db *sqlx.DB, logger *slog.Logger) store.Store {
	return newStore(db, logger)
}

func newStore(db *sqlx.DB, logger *slog.Logger) *sqlxStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "sqlite_store"),
		now:    time.Now,
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool.
func (s *sqlxStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.logger.Info("Database connection closed")
	return nil
}

// GetLocale reads the stored language code of a user.
func (s *sqlxStore) GetLocale(ctx context.Context, userID int64) (string, bool, error) {
	var code string
	err := s.db.GetContext(ctx, &code, `SELECT language_code FROM user_locales WHERE user_id = ?`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		s.logger.ErrorContext(ctx, "Error reading locale", "user_id", userID, "error", err)
		return "", false, fmt.Errorf("failed to get locale for user %d: %w", userID, err)
	}
	return code, true, nil
}

// SetLocale upserts the user's language code.
func (s *sqlxStore) SetLocale(ctx context.Context, userID int64, code string) error {
	row := userLocale{UserID: userID, LanguageCode: code, UpdatedAt: s.now().UTC().Unix()}
	query := `
        INSERT INTO user_locales (user_id, language_code, updated_at)
        VALUES (:user_id, :language_code, :updated_at)
        ON CONFLICT (user_id) DO UPDATE SET
            language_code = excluded.language_code,
            updated_at = excluded.updated_at;
    `
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		s.logger.ErrorContext(ctx, "Error saving locale", "user_id", userID, "error", err)
		return fmt.Errorf("failed to set locale for user %d: %w", userID, err)
	}
	s.logger.DebugContext(ctx, "Locale saved", "user_id", userID, "language", code)
	return nil
}

// SaveTicket inserts the ticket, replacing any previous ticket for the same
// support message.
func (s *sqlxStore) SaveTicket(ctx context.Context, ticket *store.Ticket) error {
	if ticket == nil {
		return fmt.Errorf("cannot save nil ticket")
	}
	if ticket.SupportChatID == 0 || ticket.UserChatID == 0 {
		return fmt.Errorf("ticket %s must have non-zero chat ids", ticket.ID)
	}

	query := `
        INSERT INTO tickets (id, user_chat_id, user_message_id, support_chat_id, support_message_id, created_at, expires_at)
        VALUES (:id, :user_chat_id, :user_message_id, :support_chat_id, :support_message_id, :created_at, :expires_at)
        ON CONFLICT (support_chat_id, support_message_id) DO UPDATE SET
            id = excluded.id,
            user_chat_id = excluded.user_chat_id,
            user_message_id = excluded.user_message_id,
            created_at = excluded.created_at,
            expires_at = excluded.expires_at;
    `
	if _, err := s.db.NamedExecContext(ctx, query, rowFromTicket(ticket)); err != nil {
		s.logger.ErrorContext(ctx, "Error saving ticket", "ticket_id", ticket.ID, "error", err)
		return fmt.Errorf("failed to save ticket %s: %w", ticket.ID, err)
	}
	return nil
}

// FindTicket looks a ticket up by the forwarded message; expired rows miss.
func (s *sqlxStore) FindTicket(ctx context.Context, supportChatID int64, supportMessageID int) (*store.Ticket, error) {
	var row ticketRow
	query := `
        SELECT id, user_chat_id, user_message_id, support_chat_id, support_message_id, created_at, expires_at
        FROM tickets
        WHERE support_chat_id = ? AND support_message_id = ? AND expires_at > ?;
    `
	err := s.db.GetContext(ctx, &row, query, supportChatID, supportMessageID, s.now().UTC().Unix())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return row.ticket(), nil
}

// PurgeExpiredTickets deletes tickets whose expiry is at or before now.
func (s *sqlxStore) PurgeExpiredTickets(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tickets WHERE expires_at <= ?`, now.UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired tickets: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		s.logger.WarnContext(ctx, "Could not get affected row count when purging tickets", "error", err)
		return 0, nil
	}
	return n, nil
}

// RunMaintenance runs VACUUM. It must execute outside a transaction.
func (s *sqlxStore) RunMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")
	_, err := s.db.ExecContext(ctx, "VACUUM;")
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed")
	return nil
}
