// Package tasks implements the scheduled housekeeping of the relay.
package tasks

import (
	"log/slog"
	"time"

	"github.com/edgard/supportbot/internal/store"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  store.Store
	Now    func() time.Time
}
