package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/edgard/supportbot/internal/store"
)

// newSQLMaintenanceTask compacts backends that support it and is a no-op for
// the rest.
func newSQLMaintenanceTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "sql_maintenance")

	return func(ctx context.Context) error {
		m, ok := deps.Store.(store.Maintainer)
		if !ok {
			log.DebugContext(ctx, "Store has no maintenance routine, skipping")
			return nil
		}

		startTime := time.Now()
		if err := m.RunMaintenance(ctx); err != nil {
			return fmt.Errorf("sql maintenance failed: %w", err)
		}
		log.InfoContext(ctx, "SQL maintenance completed", "duration", time.Since(startTime))
		return nil
	}
}
