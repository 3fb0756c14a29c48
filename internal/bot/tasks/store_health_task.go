package tasks

import (
	"context"
	"fmt"
	"time"
)

const healthTimeout = 5 * time.Second

// newStoreHealthTask pings the store so connectivity loss shows up in logs
// before users hit it.
func newStoreHealthTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "store_health")

	return func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, healthTimeout)
		defer cancel()

		if err := deps.Store.Ping(pingCtx); err != nil {
			log.WarnContext(ctx, "Store is unreachable", "error", err)
			return fmt.Errorf("store ping failed: %w", err)
		}
		log.DebugContext(ctx, "Store is healthy")
		return nil
	}
}
