package tasks

import (
	"context"
	"fmt"
)

// newTicketCleanupTask deletes expired ticket correlations.
func newTicketCleanupTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "ticket_cleanup")

	return func(ctx context.Context) error {
		n, err := deps.Store.PurgeExpiredTickets(ctx, deps.Now())
		if err != nil {
			return fmt.Errorf("ticket cleanup failed: %w", err)
		}
		if n > 0 {
			log.InfoContext(ctx, "Purged expired tickets", "count", n)
		}
		return nil
	}
}
