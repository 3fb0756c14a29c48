package tasks

import (
	"context"
	"time"
)

// ScheduledTaskFunc is the signature of every scheduled task. The context
// comes from the scheduler and must be respected.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns the tasks keyed by their config name.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	tasks := map[string]ScheduledTaskFunc{
		"ticket_cleanup":  newTicketCleanupTask(deps),
		"store_health":    newStoreHealthTask(deps),
		"sql_maintenance": newSQLMaintenanceTask(deps),
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
