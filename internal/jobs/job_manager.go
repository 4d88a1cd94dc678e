package jobs

import (
	"fmt"
	"log/slog"

	"stockrequest/internal/core/application/usecases/commands"
	"stockrequest/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	completionCheckJob *CompletionCheckJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	uncompletedOrders queries.GetUncompletedOrdersQueryHandler,
	checkCompletion commands.CheckOrderCompletionCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		completionCheckJob: NewCompletionCheckJob(uncompletedOrders, checkCompletion, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.completionCheckJob.Start(); err != nil {
		return fmt.Errorf("failed to start completion check job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.completionCheckJob.Stop()
}
