// Package jobs provides scheduled background tasks for the stock request system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the stock request service.
//
// # Available Jobs
//
// 1. CompletionCheckJob - Runs every minute to detect confirmed orders whose
// requested quantities have been fully delivered and mark them as done
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uncompletedOrdersHandler, checkCompletionHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The completion check uses the cron expression "* * * * *" which means it runs
// every minute. Completion is driven by warehouse deliveries, so minute-level
// granularity is sufficient.
//
// # Error Handling
//
// - A failing completion check for one order is logged and does not stop the sweep
// - Failed job starts will stop any already running jobs
package jobs
