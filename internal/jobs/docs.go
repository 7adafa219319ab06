// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace service.
//
// # Available Jobs
//
// 1. DeadlineSweepJob - Runs every minute to flag in-progress orders whose deadline is near and warn their participants
// 2. NotificationDispatchJob - Runs every ten seconds to push undelivered notifications through the notification gateway
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, dispatchHandler, 24*time.Hour, 100, logger)
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
// The deadline sweep uses the cron expression "0 * * * * *" (every minute);
// an order only gets one warning, so tighter cadence buys nothing. The
// notification dispatch uses "*/10 * * * * *" (every ten seconds) to keep
// push retries snappy without hammering the inbox table.
//
// # Error Handling
//
// - Both jobs log failures and wait for the next tick; a failed round is retried implicitly
// - Failed job starts will stop any already running jobs
package jobs
