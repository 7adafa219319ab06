package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"writedesk/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deadlineSweepJob        *DeadlineSweepJob
	notificationDispatchJob *NotificationDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepDeadlinesHandler commands.SweepDeadlinesCommandHandler,
	dispatchNotificationsHandler commands.DispatchNotificationsCommandHandler,
	sweepWindow time.Duration,
	dispatchLimit int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deadlineSweepJob:        NewDeadlineSweepJob(sweepDeadlinesHandler, sweepWindow, logger),
		notificationDispatchJob: NewNotificationDispatchJob(dispatchNotificationsHandler, dispatchLimit, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deadlineSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start deadline sweep job: %w", err)
	}

	if err := jm.notificationDispatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deadlineSweepJob.Stop()
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineSweepJob.Stop()
	jm.notificationDispatchJob.Stop()
}
