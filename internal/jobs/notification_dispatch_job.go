package jobs

import (
	"context"
	"log/slog"

	"writedesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob manages the scheduled push of undelivered
// notifications. Runs every ten seconds so inbox rows that never reached
// their user get re-sent through the notification gateway.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	limit   int
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates a new job for dispatching notifications.
// Uses DispatchNotificationsCommandHandler with the given batch limit per round.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	limit int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		limit:   limit,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every ten seconds.
func (j *NotificationDispatchJob) Start() error {
	cmd, err := commands.NewDispatchNotificationsCommand(j.limit)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every ten seconds)",
		"limit", j.limit)
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
