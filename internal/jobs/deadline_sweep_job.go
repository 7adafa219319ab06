package jobs

import (
	"context"
	"log/slog"
	"time"

	"writedesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeadlineSweepJob manages the scheduled deadline watch. Runs every minute to
// flag in-progress orders whose deadline falls inside the look-ahead window
// and warn their participants, once per order.
type DeadlineSweepJob struct {
	handler commands.SweepDeadlinesCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeadlineSweepJob creates a new job for sweeping deadlines.
// Uses SweepDeadlinesCommandHandler with the given look-ahead window.
func NewDeadlineSweepJob(
	handler commands.SweepDeadlinesCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *DeadlineSweepJob {
	return &DeadlineSweepJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "deadline_sweep_job"),
	}
}

// Start begins the deadline sweep job to run every minute.
func (j *DeadlineSweepJob) Start() error {
	cmd, err := commands.NewSweepDeadlinesCommand(j.window)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Deadline sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline sweep job started (running every minute)",
		"window", j.window.String())
	return nil
}

// Stop stops the deadline sweep job.
func (j *DeadlineSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline sweep job stopped")
}
