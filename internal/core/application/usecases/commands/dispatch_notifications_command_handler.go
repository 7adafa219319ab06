package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// DispatchNotificationsCommandHandler pushes undelivered inbox entries
// through the notification gateway. Each entry is handled on its own: a
// failed push is logged and skipped, never blocking the rest of the batch,
// and the row stays unpushed for the next round. No wrapping transaction;
// the version check on the row settles racing dispatchers.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	gateway    ports.NotificationGateway
	logger     *slog.Logger
}

// NewDispatchNotificationsCommandHandler creates a handler for push rounds.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "notification_dispatch"),
	}
}

// Handle processes one push round.
// Only the initial inbox read can fail the round; everything after is
// best-effort per entry.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	inbox := uow.NotificationRepository()

	entries, err := inbox.ListUnpushed(ctx, cmd.Limit())
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := h.gateway.Deliver(ctx, entry); err != nil {
			h.logger.ErrorContext(ctx, "Notification push failed",
				"notification_id", entry.ID().String(), "error", err)
			continue
		}

		if err := entry.MarkPushed(time.Now()); err != nil {
			h.logger.ErrorContext(ctx, "Notification cannot be marked as pushed",
				"notification_id", entry.ID().String(), "error", err)
			continue
		}

		err := inbox.Update(ctx, entry)
		switch {
		case errors.Is(err, errs.ErrConflict):
			// Another dispatcher already settled this row.
			h.logger.InfoContext(ctx, "Notification push raced, skipping",
				"notification_id", entry.ID().String())
		case err != nil:
			h.logger.ErrorContext(ctx, "Notification row update failed",
				"notification_id", entry.ID().String(), "error", err)
		}
	}

	return nil
}
