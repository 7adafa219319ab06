package commands

import (
	"context"

	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler flips the read flag on an inbox entry.
// Pure inbox bookkeeping: no trail event, no fanout. Marking an already read
// entry is a no-op.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	identity   ports.IdentityProvider
}

// NewMarkNotificationReadCommandHandler creates a handler for read receipts.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
	identity ports.IdentityProvider,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
	}
}

// Handle processes the read receipt.
// A notification that belongs to someone else is reported as not found so the
// call leaks nothing about other users' inboxes.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := resolveActor(ctx, h.identity, cmd.ActorID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := uow.NotificationRepository().Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !entry.RecipientID().IsEqual(cmd.ActorID()) {
		return errs.NewObjectNotFoundError("notification", cmd.NotificationID())
	}

	if err = entry.MarkRead(); err != nil {
		return err
	}

	if err = uow.NotificationRepository().Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
