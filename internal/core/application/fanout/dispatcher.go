// Package fanout turns committed workflow events into their downstream
// traces: a trail entry, inbox rows for the named recipients and a broker
// publish. Handlers call it strictly after commit, so everything fanned out
// describes state that actually exists. Nothing here may fail the caller;
// every problem is logged and swallowed, and the pieces are independent so
// a dead broker still leaves the trail and the inboxes written.
package fanout

import (
	"context"
	"log/slog"
	"time"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/notification"
	"writedesk/internal/core/ports"
)

// Dispatcher fans committed workflow events out to the trail, the recipient
// inboxes and the message broker. It implements the dispatcher contract the
// command handlers depend on.
type Dispatcher struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDispatcher creates a dispatcher writing through the given unit of work
// factory and publishing through the given broker adapter.
func NewDispatcher(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) Dispatcher {
	return Dispatcher{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "fanout"),
	}
}

// Dispatch fans out each event in order. The unit of work is used without a
// transaction: the trail entry and every inbox row are independent inserts,
// so one failed piece never takes the others down with it. Dispatch never
// reports failure to the caller; the command already committed.
func (d Dispatcher) Dispatch(ctx context.Context, events ...audit.Event) {
	for _, event := range events {
		uow := d.uowFactory.Create()

		d.record(ctx, uow, event)
		d.notify(ctx, uow, event)
		d.publish(ctx, event)
	}
}

// record appends the event to the trail.
func (d Dispatcher) record(ctx context.Context, uow ports.UnitOfWork, event audit.Event) {
	entry, err := audit.NewEntry(kernel.NewUUID(), event, time.Now())
	if err != nil {
		d.logger.ErrorContext(ctx, "Trail entry construction failed",
			"action", string(event.Action()), "order_id", event.OrderID().String(), "error", err)
		return
	}

	if err := uow.AuditRepository().Add(ctx, entry); err != nil {
		d.logger.ErrorContext(ctx, "Trail entry write failed",
			"action", string(event.Action()), "order_id", event.OrderID().String(), "error", err)
	}
}

// notify writes one inbox row per recipient. A recipient without a message
// of their own gets the event message.
func (d Dispatcher) notify(ctx context.Context, uow ports.UnitOfWork, event audit.Event) {
	for _, recipient := range event.Recipients() {
		message := recipient.Message()
		if message == "" {
			message = event.Message()
		}

		entry, err := notification.NewNotification(
			kernel.NewUUID(),
			recipient.ID(),
			event.OrderID(),
			string(event.Action()),
			message,
		)
		if err != nil {
			d.logger.ErrorContext(ctx, "Notification construction failed",
				"action", string(event.Action()), "recipient_id", recipient.ID().String(), "error", err)
			continue
		}

		if err := uow.NotificationRepository().Add(ctx, entry); err != nil {
			d.logger.ErrorContext(ctx, "Notification write failed",
				"action", string(event.Action()), "recipient_id", recipient.ID().String(), "error", err)
		}
	}
}

// publish hands the event to the broker for real-time consumers. The
// persisted rows stay the source of truth; a lost publish costs immediacy,
// not information.
func (d Dispatcher) publish(ctx context.Context, event audit.Event) {
	if err := d.publisher.PublishOrderEvent(ctx, event); err != nil {
		d.logger.ErrorContext(ctx, "Event publish failed",
			"action", string(event.Action()), "order_id", event.OrderID().String(), "error", err)
	}
}
