package ports

import (
	"context"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/notification"
)

// EventPublisher announces committed workflow events to the message broker
// so downstream consumers (reporting, search, billing exports) stay current.
// Publishing happens after commit and is best effort: a broker outage must
// not fail the command that already committed.
type EventPublisher interface {
	// PublishOrderEvent publishes one committed workflow event.
	PublishOrderEvent(ctx context.Context, event audit.Event) error
}

// NotificationGateway hands an inbox row to the external delivery channel
// (push, email, whatever the gateway speaks). The dispatch job calls it
// outside any database transaction.
type NotificationGateway interface {
	// Deliver sends one notification to its recipient.
	Deliver(ctx context.Context, n *notification.Notification) error
}
