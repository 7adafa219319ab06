package ports

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for inbox rows.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	// Returns a ConflictError when the stored version moved on, which is how
	// two racing dispatchers settle who pushed a row.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// ListUnpushed retrieves notifications not yet handed to the delivery
	// gateway, oldest first, capped at limit.
	ListUnpushed(ctx context.Context, limit int) ([]*notification.Notification, error)
}
