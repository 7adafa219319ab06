// Package notificationrepo persists inbox rows. The rows are the source of
// truth for "was the user informed": the dispatch job reads the unpushed
// ones, hands them to the gateway and stamps pushed_at, while recipients
// flip is_read through their inbox.
package notificationrepo

import (
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database row behind a notification. The partial
// index on pushed_at keeps the dispatch job's scan cheap once the backlog
// is mostly pushed.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Action      string
	Message     string
	IsRead      bool
	PushedAt    *time.Time
	CreatedAt   time.Time
	Version     int
}

// TableName specifies the database table name for notification rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Action:      aggregate.Action(),
		Message:     aggregate.Message(),
		IsRead:      aggregate.IsRead(),
		PushedAt:    aggregate.PushedAt(),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database row back to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		recipientID,
		orderID,
		dto.Action,
		dto.Message,
		dto.IsRead,
		dto.PushedAt,
		dto.CreatedAt,
		dto.Version,
	)
}
