package queries

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler retrieves a recipient's inbox from the
// database. Rows come back newest first so the inbox reads top-down.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for inbox queries.
// Requires a GORM database connection for query execution.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the recipient's notifications.
// An empty inbox yields an empty slice.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]ListNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]ListNotificationsQueryResponse, 0)

	sql := `
		SELECT
			id,
			order_id,
			action,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE recipient_id = ?
	`
	if query.UnreadOnly() {
		sql += ` AND is_read = false`
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var notificationResp ListNotificationsQueryResponse
		var id uuid.UUID
		var orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&notificationResp.Action,
			&notificationResp.Message,
			&notificationResp.IsRead,
			&notificationResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		notificationResp.ID = notificationID

		order, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		notificationResp.OrderID = order

		notifications = append(notifications, notificationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
