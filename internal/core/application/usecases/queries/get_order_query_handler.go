package queries

import (
	"context"
	"database/sql"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the order detail screen. It reads the row
// directly instead of restoring the aggregate, so corrupt historical rows
// still render.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			bde_id,
			topic,
			subject,
			urgency,
			deadline,
			query_code,
			work_code,
			status,
			assigned_writer,
			basic_price,
			discount,
			total_price,
			deadline_alerted,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var clientID uuid.UUID
	var bdeID uuid.NullUUID
	var urgency int
	var deadline time.Time
	var workCode sql.NullString
	var status int
	var assignedWriter uuid.NullUUID

	err = rows.Scan(
		&id,
		&clientID,
		&bdeID,
		&resp.Topic,
		&resp.Subject,
		&urgency,
		&deadline,
		&resp.QueryCode,
		&workCode,
		&status,
		&assignedWriter,
		&resp.BasicPrice,
		&resp.Discount,
		&resp.TotalPrice,
		&resp.DeadlineAlerted,
		&resp.Version,
	)
	if err != nil {
		return nil, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ID = orderID

	client, idErr := kernel.UUIDFromBytes(clientID[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ClientID = client

	if bdeID.Valid {
		bde, idErr := kernel.UUIDFromBytes(bdeID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BDEID = &bde
	}

	if assignedWriter.Valid {
		writer, idErr := kernel.UUIDFromBytes(assignedWriter.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.AssignedWriter = &writer
	}

	if workCode.Valid {
		resp.WorkCode = &workCode.String
	}

	resp.Urgency = order.Urgency(urgency).String()
	resp.Deadline = deadline
	resp.Status = order.Status(status).String()

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &resp, nil
}
