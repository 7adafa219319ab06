package queries

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderAccessQueryHandler resolves the parties of one order for the chat
// transport. Only the orders table is consulted; the assigned writer column
// is maintained by the recruitment workflow.
type GetOrderAccessQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAccessQueryHandler creates a handler for access tuple queries.
// Requires a GORM database connection for query execution.
func NewGetOrderAccessQueryHandler(db *gorm.DB) GetOrderAccessQueryHandler {
	return GetOrderAccessQueryHandler{db: db}
}

// Handle executes the query for one order's access tuple.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderAccessQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAccessQuery,
) (*GetOrderAccessQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			client_id,
			assigned_writer,
			bde_id
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

	var clientID uuid.UUID
	var writerID uuid.NullUUID
	var bdeID uuid.NullUUID

	err = rows.Scan(&clientID, &writerID, &bdeID)
	if err != nil {
		return nil, err
	}

	var resp GetOrderAccessQueryResponse

	client, idErr := kernel.UUIDFromBytes(clientID[:])
	if idErr != nil {
		return nil, idErr
	}
	resp.ClientID = client

	if writerID.Valid {
		writer, idErr := kernel.UUIDFromBytes(writerID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.WriterID = &writer
	}

	if bdeID.Valid {
		bde, idErr := kernel.UUIDFromBytes(bdeID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BDEID = &bde
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &resp, nil
}
