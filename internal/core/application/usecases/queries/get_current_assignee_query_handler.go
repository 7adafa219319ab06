package queries

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentAssigneeQueryHandler reads the recruitment ledger for the single
// assigned writer of an order.
type GetCurrentAssigneeQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentAssigneeQueryHandler creates a handler for assignee queries.
// Requires a GORM database connection for query execution.
func NewGetCurrentAssigneeQueryHandler(db *gorm.DB) GetCurrentAssigneeQueryHandler {
	return GetCurrentAssigneeQueryHandler{db: db}
}

// Handle executes the query for an order's current assignee.
// An order without an assigned writer yields a response with a nil WriterID.
func (h GetCurrentAssigneeQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentAssigneeQuery,
) (GetCurrentAssigneeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentAssigneeQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT writer_id
		FROM writer_interests
		WHERE order_id = ? AND state = ?
	`, query.OrderID().Bytes(), recruitment.StateAssigned).Rows()
	if err != nil {
		return GetCurrentAssigneeQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetCurrentAssigneeQueryResponse

	if rows.Next() {
		var writerID uuid.UUID
		if err = rows.Scan(&writerID); err != nil {
			return GetCurrentAssigneeQueryResponse{}, err
		}

		writer, idErr := kernel.UUIDFromBytes(writerID[:])
		if idErr != nil {
			return GetCurrentAssigneeQueryResponse{}, idErr
		}
		resp.WriterID = &writer
	}

	if err = rows.Err(); err != nil {
		return GetCurrentAssigneeQueryResponse{}, err
	}

	return resp, nil
}
