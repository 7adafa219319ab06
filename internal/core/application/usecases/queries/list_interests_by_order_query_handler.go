package queries

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListInterestsByOrderQueryHandler retrieves the recruitment ledger of an
// order from the database.
//
// Example:
//
//	handler := NewListInterestsByOrderQueryHandler(db)
//	query, err := NewListInterestsByOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	interests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list interests: %v", err)
//	    return err
//	}
type ListInterestsByOrderQueryHandler struct {
	db *gorm.DB
}

// NewListInterestsByOrderQueryHandler creates a handler for interest list
// queries. Requires a GORM database connection for query execution.
func NewListInterestsByOrderQueryHandler(db *gorm.DB) ListInterestsByOrderQueryHandler {
	return ListInterestsByOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve all interest rows of one order.
// An order nobody was invited to yields an empty slice.
// Results are sorted by row ID for consistent output.
func (h ListInterestsByOrderQueryHandler) Handle(
	ctx context.Context,
	query ListInterestsByOrderQuery,
) ([]ListInterestsByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	interests := make([]ListInterestsByOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			writer_id,
			state,
			decline_reason,
			verdict,
			verdict_note
		FROM writer_interests
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var interestResp ListInterestsByOrderQueryResponse
		var id uuid.UUID
		var writerID uuid.UUID
		var state int
		var verdict int

		err = rows.Scan(
			&id,
			&writerID,
			&state,
			&interestResp.DeclineReason,
			&verdict,
			&interestResp.VerdictNote,
		)
		if err != nil {
			return nil, err
		}

		interestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		interestResp.ID = interestID

		writer, idErr := kernel.UUIDFromBytes(writerID[:])
		if idErr != nil {
			return nil, idErr
		}
		interestResp.WriterID = writer

		interestResp.State = recruitment.State(state).String()
		interestResp.Verdict = recruitment.Verdict(verdict).String()

		interests = append(interests, interestResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return interests, nil
}
