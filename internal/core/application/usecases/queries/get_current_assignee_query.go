package queries

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrGetCurrentAssigneeQueryIsNotConstructed = errors.New(
	"GetCurrentAssigneeQuery must be created via NewGetCurrentAssigneeQuery constructor",
)

// GetCurrentAssigneeQuery retrieves the writer currently assigned to an
// order, if any. The recruitment ledger keeps at most one assigned row per
// order, so the answer is a single writer or nobody.
type GetCurrentAssigneeQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentAssigneeQuery creates a query for an order's current assignee.
func NewGetCurrentAssigneeQuery(orderID kernel.UUID) (GetCurrentAssigneeQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCurrentAssigneeQuery{}, err
	}

	return GetCurrentAssigneeQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentAssigneeQueryIsNotConstructed if validation fails.
func (q GetCurrentAssigneeQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentAssigneeQueryIsNotConstructed)
}

// OrderID returns the order whose assignee to fetch.
func (q GetCurrentAssigneeQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetCurrentAssigneeQueryResponse reports the assigned writer. A nil WriterID
// means the order has no assignee right now, which is a normal answer rather
// than an error.
type GetCurrentAssigneeQueryResponse struct {
	WriterID *kernel.UUID
}
