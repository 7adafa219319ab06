package queries

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrListInterestsByOrderQueryIsNotConstructed = errors.New(
	"ListInterestsByOrderQuery must be created via NewListInterestsByOrderQuery constructor",
)

// ListInterestsByOrderQuery retrieves the recruitment ledger of one order:
// every invited or volunteering writer with their state, verdict and decline
// reason. The admin picks the assignee from this list.
type ListInterestsByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListInterestsByOrderQuery creates a query for an order's interest rows.
func NewListInterestsByOrderQuery(orderID kernel.UUID) (ListInterestsByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListInterestsByOrderQuery{}, err
	}

	return ListInterestsByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListInterestsByOrderQueryIsNotConstructed if validation fails.
func (q ListInterestsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrListInterestsByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose interest rows to fetch.
func (q ListInterestsByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ListInterestsByOrderQueryResponse is one recruitment ledger row. State and
// Verdict come back by name; DeclineReason and VerdictNote are empty unless
// the writer declined or an evaluation was recorded.
type ListInterestsByOrderQueryResponse struct {
	ID            kernel.UUID
	WriterID      kernel.UUID
	State         string
	DeclineReason string
	Verdict       string
	VerdictNote   string
}
