package queries

import (
	"errors"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full view of one order: statuses and codes by
// name, prices, the handling BDE and the assigned writer.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's full view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of one order. Statuses and the
// urgency come back by name, money comes back in cents; optional references
// are nil until the workflow fills them.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	BDEID           *kernel.UUID
	Topic           string
	Subject         string
	Urgency         string
	Deadline        time.Time
	QueryCode       string
	WorkCode        *string
	Status          string
	AssignedWriter  *kernel.UUID
	BasicPrice      int64
	Discount        int64
	TotalPrice      int64
	DeadlineAlerted bool
	Version         int
}
