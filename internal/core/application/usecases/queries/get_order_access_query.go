package queries

import (
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrGetOrderAccessQueryIsNotConstructed = errors.New(
	"GetOrderAccessQuery must be created via NewGetOrderAccessQuery constructor",
)

// GetOrderAccessQuery retrieves the access tuple of one order: who the client
// is, which BDE handles the order and which writer is assigned. The chat
// transport authorizes conversation participants against this tuple.
type GetOrderAccessQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderAccessQuery creates a query for one order's access tuple.
func NewGetOrderAccessQuery(orderID kernel.UUID) (GetOrderAccessQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderAccessQuery{}, err
	}

	return GetOrderAccessQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderAccessQueryIsNotConstructed if validation fails.
func (q GetOrderAccessQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAccessQueryIsNotConstructed)
}

// OrderID returns the order whose access tuple to fetch.
func (q GetOrderAccessQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderAccessQueryResponse names the parties allowed into the order's
// conversation. WriterID and BDEID stay nil until the workflow fills the
// corresponding role.
type GetOrderAccessQueryResponse struct {
	ClientID kernel.UUID
	WriterID *kernel.UUID
	BDEID    *kernel.UUID
}
