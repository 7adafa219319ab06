package queries

import (
	"errors"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves one recipient's inbox, newest first.
// With unreadOnly set, rows already marked read are filtered out.
type ListNotificationsQuery struct {
	recipientID kernel.UUID
	unreadOnly  bool

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a query for a recipient's inbox.
func NewListNotificationsQuery(recipientID kernel.UUID, unreadOnly bool) (ListNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}

	return ListNotificationsQuery{
		recipientID: recipientID,
		unreadOnly:  unreadOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListNotificationsQueryIsNotConstructed if validation fails.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// RecipientID returns the inbox owner.
func (q ListNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// UnreadOnly reports whether read rows are filtered out.
func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// ListNotificationsQueryResponse is one inbox row.
type ListNotificationsQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Action    string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
