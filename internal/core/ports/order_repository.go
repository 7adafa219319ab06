// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, the identity
// provider and the outbound event channels. Interfaces live here so the
// use case layer depends on nothing below it.
package ports

import (
	"context"
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrDuplicateWorkCode is returned when the store rejects an order update
	// because another order already carries the same work code. Callers may
	// regenerate the code and retry.
	ErrDuplicateWorkCode = errs.NewConflictError("work code", "already taken")

	// ErrDuplicateQueryCode is returned when the store rejects a new order
	// because another order already carries the same query code.
	ErrDuplicateQueryCode = errs.NewConflictError("query code", "already taken")
)

// OrderRepository defines the persistence contract for order aggregates.
// Updates are guarded by the aggregate version: a stale write returns a
// ConflictError instead of silently overwriting a concurrent change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns ErrDuplicateQueryCode when the query code is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns a ConflictError when the stored version moved on, or
	// ErrDuplicateWorkCode when the work code is already taken.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListApproachingDeadline retrieves orders that are still being worked,
	// have not been flagged yet, and are due before the given moment. The
	// deadline sweep uses it to find orders that need a warning.
	ListApproachingDeadline(ctx context.Context, before time.Time) ([]*order.Order, error)
}
