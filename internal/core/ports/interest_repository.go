package ports

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/pkg/errs"
)

var (
	// ErrDuplicateInterest is returned when the store rejects a new interest
	// row because the (order, writer) pair already has one.
	ErrDuplicateInterest = errs.NewConflictError("writer interest", "pair already exists")

	// ErrDuplicateAssignment is returned when the store rejects an update
	// because another row of the same order is already Assigned. The one
	// assigned writer rule is enforced by the store, so two racing
	// assignments cannot both land.
	ErrDuplicateAssignment = errs.NewConflictError("writer interest", "order already has an assigned writer")
)

// InterestRepository defines the persistence contract for the recruitment
// ledger. The store enforces two uniqueness rules: one row per
// (order, writer) pair, and at most one Assigned row per order.
type InterestRepository interface {
	// Add persists a new interest row to storage.
	// Returns ErrDuplicateInterest when the pair already has a row, or
	// ErrDuplicateAssignment when the row is Assigned and the order already
	// has an assigned writer.
	Add(ctx context.Context, aggregate *recruitment.WriterInterest) error

	// Update persists changes to an existing interest row.
	// Returns a ConflictError when the stored version moved on, or
	// ErrDuplicateAssignment when promoting the row would give the order a
	// second assigned writer.
	Update(ctx context.Context, aggregate *recruitment.WriterInterest) error

	// Get retrieves an interest row by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recruitment.WriterInterest, error)

	// GetByOrderAndWriter retrieves the row for an (order, writer) pair.
	GetByOrderAndWriter(ctx context.Context, orderID kernel.UUID, writerID kernel.UUID) (*recruitment.WriterInterest, error)

	// ListByOrder retrieves all interest rows of an order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*recruitment.WriterInterest, error)

	// GetAssignedByOrder retrieves the order's single Assigned row.
	// Returns an ObjectNotFoundError when no writer is assigned.
	GetAssignedByOrder(ctx context.Context, orderID kernel.UUID) (*recruitment.WriterInterest, error)
}
