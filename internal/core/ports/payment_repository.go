package ports

import (
	"context"

	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
)

// PaymentRepository defines the persistence contract for payment records.
// An order can accumulate several payments over its life.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, aggregate *billing.Payment) error

	// Update persists changes to an existing payment record.
	// Returns a ConflictError when the stored version moved on.
	Update(ctx context.Context, aggregate *billing.Payment) error

	// Get retrieves a payment record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*billing.Payment, error)

	// ListByOrder retrieves all payment records of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*billing.Payment, error)
}
