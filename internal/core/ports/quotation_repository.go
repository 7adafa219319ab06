package ports

import (
	"context"

	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
)

// QuotationRepository defines the persistence contract for quotations.
// An order has at most one quotation; re-quoting revises it in place.
type QuotationRepository interface {
	// Add persists a new quotation to storage.
	Add(ctx context.Context, aggregate *billing.Quotation) error

	// Update persists changes to an existing quotation.
	// Returns a ConflictError when the stored version moved on.
	Update(ctx context.Context, aggregate *billing.Quotation) error

	// GetByOrder retrieves the order's quotation.
	// Returns an ObjectNotFoundError when the order was never quoted.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Quotation, error)
}
