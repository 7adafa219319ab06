package ports

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/submission"
)

// SubmissionRepository defines the persistence contract for quality-control
// submissions. Each rework round adds a new submission, so an order keeps its
// full submission history.
type SubmissionRepository interface {
	// Add persists a new submission to storage.
	Add(ctx context.Context, aggregate *submission.Submission) error

	// Update persists changes to an existing submission.
	// Returns a ConflictError when the stored version moved on.
	Update(ctx context.Context, aggregate *submission.Submission) error

	// Get retrieves a submission by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*submission.Submission, error)

	// GetLatestByOrder retrieves the order's most recent submission.
	// Returns an ObjectNotFoundError when nothing was submitted yet.
	GetLatestByOrder(ctx context.Context, orderID kernel.UUID) (*submission.Submission, error)

	// ListByOrder retrieves all submissions of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*submission.Submission, error)
}
