package submissionrepo

import (
	"context"
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/submission"
	"writedesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSubmissionRepository implements ports.SubmissionRepository using GORM.
type GormSubmissionRepository struct {
	db *gorm.DB
}

// NewGormSubmissionRepository creates a new GORM submission repository.
func NewGormSubmissionRepository(db *gorm.DB) *GormSubmissionRepository {
	return &GormSubmissionRepository{db: db}
}

// Add saves a new submission to the database.
func (r *GormSubmissionRepository) Add(ctx context.Context, aggregate *submission.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing submission using a compare-and-swap on the
// version column.
func (r *GormSubmissionRepository) Update(ctx context.Context, aggregate *submission.Submission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&SubmissionDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("submission", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a submission by ID.
func (r *GormSubmissionRepository) Get(ctx context.Context, id kernel.UUID) (*submission.Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubmissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByOrder retrieves the order's most recent submission. Only the
// latest row drives the order-level review flow; older rows are history.
func (r *GormSubmissionRepository) GetLatestByOrder(ctx context.Context, orderID kernel.UUID) (*submission.Submission, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SubmissionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("submission", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder retrieves all submissions of an order, oldest first.
func (r *GormSubmissionRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*submission.Submission, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SubmissionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	submissions := make([]*submission.Submission, 0, len(dtos))
	for _, dto := range dtos {
		sub, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}

	return submissions, nil
}
