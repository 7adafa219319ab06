package interestrepo

import (
	"context"
	"errors"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormInterestRepository implements ports.InterestRepository using GORM.
type GormInterestRepository struct {
	db *gorm.DB
}

// NewGormInterestRepository creates a new GORM interest repository.
func NewGormInterestRepository(db *gorm.DB) *GormInterestRepository {
	return &GormInterestRepository{db: db}
}

// Add saves a new interest row to the database.
// Returns ports.ErrDuplicateInterest when the (order, writer) pair already
// has a row, or ports.ErrDuplicateAssignment when the row is Assigned and
// another row of the order already is.
func (r *GormInterestRepository) Add(ctx context.Context, aggregate *recruitment.WriterInterest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err)
	}

	return nil
}

// Update saves an existing interest row using a compare-and-swap on the
// version column. Promoting a row to Assigned while another row of the same
// order already is comes back as ports.ErrDuplicateAssignment; the partial
// unique index settles racing assignments.
func (r *GormInterestRepository) Update(ctx context.Context, aggregate *recruitment.WriterInterest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&InterestDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return translateUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("writer interest", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an interest row by ID.
func (r *GormInterestRepository) Get(ctx context.Context, id kernel.UUID) (*recruitment.WriterInterest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InterestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("writer interest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderAndWriter retrieves the row for an (order, writer) pair.
func (r *GormInterestRepository) GetByOrderAndWriter(
	ctx context.Context,
	orderID kernel.UUID,
	writerID kernel.UUID,
) (*recruitment.WriterInterest, error) {
	if err := errors.Join(orderID.Validate(), writerID.Validate()); err != nil {
		return nil, err
	}

	var dto InterestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND writer_id = ?", orderID.Bytes(), writerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("writer interest",
				orderID.String()+"/"+writerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder retrieves all interest rows of an order.
func (r *GormInterestRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*recruitment.WriterInterest, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []InterestDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	interests := make([]*recruitment.WriterInterest, 0, len(dtos))
	for _, dto := range dtos {
		interest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		interests = append(interests, interest)
	}

	return interests, nil
}

// GetAssignedByOrder retrieves the order's single Assigned row.
func (r *GormInterestRepository) GetAssignedByOrder(ctx context.Context, orderID kernel.UUID) (*recruitment.WriterInterest, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto InterestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND state = ?", orderID.Bytes(), recruitment.StateAssigned).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assigned writer", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// translateUniqueViolation maps the two unique indexes on the interest table
// to their port sentinels. Everything else passes through untouched.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "uq_interests_order_writer":
		return ports.ErrDuplicateInterest
	case "uq_interests_one_assigned":
		return ports.ErrDuplicateAssignment
	default:
		return err
	}
}
