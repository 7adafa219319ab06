package quotationrepo

import (
	"context"
	"errors"

	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormQuotationRepository implements ports.QuotationRepository using GORM.
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewGormQuotationRepository creates a new GORM quotation repository.
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// Add saves a new quotation to the database. Two handlers quoting the same
// never-quoted order race on the unique order index; the loser gets a
// ConflictError and should reload the now-existing quotation.
func (r *GormQuotationRepository) Add(ctx context.Context, aggregate *billing.Quotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			pgErr.ConstraintName == "uq_quotations_order" {
			return errs.NewConflictError("quotation", aggregate.OrderID().String())
		}
		return err
	}

	return nil
}

// Update saves an existing quotation using a compare-and-swap on the version
// column.
func (r *GormQuotationRepository) Update(ctx context.Context, aggregate *billing.Quotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&QuotationDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("quotation", aggregate.ID().String())
	}

	return nil
}

// GetByOrder retrieves the order's quotation.
func (r *GormQuotationRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Quotation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto QuotationDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quotation", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
