// Package quotationrepo persists quotations. An order has at most one
// quotation row; re-quoting revises it in place, and the unique index on the
// order reference settles racing first quotes.
package quotationrepo

import (
	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// QuotationDTO is the database row behind a quotation aggregate. Amounts are
// stored as integer cents.
type QuotationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_quotations_order"`
	BasePrice     int64
	Discount      int64
	UrgencyCharge int64
	Tax           int64
	FinalPrice    int64
	Notes         string
	Version       int
}

// TableName specifies the database table name for quotation rows.
func (QuotationDTO) TableName() string {
	return "quotations"
}

// fromDomain converts a quotation aggregate to its database representation.
func fromDomain(aggregate *billing.Quotation) QuotationDTO {
	return QuotationDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		BasePrice:     aggregate.BasePrice().Cents(),
		Discount:      aggregate.Discount().Cents(),
		UrgencyCharge: aggregate.UrgencyCharge().Cents(),
		Tax:           aggregate.Tax().Cents(),
		FinalPrice:    aggregate.FinalPrice().Cents(),
		Notes:         aggregate.Notes(),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database row back to a quotation aggregate.
func toDomain(dto QuotationDTO) (*billing.Quotation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	basePrice, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	urgencyCharge, err := kernel.NewMoney(dto.UrgencyCharge)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}

	finalPrice, err := kernel.NewMoney(dto.FinalPrice)
	if err != nil {
		return nil, err
	}

	return billing.RestoreQuotation(
		id,
		orderID,
		basePrice,
		discount,
		urgencyCharge,
		tax,
		finalPrice,
		dto.Notes,
		dto.Version,
	)
}
