// Package paymentrepo persists payment records. An order can accumulate
// several payments over its life; the insertion timestamp keeps them in
// reporting order.
package paymentrepo

import (
	"time"

	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PaymentDTO is the database row behind a payment aggregate. CreatedAt is
// database bookkeeping only: GORM fills it on insert and ListByOrder sorts
// by it, the domain model never sees it.
type PaymentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	Amount          int64
	State           int
	VerifiedPercent int
	RejectReason    string
	CreatedAt       time.Time
	Version         int
}

// TableName specifies the database table name for payment rows.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(aggregate *billing.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		Amount:          aggregate.Amount().Cents(),
		State:           int(aggregate.State()),
		VerifiedPercent: aggregate.VerifiedPercent(),
		RejectReason:    aggregate.RejectReason(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database row back to a payment aggregate.
func toDomain(dto PaymentDTO) (*billing.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return billing.RestorePayment(
		id,
		orderID,
		amount,
		billing.PaymentState(dto.State),
		dto.VerifiedPercent,
		dto.RejectReason,
		dto.Version,
	)
}
