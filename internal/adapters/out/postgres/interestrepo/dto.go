// Package interestrepo persists the writer recruitment ledger. The table
// carries two uniqueness rules the domain relies on: one row per
// (order, writer) pair, and at most one Assigned row per order. The first is
// a composite unique index declared here; the second is a partial unique
// index created in the migrations.
package interestrepo

import (
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"

	"github.com/google/uuid"
)

// InterestDTO is the database row behind a writer interest aggregate.
type InterestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_interests_order_writer"`
	WriterID      uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_interests_order_writer"`
	State         int       `gorm:"index"`
	DeclineReason string
	Verdict       int
	VerdictNote   string
	Version       int
}

// TableName specifies the database table name for interest rows.
func (InterestDTO) TableName() string {
	return "writer_interests"
}

// fromDomain converts a writer interest aggregate to its database
// representation.
func fromDomain(aggregate *recruitment.WriterInterest) InterestDTO {
	return InterestDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		WriterID:      aggregate.WriterID().Bytes(),
		State:         int(aggregate.State()),
		DeclineReason: aggregate.DeclineReason(),
		Verdict:       int(aggregate.Verdict()),
		VerdictNote:   aggregate.VerdictNote(),
		Version:       aggregate.Version(),
	}
}

// toDomain converts a database row back to a writer interest aggregate.
func toDomain(dto InterestDTO) (*recruitment.WriterInterest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	writerID, err := kernel.UUIDFromBytes(dto.WriterID[:])
	if err != nil {
		return nil, err
	}

	return recruitment.RestoreWriterInterest(
		id,
		orderID,
		writerID,
		recruitment.State(dto.State),
		dto.DeclineReason,
		recruitment.Verdict(dto.Verdict),
		dto.VerdictNote,
		dto.Version,
	)
}
