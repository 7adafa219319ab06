// Package submissionrepo persists quality-control submissions. Each rework
// round adds a new row, so the table keeps an order's full submission
// history; the creation timestamp decides which row is the latest.
package submissionrepo

import (
	"time"

	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/submission"

	"github.com/google/uuid"
)

// SubmissionDTO is the database row behind a submission aggregate.
type SubmissionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	WriterID   uuid.UUID `gorm:"type:uuid"`
	FileRef    string
	Note       string
	State      int
	ReviewNote string
	CreatedAt  time.Time `gorm:"index"`
	Version    int
}

// TableName specifies the database table name for submission rows.
func (SubmissionDTO) TableName() string {
	return "submissions"
}

// fromDomain converts a submission aggregate to its database representation.
func fromDomain(aggregate *submission.Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		WriterID:   aggregate.WriterID().Bytes(),
		FileRef:    aggregate.FileRef(),
		Note:       aggregate.Note(),
		State:      int(aggregate.State()),
		ReviewNote: aggregate.ReviewNote(),
		CreatedAt:  aggregate.CreatedAt(),
		Version:    aggregate.Version(),
	}
}

// toDomain converts a database row back to a submission aggregate.
func toDomain(dto SubmissionDTO) (*submission.Submission, error) {
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

	return submission.RestoreSubmission(
		id,
		orderID,
		writerID,
		dto.FileRef,
		dto.Note,
		submission.QCState(dto.State),
		dto.ReviewNote,
		dto.CreatedAt,
		dto.Version,
	)
}
