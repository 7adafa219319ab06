// Package auditrepo persists the workflow trail. The table is append-only:
// rows are written once by the dispatcher after a commit and never updated
// or deleted, so the package exposes only Add. Reporting reads the table
// directly with its own queries.
package auditrepo

import (
	"time"

	"writedesk/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO is the database row behind a trail entry. The actor reference is
// nullable because system events carry no actor; the role column still says
// who acted, human or job.
type EntryDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ActorID      *uuid.UUID `gorm:"type:uuid"`
	ActorRole    string
	Action       string
	ResourceType string
	ResourceID   uuid.UUID `gorm:"type:uuid"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Before       string
	After        string
	Message      string
	CreatedAt    time.Time
}

// TableName specifies the database table name for trail rows.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts a trail entry to its database representation. There is
// no inverse: entries are never read back into the domain.
func fromDomain(entry *audit.Entry) EntryDTO {
	event := entry.Event()

	var actorID *uuid.UUID
	if !event.IsSystem() {
		raw := event.ActorID().Bytes()
		actorID = &raw
	}

	return EntryDTO{
		ID:           entry.ID().Bytes(),
		ActorID:      actorID,
		ActorRole:    event.ActorRole().String(),
		Action:       event.Action().String(),
		ResourceType: event.ResourceType().String(),
		ResourceID:   event.ResourceID().Bytes(),
		OrderID:      event.OrderID().Bytes(),
		Before:       event.Before(),
		After:        event.After(),
		Message:      event.Message(),
		CreatedAt:    entry.At(),
	}
}
