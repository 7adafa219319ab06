package ports

import (
	"context"

	"writedesk/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the trail.
// The trail is append-only: entries are never updated or read back into the
// domain, so Add is the whole contract. Reporting reads the table directly.
type AuditRepository interface {
	// Add persists a new trail entry to storage.
	Add(ctx context.Context, entry *audit.Entry) error
}
