package ports

import (
	"context"

	"writedesk/internal/core/domain/model/audit"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control, hands out repositories bound to the
// current transaction, and collects the events a handler stages along the
// way. Client code must explicitly manage the transaction lifecycle.
//
// Staged events are not persisted by Commit. The handler passes them to the
// event dispatcher strictly after a successful commit, so the trail and the
// notifications never describe a change that was rolled back.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// StageEvent records an event describing a mutation made inside this
	// unit of work.
	StageEvent(event audit.Event)

	// StagedEvents returns the staged events in staging order.
	StagedEvents() []audit.Event

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// InterestRepository returns an InterestRepository bound to the current transaction.
	InterestRepository() InterestRepository

	// QuotationRepository returns a QuotationRepository bound to the current transaction.
	QuotationRepository() QuotationRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// SubmissionRepository returns a SubmissionRepository bound to the current transaction.
	SubmissionRepository() SubmissionRepository

	// AuditRepository returns an AuditRepository bound to the current transaction.
	AuditRepository() AuditRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository
}
