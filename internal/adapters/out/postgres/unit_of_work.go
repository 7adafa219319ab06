// Package postgres implements the unit of work and the per-aggregate
// repositories on GORM. A unit of work wraps one business transaction: the
// handler begins it, the repositories it hands out run their statements on
// the transaction, and the events the handler stages along the way are kept
// in memory until after commit, when the dispatcher fans them out. Staged
// events are never persisted by Commit itself, so a rolled-back transaction
// leaves no trace in the trail or anyone's inbox.
package postgres

import (
	"context"

	"writedesk/internal/adapters/out/postgres/auditrepo"
	"writedesk/internal/adapters/out/postgres/interestrepo"
	"writedesk/internal/adapters/out/postgres/notificationrepo"
	"writedesk/internal/adapters/out/postgres/orderrepo"
	"writedesk/internal/adapters/out/postgres/paymentrepo"
	"writedesk/internal/adapters/out/postgres/quotationrepo"
	"writedesk/internal/adapters/out/postgres/submissionrepo"
	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance so
// concurrent operations stay isolated from each other.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no open transaction and an empty
// event stage.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		staged: make([]audit.Event, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and collects the
// events staged during it. Repositories obtained from it run on the open
// transaction; before Begin or after Commit/Rollback they run directly on
// the connection pool, which is what read-only rounds like the notification
// dispatch rely on.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	staged []audit.Event
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op rather than a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. The
// staged events stay in place: handlers only read them after a successful
// commit, and a rolled-back unit of work is thrown away.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// StageEvent records an event describing a mutation made inside this unit
// of work. Events keep their staging order.
func (uow *GormUnitOfWork) StageEvent(event audit.Event) {
	uow.staged = append(uow.staged, event)
}

// StagedEvents returns the staged events in staging order.
func (uow *GormUnitOfWork) StagedEvents() []audit.Event {
	return uow.staged
}

// conn returns the open transaction, or the connection pool when no
// transaction is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// InterestRepository returns a recruitment ledger repository bound to the
// current transaction.
func (uow *GormUnitOfWork) InterestRepository() ports.InterestRepository {
	return interestrepo.NewGormInterestRepository(uow.conn())
}

// QuotationRepository returns a quotation repository bound to the current
// transaction.
func (uow *GormUnitOfWork) QuotationRepository() ports.QuotationRepository {
	return quotationrepo.NewGormQuotationRepository(uow.conn())
}

// PaymentRepository returns a payment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

// SubmissionRepository returns a submission repository bound to the current
// transaction.
func (uow *GormUnitOfWork) SubmissionRepository() ports.SubmissionRepository {
	return submissionrepo.NewGormSubmissionRepository(uow.conn())
}

// AuditRepository returns a trail repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}

// NotificationRepository returns an inbox repository bound to the current
// transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}
