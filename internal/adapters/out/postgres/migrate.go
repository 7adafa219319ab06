package postgres

import (
	"fmt"

	"writedesk/internal/adapters/out/postgres/auditrepo"
	"writedesk/internal/adapters/out/postgres/interestrepo"
	"writedesk/internal/adapters/out/postgres/notificationrepo"
	"writedesk/internal/adapters/out/postgres/orderrepo"
	"writedesk/internal/adapters/out/postgres/paymentrepo"
	"writedesk/internal/adapters/out/postgres/quotationrepo"
	"writedesk/internal/adapters/out/postgres/submissionrepo"
	"writedesk/internal/core/domain/model/recruitment"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every aggregate the service
// persists. AutoMigrate covers the tables and plain indexes declared on the
// DTOs; the partial indexes need a WHERE clause that GORM tags cannot
// express, so they are created with raw SQL afterwards.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&interestrepo.InterestDTO{},
		&quotationrepo.QuotationDTO{},
		&paymentrepo.PaymentDTO{},
		&submissionrepo.SubmissionDTO{},
		&auditrepo.EntryDTO{},
		&notificationrepo.NotificationDTO{},
	); err != nil {
		return err
	}

	statements := []string{
		// Issued work codes are unique across the order book; orders that
		// have not reached the payment gate yet stay out of the index.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_orders_work_code
			ON orders (work_code) WHERE work_code IS NOT NULL`,

		// At most one Assigned row per order. Racing assignments both pass
		// the in-transaction checks; the second insert or promotion fails here.
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS uq_interests_one_assigned
			ON writer_interests (order_id) WHERE state = %d`, recruitment.StateAssigned),

		// The dispatch job scans only unpushed rows, so index only those.
		`CREATE INDEX IF NOT EXISTS idx_notifications_unpushed
			ON notifications (created_at) WHERE pushed_at IS NULL`,
	}

	for _, statement := range statements {
		if err := db.Exec(statement).Error; err != nil {
			return err
		}
	}

	return nil
}
