// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, actor resolution,
// transaction management, persistence, and post-commit event dispatch.
package commands

import (
	"context"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition that covers the
// aggregates it touches, so tests and the composition root can satisfy it
// with the single postgres unit of work.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventStager collects the events a handler raises during a transaction.
	// Staged events are handed to the EventDispatcher after commit.
	EventStager interface {
		StageEvent(event audit.Event)
		StagedEvents() []audit.Event
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InterestRepoFactory provides access to the recruitment ledger within a transaction.
	InterestRepoFactory interface {
		InterestRepository() ports.InterestRepository
	}

	// QuotationRepoFactory provides access to the quotation repository within a transaction.
	QuotationRepoFactory interface {
		QuotationRepository() ports.QuotationRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// SubmissionRepoFactory provides access to the submission repository within a transaction.
	SubmissionRepoFactory interface {
		SubmissionRepository() ports.SubmissionRepository
	}

	// NotificationRepoFactory provides access to the inbox repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations: placing,
	// accepting, delivering, completing, cancelling and the deadline sweep.
	OrderUoW interface {
		TxManager
		EventStager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// QuotationUoW manages transactions that touch an order and its quotation.
	QuotationUoW interface {
		TxManager
		EventStager
		OrderRepoFactory
		QuotationRepoFactory
	}

	// QuotationUoWFactory creates new quotation unit of work instances.
	QuotationUoWFactory interface {
		Create() QuotationUoW
	}

	// PaymentUoW manages transactions that touch an order and its payments.
	PaymentUoW interface {
		TxManager
		EventStager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// RecruitmentUoW manages transactions that touch an order and its
	// recruitment ledger: inviting, responding, assigning, revoking and
	// evaluating.
	RecruitmentUoW interface {
		TxManager
		EventStager
		OrderRepoFactory
		InterestRepoFactory
	}

	// RecruitmentUoWFactory creates new recruitment unit of work instances.
	RecruitmentUoWFactory interface {
		Create() RecruitmentUoW
	}

	// QCUoW manages transactions that touch an order and its submissions:
	// submitting work, approving it and sending it back.
	QCUoW interface {
		TxManager
		EventStager
		OrderRepoFactory
		SubmissionRepoFactory
	}

	// QCUoWFactory creates new quality-control unit of work instances.
	QCUoWFactory interface {
		Create() QCUoW
	}

	// NotificationUoW manages inbox-only operations. No events are staged:
	// inbox bookkeeping is not part of the workflow trail.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
