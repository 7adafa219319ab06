package cmd

import (
	"log/slog"
	"time"

	httpadapter "writedesk/internal/adapters/in/http"
	"writedesk/internal/adapters/out/identity"
	"writedesk/internal/adapters/out/kafka"
	"writedesk/internal/adapters/out/postgres"
	"writedesk/internal/core/application/fanout"
	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/application/usecases/queries"
	"writedesk/internal/core/ports"
	"writedesk/internal/jobs"

	"gorm.io/gorm"
)

// deadlineSweepWindow is how far ahead the deadline watch warns participants.
const deadlineSweepWindow = 24 * time.Hour

// notificationDispatchLimit caps one push round over the inbox.
const notificationDispatchLimit = 100

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	identity   ports.IdentityProvider
	gateway    ports.NotificationGateway
	dispatcher commands.EventDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, producer *kafka.Producer, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
		identity:   identity.NewClient(configs.IdentityServiceURL),
		gateway:    producer,
		dispatcher: fanout.NewDispatcher(uowFactory, producer, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateQuoteOrderCommandHandler() commands.QuoteOrderCommandHandler {
	return commands.NewQuoteOrderCommandHandler(c.quotationUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateAcceptQuotationCommandHandler() commands.AcceptQuotationCommandHandler {
	return commands.NewAcceptQuotationCommandHandler(c.orderUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.paymentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	return commands.NewVerifyPaymentCommandHandler(c.paymentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateRejectPaymentCommandHandler() commands.RejectPaymentCommandHandler {
	return commands.NewRejectPaymentCommandHandler(c.paymentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateInviteWritersCommandHandler() commands.InviteWritersCommandHandler {
	return commands.NewInviteWritersCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateShowInterestCommandHandler() commands.ShowInterestCommandHandler {
	return commands.NewShowInterestCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateDeclineInvitationCommandHandler() commands.DeclineInvitationCommandHandler {
	return commands.NewDeclineInvitationCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateEvaluateTaskCommandHandler() commands.EvaluateTaskCommandHandler {
	return commands.NewEvaluateTaskCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateAssignWriterCommandHandler() commands.AssignWriterCommandHandler {
	return commands.NewAssignWriterCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateReassignWriterCommandHandler() commands.ReassignWriterCommandHandler {
	return commands.NewReassignWriterCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateRevokeWriterCommandHandler() commands.RevokeWriterCommandHandler {
	return commands.NewRevokeWriterCommandHandler(c.recruitmentUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateSubmitWorkCommandHandler() commands.SubmitWorkCommandHandler {
	return commands.NewSubmitWorkCommandHandler(c.qcUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateApproveSubmissionCommandHandler() commands.ApproveSubmissionCommandHandler {
	return commands.NewApproveSubmissionCommandHandler(c.qcUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateRequestRevisionCommandHandler() commands.RequestRevisionCommandHandler {
	return commands.NewRequestRevisionCommandHandler(c.qcUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.qcUoWFactory(), c.identity, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory(), c.identity)
}

func (c *CompositionRoot) CreateSweepDeadlinesCommandHandler() commands.SweepDeadlinesCommandHandler {
	return commands.NewSweepDeadlinesCommandHandler(c.orderUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(c.notificationUoWFactory(), c.gateway, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAccessQueryHandler() queries.GetOrderAccessQueryHandler {
	return queries.NewGetOrderAccessQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentAssigneeQueryHandler() queries.GetCurrentAssigneeQueryHandler {
	return queries.NewGetCurrentAssigneeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInterestsByOrderQueryHandler() queries.ListInterestsByOrderQueryHandler {
	return queries.NewListInterestsByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		QuoteOrder:           c.CreateQuoteOrderCommandHandler(),
		AcceptQuotation:      c.CreateAcceptQuotationCommandHandler(),
		RecordPayment:        c.CreateRecordPaymentCommandHandler(),
		VerifyPayment:        c.CreateVerifyPaymentCommandHandler(),
		RejectPayment:        c.CreateRejectPaymentCommandHandler(),
		InviteWriters:        c.CreateInviteWritersCommandHandler(),
		ShowInterest:         c.CreateShowInterestCommandHandler(),
		DeclineInvitation:    c.CreateDeclineInvitationCommandHandler(),
		EvaluateTask:         c.CreateEvaluateTaskCommandHandler(),
		AssignWriter:         c.CreateAssignWriterCommandHandler(),
		ReassignWriter:       c.CreateReassignWriterCommandHandler(),
		RevokeWriter:         c.CreateRevokeWriterCommandHandler(),
		SubmitWork:           c.CreateSubmitWorkCommandHandler(),
		ApproveSubmission:    c.CreateApproveSubmissionCommandHandler(),
		RequestRevision:      c.CreateRequestRevisionCommandHandler(),
		DeliverOrder:         c.CreateDeliverOrderCommandHandler(),
		CompleteOrder:        c.CreateCompleteOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),

		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderAccess:     c.CreateGetOrderAccessQueryHandler(),
		GetCurrentAssignee: c.CreateGetCurrentAssigneeQueryHandler(),
		ListInterests:      c.CreateListInterestsByOrderQueryHandler(),
		ListNotifications:  c.CreateListNotificationsQueryHandler(),
	}
}

// CreateJobManager wires the scheduled jobs with their handlers.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepDeadlinesCommandHandler(),
		c.CreateDispatchNotificationsCommandHandler(),
		deadlineSweepWindow,
		notificationDispatchLimit,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) quotationUoWFactory() commands.QuotationUoWFactory {
	return FuncQuotationUoWFactory(func() commands.QuotationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) recruitmentUoWFactory() commands.RecruitmentUoWFactory {
	return FuncRecruitmentUoWFactory(func() commands.RecruitmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) qcUoWFactory() commands.QCUoWFactory {
	return FuncQCUoWFactory(func() commands.QCUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQuotationUoWFactory func() commands.QuotationUoW

func (f FuncQuotationUoWFactory) Create() commands.QuotationUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncRecruitmentUoWFactory func() commands.RecruitmentUoW

func (f FuncRecruitmentUoWFactory) Create() commands.RecruitmentUoW {
	return f()
}

type FuncQCUoWFactory func() commands.QCUoW

func (f FuncQCUoWFactory) Create() commands.QCUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
