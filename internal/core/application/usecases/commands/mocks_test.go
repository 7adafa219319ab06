package commands_test

import (
	"context"
	"testing"
	"time"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/billing"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/notification"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/domain/model/submission"
	"writedesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The handlers all speak to the same narrow repository and unit of work
// interfaces, so one set of mocks serves every handler test in this package.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListApproachingDeadline(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockInterestRepository struct{ mock.Mock }

func (m *MockInterestRepository) Add(ctx context.Context, aggregate *recruitment.WriterInterest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInterestRepository) Update(ctx context.Context, aggregate *recruitment.WriterInterest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInterestRepository) Get(ctx context.Context, id kernel.UUID) (*recruitment.WriterInterest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruitment.WriterInterest), args.Error(1)
}

func (m *MockInterestRepository) GetByOrderAndWriter(ctx context.Context, orderID kernel.UUID, writerID kernel.UUID) (*recruitment.WriterInterest, error) {
	args := m.Called(ctx, orderID, writerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruitment.WriterInterest), args.Error(1)
}

func (m *MockInterestRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*recruitment.WriterInterest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recruitment.WriterInterest), args.Error(1)
}

func (m *MockInterestRepository) GetAssignedByOrder(ctx context.Context, orderID kernel.UUID) (*recruitment.WriterInterest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recruitment.WriterInterest), args.Error(1)
}

type MockQuotationRepository struct{ mock.Mock }

func (m *MockQuotationRepository) Add(ctx context.Context, aggregate *billing.Quotation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuotationRepository) Update(ctx context.Context, aggregate *billing.Quotation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuotationRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Quotation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Quotation), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *billing.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *billing.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*billing.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Payment), args.Error(1)
}

type MockSubmissionRepository struct{ mock.Mock }

func (m *MockSubmissionRepository) Add(ctx context.Context, aggregate *submission.Submission) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, aggregate *submission.Submission) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Get(ctx context.Context, id kernel.UUID) (*submission.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submission.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) GetLatestByOrder(ctx context.Context, orderID kernel.UUID) (*submission.Submission, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submission.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*submission.Submission, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*submission.Submission), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListUnpushed(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

// MockUnitOfWork satisfies every unit of work composition the handlers use.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) StageEvent(event audit.Event) {
	m.Called(event)
}

func (m *MockUnitOfWork) StagedEvents() []audit.Event {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]audit.Event)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) InterestRepository() ports.InterestRepository {
	args := m.Called()
	return args.Get(0).(ports.InterestRepository)
}

func (m *MockUnitOfWork) QuotationRepository() ports.QuotationRepository {
	args := m.Called()
	return args.Get(0).(ports.QuotationRepository)
}

func (m *MockUnitOfWork) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUnitOfWork) SubmissionRepository() ports.SubmissionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubmissionRepository)
}

func (m *MockUnitOfWork) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockQuotationUoWFactory struct{ mock.Mock }

func (m *MockQuotationUoWFactory) Create() commands.QuotationUoW {
	args := m.Called()
	return args.Get(0).(commands.QuotationUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockRecruitmentUoWFactory struct{ mock.Mock }

func (m *MockRecruitmentUoWFactory) Create() commands.RecruitmentUoW {
	args := m.Called()
	return args.Get(0).(commands.RecruitmentUoW)
}

type MockQCUoWFactory struct{ mock.Mock }

func (m *MockQCUoWFactory) Create() commands.QCUoW {
	args := m.Called()
	return args.Get(0).(commands.QCUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockIdentityProvider struct{ mock.Mock }

func (m *MockIdentityProvider) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.User), args.Error(1)
}

type MockEventDispatcher struct{ mock.Mock }

func (m *MockEventDispatcher) Dispatch(ctx context.Context, events ...audit.Event) {
	m.Called(ctx, events)
}

type MockNotificationGateway struct{ mock.Mock }

func (m *MockNotificationGateway) Deliver(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// Fixtures. Orders are walked through their real transitions so the tests
// exercise the same aggregates the handlers see in production.

func testUser(id kernel.UUID, role kernel.Role) ports.User {
	return ports.User{ID: id, Role: role, Name: "Test User", IsActive: true}
}

func inactiveUser(id kernel.UUID, role kernel.Role) ports.User {
	return ports.User{ID: id, Role: role, Name: "Test User", IsActive: false}
}

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func newPendingOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(kernel.NewUUID(), clientID,
		"Essay on Raft consensus", "Computer Science",
		order.UrgencyStandard, time.Now().Add(72*time.Hour))
	require.NoError(t, err)
	return ord
}

func newQuotedOrder(t *testing.T, clientID kernel.UUID, bdeID kernel.UUID) *order.Order {
	t.Helper()
	ord := newPendingOrder(t, clientID)
	err := ord.ApplyQuotation(kernel.RoleBDE, &bdeID,
		mustMoney(t, 10000), mustMoney(t, 1000), mustMoney(t, 9900))
	require.NoError(t, err)
	return ord
}

func newAcceptedOrder(t *testing.T, clientID kernel.UUID, bdeID kernel.UUID) *order.Order {
	t.Helper()
	ord := newQuotedOrder(t, clientID, bdeID)
	require.NoError(t, ord.AcceptQuotation(clientID, kernel.RoleClient))
	return ord
}

func newConfirmedOrder(t *testing.T, clientID kernel.UUID, bdeID kernel.UUID) *order.Order {
	t.Helper()
	ord := newAcceptedOrder(t, clientID, bdeID)
	require.NoError(t, ord.ConfirmPayment(kernel.RoleAdmin, kernel.GenerateWorkCode()))
	return ord
}

func newAssignedOrder(t *testing.T, clientID kernel.UUID, bdeID kernel.UUID, writerID kernel.UUID) *order.Order {
	t.Helper()
	ord := newConfirmedOrder(t, clientID, bdeID)
	require.NoError(t, ord.AssignWriter(kernel.RoleAdmin, writerID))
	return ord
}

func newSubmittedOrder(t *testing.T, clientID kernel.UUID, bdeID kernel.UUID, writerID kernel.UUID) *order.Order {
	t.Helper()
	ord := newAssignedOrder(t, clientID, bdeID, writerID)
	require.NoError(t, ord.SubmitWork(writerID, kernel.RoleWriter))
	return ord
}

func pendingSubmission(t *testing.T, orderID kernel.UUID, writerID kernel.UUID) *submission.Submission {
	t.Helper()
	sub, err := submission.NewSubmission(kernel.NewUUID(), orderID, writerID,
		"docs/final-draft-v1.pdf", "all sources cited")
	require.NoError(t, err)
	return sub
}

// stagedEvents collects the events a handler staged on the unit of work, in
// staging order.
func stagedEvents(uow *MockUnitOfWork) []audit.Event {
	var events []audit.Event
	for _, call := range uow.Calls {
		if call.Method == "StageEvent" {
			events = append(events, call.Arguments[0].(audit.Event))
		}
	}
	return events
}
