package commands_test

import (
	"testing"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignWriterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	target, err := recruitment.NewOpenInterest(kernel.NewUUID(), testOrder.ID(), writerID)
	require.NoError(t, err)

	cmd, err := commands.NewAssignWriterCommand(testOrder.ID(), writerID, adminID)
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), writerID).Return(target, nil).Once(),
		interestRepo.On("ListByOrder", ctx, testOrder.ID()).
			Return([]*recruitment.WriterInterest{target}, nil).Once(),
		interestRepo.On("Update", ctx, mock.AnythingOfType("*recruitment.WriterInterest")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("StageEvent", mock.AnythingOfType("audit.Event")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StagedEvents").Return([]audit.Event{}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	handler := commands.NewAssignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, recruitment.StateAssigned, target.State())
	assert.Equal(t, recruitment.VerdictPending, target.Verdict())
	assert.Equal(t, order.Assigned, testOrder.Status())
	require.NotNil(t, testOrder.AssignedWriter())
	assert.Equal(t, writerID, *testOrder.AssignedWriter())

	events := stagedEvents(uow)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionWriterAssigned, events[0].Action())
	assert.Equal(t, order.Confirmed.String(), events[0].Before())
	assert.Equal(t, order.Assigned.String(), events[0].After())
	require.Len(t, events[0].Recipients(), 1)
	assert.Equal(t, writerID, events[0].Recipients()[0].ID())
	assert.Contains(t, events[0].Recipients()[0].Message(), "is yours")

	orderRepo.AssertExpectations(t)
	interestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestAssignWriterCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignWriterCommand{} // not constructed properly

	factory := new(MockRecruitmentUoWFactory)
	identity := new(MockIdentityProvider)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewAssignWriterCommandHandler(factory, identity, dispatcher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignWriterCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignWriterCommandHandler_Handle_TargetNeverResponded(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	// Still Invited: the writer never showed interest, so not assignable.
	target, err := recruitment.NewInvitation(kernel.NewUUID(), testOrder.ID(), writerID)
	require.NoError(t, err)

	cmd, err := commands.NewAssignWriterCommand(testOrder.ID(), writerID, adminID)
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), writerID).Return(target, nil).Once(),
		interestRepo.On("ListByOrder", ctx, testOrder.ID()).
			Return([]*recruitment.WriterInterest{target}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewAssignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Confirmed, testOrder.Status())
	interestRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignWriterCommandHandler_Handle_StoreSettlesRacingAssigns(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	target, err := recruitment.NewOpenInterest(kernel.NewUUID(), testOrder.ID(), writerID)
	require.NoError(t, err)

	cmd, err := commands.NewAssignWriterCommand(testOrder.ID(), writerID, adminID)
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), writerID).Return(target, nil).Once(),
		interestRepo.On("ListByOrder", ctx, testOrder.ID()).
			Return([]*recruitment.WriterInterest{target}, nil).Once(),
		interestRepo.On("Update", ctx, mock.AnythingOfType("*recruitment.WriterInterest")).
			Return(ports.ErrDuplicateAssignment).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewAssignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestAssignWriterCommandHandler_Handle_GetTargetError(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	cmd, err := commands.NewAssignWriterCommand(testOrder.ID(), writerID, adminID)
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), writerID).
			Return(nil, errs.NewObjectNotFoundError("writer interest", writerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewAssignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
