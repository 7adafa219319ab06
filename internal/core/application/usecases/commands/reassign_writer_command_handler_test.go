package commands_test

import (
	"errors"
	"testing"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/domain/model/recruitment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReassignWriterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	oldWriterID := kernel.NewUUID()
	newWriterID := kernel.NewUUID()

	testOrder := newAssignedOrder(t, clientID, bdeID, oldWriterID)
	oldRow := assignedRow(t, testOrder.ID(), oldWriterID)
	target, err := recruitment.NewOpenInterest(kernel.NewUUID(), testOrder.ID(), newWriterID)
	require.NoError(t, err)

	cmd, err := commands.NewReassignWriterCommand(testOrder.ID(), newWriterID, adminID)
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
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), newWriterID).Return(target, nil).Once(),
		interestRepo.On("ListByOrder", ctx, testOrder.ID()).
			Return([]*recruitment.WriterInterest{oldRow, target}, nil).Once(),
		interestRepo.On("Update", ctx, mock.AnythingOfType("*recruitment.WriterInterest")).Return(nil).Twice(),
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

	handler := commands.NewReassignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, recruitment.StateAssigned, target.State())
	assert.Equal(t, recruitment.StateReleased, oldRow.State())
	assert.Equal(t, order.Assigned, testOrder.Status())
	require.NotNil(t, testOrder.AssignedWriter())
	assert.Equal(t, newWriterID, *testOrder.AssignedWriter())

	// The target row is persisted first, then the displaced one.
	assert.Same(t, target, interestRepo.Calls[2].Arguments[1].(*recruitment.WriterInterest))
	assert.Same(t, oldRow, interestRepo.Calls[3].Arguments[1].(*recruitment.WriterInterest))

	events := stagedEvents(uow)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionWriterReassigned, events[0].Action())
	require.Len(t, events[0].Recipients(), 2)
	assert.Equal(t, newWriterID, events[0].Recipients()[0].ID())
	assert.Contains(t, events[0].Recipients()[0].Message(), "is yours")
	assert.Equal(t, oldWriterID, events[0].Recipients()[1].ID())
	assert.Contains(t, events[0].Recipients()[1].Message(), "handed to another writer")

	orderRepo.AssertExpectations(t)
	interestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestReassignWriterCommandHandler_Handle_NoCurrentWriter(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	newWriterID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	cmd, err := commands.NewReassignWriterCommand(testOrder.ID(), newWriterID, adminID)
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
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewReassignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoAssignedWriter)
	interestRepo.AssertNotCalled(t, "GetByOrderAndWriter", ctx, mock.Anything, mock.Anything)
}

func TestReassignWriterCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReassignWriterCommand{} // not constructed properly

	factory := new(MockRecruitmentUoWFactory)
	identity := new(MockIdentityProvider)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewReassignWriterCommandHandler(factory, identity, dispatcher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReassignWriterCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReassignWriterCommandHandler_Handle_GetOrderError(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	newWriterID := kernel.NewUUID()

	cmd, err := commands.NewReassignWriterCommand(orderID, newWriterID, adminID)
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewReassignWriterCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	dispatcher.AssertNotCalled(t, "Dispatch")
}
