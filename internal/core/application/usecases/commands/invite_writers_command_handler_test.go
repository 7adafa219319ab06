package commands_test

import (
	"testing"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/recruitment"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInviteWritersCommandHandler_Handle_FreshInvitations(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	firstWriter := kernel.NewUUID()
	secondWriter := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	cmd, err := commands.NewInviteWritersCommand(testOrder.ID(), adminID,
		[]kernel.UUID{firstWriter, secondWriter})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()
	identity.On("GetUser", ctx, firstWriter).Return(testUser(firstWriter, kernel.RoleWriter), nil).Once()
	identity.On("GetUser", ctx, secondWriter).Return(testUser(secondWriter, kernel.RoleWriter), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), firstWriter).
			Return(nil, errs.NewObjectNotFoundError("writer interest", firstWriter)).Once(),
		interestRepo.On("Add", ctx, mock.AnythingOfType("*recruitment.WriterInterest")).Return(nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), secondWriter).
			Return(nil, errs.NewObjectNotFoundError("writer interest", secondWriter)).Once(),
		interestRepo.On("Add", ctx, mock.AnythingOfType("*recruitment.WriterInterest")).Return(nil).Once(),
		uow.On("StageEvent", mock.AnythingOfType("audit.Event")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StagedEvents").Return([]audit.Event{}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	firstRow := interestRepo.Calls[1].Arguments[1].(*recruitment.WriterInterest)
	assert.Equal(t, testOrder.ID(), firstRow.OrderID())
	assert.Equal(t, firstWriter, firstRow.WriterID())
	assert.Equal(t, recruitment.StateInvited, firstRow.State())

	events := stagedEvents(uow)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionWritersInvited, events[0].Action())
	require.Len(t, events[0].Recipients(), 2)
	assert.Equal(t, firstWriter, events[0].Recipients()[0].ID())
	assert.Equal(t, secondWriter, events[0].Recipients()[1].ID())
	assert.Contains(t, events[0].Recipients()[0].Message(), "you are invited")

	interestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	identity.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestInviteWritersCommandHandler_Handle_ReinvitesDeclinedWriter(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	row, err := recruitment.NewInvitation(kernel.NewUUID(), testOrder.ID(), writerID)
	require.NoError(t, err)
	require.NoError(t, row.Decline("workload"))

	cmd, err := commands.NewInviteWritersCommand(testOrder.ID(), adminID, []kernel.UUID{writerID})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()
	identity.On("GetUser", ctx, writerID).Return(testUser(writerID, kernel.RoleWriter), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), writerID).Return(row, nil).Once(),
		interestRepo.On("Update", ctx, mock.AnythingOfType("*recruitment.WriterInterest")).Return(nil).Once(),
		uow.On("StageEvent", mock.AnythingOfType("audit.Event")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StagedEvents").Return([]audit.Event{}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, recruitment.StateInvited, row.State())

	interestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestInviteWritersCommandHandler_Handle_AlreadyInvitedIsNoOp(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newConfirmedOrder(t, clientID, bdeID)
	row, err := recruitment.NewInvitation(kernel.NewUUID(), testOrder.ID(), writerID)
	require.NoError(t, err)

	cmd, err := commands.NewInviteWritersCommand(testOrder.ID(), adminID, []kernel.UUID{writerID})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()
	identity.On("GetUser", ctx, writerID).Return(testUser(writerID, kernel.RoleWriter), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("InterestRepository").Return(interestRepo)

	// No event is staged when nobody was newly invited.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		interestRepo.On("GetByOrderAndWriter", ctx, testOrder.ID(), writerID).Return(row, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StagedEvents").Return([]audit.Event{}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, recruitment.StateInvited, row.State())
	uow.AssertNotCalled(t, "StageEvent", mock.Anything)
	interestRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	interestRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestInviteWritersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.InviteWritersCommand{} // not constructed properly

	factory := new(MockRecruitmentUoWFactory)
	identity := new(MockIdentityProvider)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrInviteWritersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestInviteWritersCommandHandler_Handle_OnlyAdminInvites(t *testing.T) {
	ctx := t.Context()
	bdeID := kernel.NewUUID()

	cmd, err := commands.NewInviteWritersCommand(kernel.NewUUID(), bdeID,
		[]kernel.UUID{kernel.NewUUID()})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, bdeID).Return(testUser(bdeID, kernel.RoleBDE), nil).Once()

	factory := new(MockRecruitmentUoWFactory)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	factory.AssertNotCalled(t, "Create")
}

func TestInviteWritersCommandHandler_Handle_InviteeNotAWriter(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	cmd, err := commands.NewInviteWritersCommand(kernel.NewUUID(), adminID, []kernel.UUID{clientID})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()
	identity.On("GetUser", ctx, clientID).Return(testUser(clientID, kernel.RoleClient), nil).Once()

	factory := new(MockRecruitmentUoWFactory)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestInviteWritersCommandHandler_Handle_DeactivatedInvitee(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	cmd, err := commands.NewInviteWritersCommand(kernel.NewUUID(), adminID, []kernel.UUID{writerID})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()
	identity.On("GetUser", ctx, writerID).Return(inactiveUser(writerID, kernel.RoleWriter), nil).Once()

	factory := new(MockRecruitmentUoWFactory)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestInviteWritersCommandHandler_Handle_ClosedOrderRejected(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newPendingOrder(t, clientID)
	require.NoError(t, testOrder.Cancel(clientID, kernel.RoleClient))

	cmd, err := commands.NewInviteWritersCommand(testOrder.ID(), adminID, []kernel.UUID{writerID})
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()
	identity.On("GetUser", ctx, writerID).Return(testUser(writerID, kernel.RoleWriter), nil).Once()

	orderRepo := new(MockOrderRepository)
	interestRepo := new(MockInterestRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRecruitmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewInviteWritersCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderClosed)
	interestRepo.AssertNotCalled(t, "GetByOrderAndWriter", ctx, mock.Anything, mock.Anything)
}
