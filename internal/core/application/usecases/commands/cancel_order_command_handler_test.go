package commands_test

import (
	"fmt"
	"testing"

	"writedesk/internal/core/application/usecases/commands"
	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ClientCancelsPending(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()

	testOrder := newPendingOrder(t, clientID)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), clientID, "")
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, clientID).Return(testUser(clientID, kernel.RoleClient), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("StageEvent", mock.AnythingOfType("audit.Event")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StagedEvents").Return([]audit.Event{}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())

	events := stagedEvents(uow)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionOrderCancelled, events[0].Action())
	assert.Equal(t, order.Pending.String(), events[0].Before())
	assert.Equal(t, order.Cancelled.String(), events[0].After())
	assert.Equal(t, fmt.Sprintf("order %s cancelled", testOrder.QueryCode()), events[0].Message())

	// Nobody but the client is on the order yet.
	require.Len(t, events[0].Recipients(), 1)
	assert.Equal(t, clientID, events[0].Recipients()[0].ID())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AdminCancelsStaffedOrder(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	adminID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newAssignedOrder(t, clientID, bdeID, writerID)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), adminID, "client stopped responding")
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, adminID).Return(testUser(adminID, kernel.RoleAdmin), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("StageEvent", mock.AnythingOfType("audit.Event")).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("StagedEvents").Return([]audit.Event{}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())

	// The writer assignment survives cancellation for the audit trail.
	require.NotNil(t, testOrder.AssignedWriter())

	events := stagedEvents(uow)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message(), "client stopped responding")
	require.Len(t, events[0].Recipients(), 3)
	assert.Equal(t, clientID, events[0].Recipients()[0].ID())
	assert.Equal(t, writerID, events[0].Recipients()[1].ID())
	assert.Equal(t, bdeID, events[0].Recipients()[2].ID())

	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignClientRejected(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	strangerID := kernel.NewUUID()

	testOrder := newPendingOrder(t, clientID)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), strangerID, "")
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, strangerID).Return(testUser(strangerID, kernel.RoleClient), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewCancelOrderCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderRejected(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	bdeID := kernel.NewUUID()
	writerID := kernel.NewUUID()

	testOrder := newDeliveredOrder(t, clientID, bdeID, writerID)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), clientID, "too late anyway")
	require.NoError(t, err)

	identity := new(MockIdentityProvider)
	identity.On("GetUser", ctx, clientID).Return(testUser(clientID, kernel.RoleClient), nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockEventDispatcher)

	handler := commands.NewCancelOrderCommandHandler(factory, identity, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	identity := new(MockIdentityProvider)
	dispatcher := new(MockEventDispatcher)

	handler := commands.NewCancelOrderCommandHandler(factory, identity, dispatcher)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
