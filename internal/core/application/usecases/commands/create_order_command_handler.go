package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/domain/model/kernel"
	"writedesk/internal/core/domain/model/order"
	"writedesk/internal/core/ports"
	"writedesk/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Creates new orders in "Pending" status with a freshly minted query code.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, identity, dispatcher)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), clientID,
//	    "Essay on distributed consensus", "Computer Science",
//	    order.UrgencyStandard, deadline)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and ready for quotation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, an identity
// provider for actor resolution and a dispatcher for post-commit fanout.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the order placement command.
// Resolves the actor, verifies they hold the client role, creates the order
// in "Pending" status and stages an order.created event for the trail.
// Uses transaction to ensure the order is properly persisted or rolled back.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
	if err != nil {
		return err
	}

	// Placing an order is the client's move into Pending.
	if user.Role != kernel.RoleClient {
		return errs.NewInvalidTransitionError(
			user.Role.String(), order.Unknown.String(), order.Pending.String())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ActorID(), cmd.Topic(), cmd.Subject(), cmd.Urgency(), cmd.Deadline())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionOrderCreated, audit.ResourceOrder, newOrder.ID(), newOrder.ID(),
		"", newOrder.Status().String(),
		fmt.Sprintf("order %s placed and awaiting quotation", newOrder.QueryCode()),
		audit.NewRecipient(cmd.ActorID(), ""),
	)
	if err != nil {
		return err
	}
	uow.StageEvent(event)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.StagedEvents()...)

	return nil
}
