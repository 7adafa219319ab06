package commands

import (
	"context"
	"fmt"

	"writedesk/internal/core/domain/model/audit"
	"writedesk/internal/core/ports"
)

// DeliverOrderCommandHandler hands approved work over to the client.
// The order moves from "Approved" to "Delivered" and the client is told to
// pick it up.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	identity   ports.IdentityProvider
	dispatcher EventDispatcher
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	identity ports.IdentityProvider,
	dispatcher EventDispatcher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		dispatcher: dispatcher,
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveActor(ctx, h.identity, cmd.ActorID())
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := ord.Status().String()
	if err = ord.Deliver(user.Role); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	event, err := audit.NewEvent(
		cmd.ActorID(), user.Role,
		audit.ActionOrderDelivered, audit.ResourceOrder, ord.ID(), ord.ID(),
		before, ord.Status().String(),
		fmt.Sprintf("order %s delivered to the client", ord.QueryCode()),
		audit.NewRecipient(ord.ClientID(),
			fmt.Sprintf("your order %s is ready for pickup", ord.QueryCode())),
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
